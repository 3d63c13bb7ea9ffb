package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/report"
	"github.com/dayumstir/IS4103-Capstone/pkg/config"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// firstRatingCmd represents the first-rating command
var firstRatingCmd = &cobra.Command{
	Use:   "first-rating [report.pdf ...]",
	Short: "Score an applicant from credit report PDFs",
	Long: `Computes a first credit rating from one or more credit bureau report
PDFs. With no reports the rating falls back to the published consumer
credit index named in the assets manifest. Nothing is persisted.

Example:
  go run ./cmd/credit first-rating report.pdf
  go run ./cmd/credit first-rating`,
	RunE: runFirstRating,
}

func init() {
	rootCmd.AddCommand(firstRatingCmd)
}

func runFirstRating(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Build the scoring pipeline. No ledger store: the first-rating
	// path never reads or writes the database.
	pipe, err := buildPipeline(cfg, log, nil)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	docs := make([]contracts.PageTextSource, 0, len(args))
	for _, path := range args {
		docs = append(docs, report.PDFFromFile(path))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// 4. Score
	result, err := pipe.FirstCreditRating(ctx, docs)
	if err != nil {
		return fmt.Errorf("first credit rating: %w", err)
	}

	if len(args) == 0 {
		fmt.Println("No reports supplied, scored against the consumer credit index")
	}
	fmt.Printf("First credit rating: %d\n", result.Score)
	return nil
}
