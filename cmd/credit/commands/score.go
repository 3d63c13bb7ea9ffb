package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayumstir/IS4103-Capstone/internal/ledger"
	"github.com/dayumstir/IS4103-Capstone/internal/scheduler/jobs"
	"github.com/dayumstir/IS4103-Capstone/pkg/config"
	"github.com/dayumstir/IS4103-Capstone/pkg/database"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [customer-id]",
	Short: "Rescore customers from the instalment ledger",
	Long: `Recomputes and persists the credit rating of one customer, or of
every active customer with --all. The new rating is clipped to the
customer's current credit tier band before it is stored.

Example:
  go run ./cmd/credit score 7c9a...
  go run ./cmd/credit score --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

var scoreAll bool

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().BoolVar(&scoreAll, "all", false, "rescore every active customer")
}

func runScore(cmd *cobra.Command, args []string) error {
	if !scoreAll && len(args) == 0 {
		return fmt.Errorf("provide a customer id or --all")
	}
	if scoreAll && len(args) > 0 {
		return fmt.Errorf("--all takes no customer id")
	}

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4. Create repository and pipeline
	store := ledger.NewRepository(db.Pool)

	pipe, err := buildPipeline(cfg, log, store)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// 5. Rescore
	if scoreAll {
		job := jobs.NewRescoreJob(store, pipe, cfg.Schedule.RescoreCron, log)
		if err := job.Run(ctx); err != nil {
			return fmt.Errorf("rescore batch: %w", err)
		}
		fmt.Println("Rescore batch completed")
		return nil
	}

	customerID := args[0]
	result, err := pipe.UpdateCreditRating(ctx, customerID)
	if err != nil {
		return fmt.Errorf("rescore customer %s: %w", customerID, err)
	}

	fmt.Printf("Customer %s rescored: %d\n", customerID, result.Score)
	return nil
}
