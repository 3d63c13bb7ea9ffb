package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "credit",
	Short: "PandaPay credit rating service",
	Long: `PandaPay Credit Rating CLI

Normalizes instalment payment histories and credit bureau reports into
monthly delinquency timelines, derives time-series features and scores
them with a pretrained default-risk model.

Usage:
  go run ./cmd/credit [command]

Examples:
  go run ./cmd/credit api
  go run ./cmd/credit score <customer-id>
  go run ./cmd/credit score --all
  go run ./cmd/credit first-rating report.pdf
  go run ./cmd/credit scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
