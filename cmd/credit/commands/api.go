package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayumstir/IS4103-Capstone/internal/api"
	"github.com/dayumstir/IS4103-Capstone/internal/api/handlers"
	"github.com/dayumstir/IS4103-Capstone/internal/ledger"
	"github.com/dayumstir/IS4103-Capstone/pkg/config"
	"github.com/dayumstir/IS4103-Capstone/pkg/database"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the credit rating API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                   - Health check
  POST /update-credit-rating     - Rescore a customer from the instalment ledger
  POST /get-first-credit-rating  - Score an applicant from uploaded credit reports

Example:
  go run ./cmd/credit api
  go run ./cmd/credit api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== PandaPay Credit Rating API ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Create ledger repository
	store := ledger.NewRepository(db.Pool)

	// 5. Build the scoring pipeline
	pipe, err := buildPipeline(cfg, log, store)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	// 6. Create handler and router
	creditHandler := handlers.NewCreditHandler(pipe, log)
	router := api.NewRouter(creditHandler, cfg, log)

	// 7. Create server
	server := api.New(cfg, log, router)

	// 8. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /update-credit-rating")
	fmt.Println("  POST /get-first-credit-rating")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
