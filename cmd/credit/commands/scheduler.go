package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dayumstir/IS4103-Capstone/internal/ledger"
	"github.com/dayumstir/IS4103-Capstone/internal/scheduler"
	"github.com/dayumstir/IS4103-Capstone/internal/scheduler/jobs"
	"github.com/dayumstir/IS4103-Capstone/pkg/config"
	"github.com/dayumstir/IS4103-Capstone/pkg/database"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the rescoring scheduler",
	Long: `Starts the scheduler daemon or manages its jobs.

Registered jobs:
- credit_rescore: rescores every active customer (RESCORE_CRON,
  default 2 AM on the 1st of every month)

Subcommands:
  start   - start the scheduler daemon
  list    - list registered jobs
  run     - run a job immediately

Example:
  go run ./cmd/credit scheduler start
  go run ./cmd/credit scheduler run credit_rescore`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		Long: `Starts the scheduler and schedules all registered jobs.

The scheduler runs until interrupted with Ctrl+C.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run a job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== PandaPay Credit Scheduler ===")

	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer db.Close()

	sched.Start()

	fmt.Println("\nScheduler started successfully")
	fmt.Println("\nRegistered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer db.Close()

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	fmt.Printf("Running job: %s\n", jobName)

	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer db.Close()

	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	// RunJob is asynchronous; block until interrupted so the job can
	// finish against the shared database connection.
	fmt.Println("Job started, press Ctrl+C once it has completed")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}

func initScheduler() (*scheduler.Scheduler, *database.DB, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	if !cfg.Schedule.Enabled {
		log.Warn("Scheduling is disabled in config (RESCORE_ENABLED)")
	}

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// 4. Create repository and pipeline
	store := ledger.NewRepository(db.Pool)

	pipe, err := buildPipeline(cfg, log, store)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("build pipeline: %w", err)
	}

	// 5. Create scheduler and register jobs
	sched := scheduler.New(log)

	if err := sched.AddJob(jobs.NewRescoreJob(store, pipe, cfg.Schedule.RescoreCron, log)); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("register rescore job: %w", err)
	}

	return sched, db, nil
}
