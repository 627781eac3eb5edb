package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/joshbaje/Drively-sub000/internal/config"
	"github.com/joshbaje/Drively-sub000/internal/jobs"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/repository/postgres"
	"github.com/joshbaje/Drively-sub000/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'activate-due-bookings', 'complete-finished-bookings', 'expire-stale-requests', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Drively Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize the job runner
	jobRunner := jobs.NewJobRunner(db, store, cfg)

	// Manual one-shot execution
	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	// Start the scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")
}

func runSingleJob(jobRunner *jobs.JobRunner, name string) {
	switch name {
	case "activate-due-bookings":
		jobRunner.ActivateDueBookings()
	case "complete-finished-bookings":
		jobRunner.CompleteFinishedBookings()
	case "expire-stale-requests":
		jobRunner.ExpireStaleRequests()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", name)
		log.Fatalf("Unknown job name: %s", name)
	}
}
