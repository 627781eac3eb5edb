package jobs

import (
	"database/sql"

	"github.com/joshbaje/Drively-sub000/internal/config"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/observability"
	"github.com/joshbaje/Drively-sub000/internal/repository/postgres"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		config: cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			observability.JobRunsTotal.WithLabelValues(jobName, "panic").Inc()
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		observability.JobRunsTotal.WithLabelValues(jobName, "error").Inc()
		return
	}
	observability.JobRunsTotal.WithLabelValues(jobName, "ok").Inc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ActivateDueBookings()
	jr.CompleteFinishedBookings()
	jr.ExpireStaleRequests()
}
