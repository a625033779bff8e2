package notifications

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the notification subsystem.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob *DispatchJob
}

// NewJobManager creates a job manager wrapping the notification worker.
func NewJobManager(worker *Worker, logger *slog.Logger) *JobManager {
	return &JobManager{
		dispatchJob: NewDispatchJob(worker, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
}
