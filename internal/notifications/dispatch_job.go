package notifications

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DispatchJob runs the notification worker on a schedule.
// Fires every second so due jobs are picked up promptly after their delay.
type DispatchJob struct {
	worker *Worker
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDispatchJob creates the cron wrapper around the worker.
func NewDispatchJob(worker *Worker, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		worker: worker,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins draining the queue every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.worker.DrainOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification drain failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
