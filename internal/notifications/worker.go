package notifications

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/ports"
)

const (
	defaultBatchSize   = 10
	defaultSendTimeout = 10 * time.Second
	defaultBackoffBase = 5 * time.Second
)

// Worker drains due notification jobs and executes them against the gateway.
// Several workers may share one queue; the queue guarantees each job is held
// by at most one of them at a time.
type Worker struct {
	queue       ports.NotificationQueue
	gateway     ports.NotificationGateway
	logger      *slog.Logger
	batchSize   int
	sendTimeout time.Duration
	backoffBase time.Duration
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithBatchSize caps how many jobs one drain pass claims.
func WithBatchSize(n int) WorkerOption {
	return func(w *Worker) {
		w.batchSize = n
	}
}

// WithSendTimeout bounds each gateway call.
func WithSendTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		w.sendTimeout = d
	}
}

// WithBackoffBase sets the first retry delay; later retries double it.
func WithBackoffBase(d time.Duration) WorkerOption {
	return func(w *Worker) {
		w.backoffBase = d
	}
}

// NewWorker creates a worker bound to a queue and a gateway.
func NewWorker(
	queue ports.NotificationQueue,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
	opts ...WorkerOption,
) *Worker {
	w := &Worker{
		queue:       queue,
		gateway:     gateway,
		logger:      logger.With("component", "notification_worker"),
		batchSize:   defaultBatchSize,
		sendTimeout: defaultSendTimeout,
		backoffBase: defaultBackoffBase,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DrainOnce claims one batch of due jobs and executes them sequentially.
// Job-level failures are handled inside Execute and never abort the batch;
// only queue claim errors propagate.
func (w *Worker) DrainOnce(ctx context.Context) error {
	jobs, err := w.queue.Due(ctx, w.batchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		w.Execute(ctx, job)
	}

	return nil
}

// Execute runs a single claimed job to its next state: completed, retried
// with backoff, or dead. All outcomes are settled against the queue and
// logged; nothing is returned because there is no caller to answer to.
func (w *Worker) Execute(ctx context.Context, job *notification.Job) {
	sendCtx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	err := w.gateway.Send(sendCtx, job)
	cancel()

	if err == nil {
		if completeErr := w.queue.Complete(ctx, job); completeErr != nil {
			w.logger.ErrorContext(ctx, "Failed to complete job",
				"order_id", job.OrderID.String(), "error", completeErr)
			return
		}
		w.logger.InfoContext(ctx, "Notification sent",
			"order_id", job.OrderID.String(), "kind", string(job.Kind),
			"disposition", string(notification.DispositionCompleted))
		return
	}

	var sendErr *ports.SendError
	if errors.As(err, &sendErr) && sendErr.Permanent {
		w.kill(ctx, job, err, "permanent gateway failure")
		return
	}

	job.RecordFailure()
	if job.Exhausted() {
		w.kill(ctx, job, err, "attempts exhausted")
		return
	}

	backoff := w.backoff(job.Attempts)
	if retryErr := w.queue.Retry(ctx, job, backoff); retryErr != nil {
		w.logger.ErrorContext(ctx, "Failed to reschedule job",
			"order_id", job.OrderID.String(), "error", retryErr)
		return
	}

	w.logger.WarnContext(ctx, "Notification attempt failed, retrying",
		"order_id", job.OrderID.String(), "attempts", job.Attempts,
		"max_attempts", job.MaxAttempts, "backoff", backoff.String(), "error", err)
}

func (w *Worker) kill(ctx context.Context, job *notification.Job, cause error, reason string) {
	if failErr := w.queue.Fail(ctx, job); failErr != nil {
		w.logger.ErrorContext(ctx, "Failed to discard dead job",
			"order_id", job.OrderID.String(), "error", failErr)
		return
	}

	w.logger.ErrorContext(ctx, "Notification job died",
		"order_id", job.OrderID.String(), "kind", string(job.Kind),
		"attempts", job.Attempts, "reason", reason,
		"disposition", string(notification.DispositionDead), "error", cause)
}

// backoff doubles per completed attempt: base, 2*base, 4*base, ...
func (w *Worker) backoff(attempts int) time.Duration {
	d := w.backoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
	}
	return d
}
