package ports

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/notification"
)

var (
	// ErrDuplicateJob signals that a job for the same order is already
	// queued or in flight. The caller should treat the enqueue as rejected,
	// not as a transient failure.
	ErrDuplicateJob = errors.New("notification job already queued for order")

	// ErrQueueUnavailable signals that the queue backend could not be
	// reached. Order state changes committed before the enqueue stand.
	ErrQueueUnavailable = errors.New("notification queue unavailable")
)

// NotificationQueue is the delayed-delivery job queue for pickup
// notifications. Jobs become due after their delay elapses and are handed to
// exactly one worker at a time.
type NotificationQueue interface {
	// Enqueue schedules the job to become due after delay. At most one
	// live job per order is allowed; a second enqueue for the same order
	// returns ErrDuplicateJob.
	Enqueue(ctx context.Context, job *notification.Job, delay time.Duration) error

	// Due claims up to limit jobs whose delay has elapsed, in enqueue
	// order. A claimed job is invisible to other workers until it is
	// completed, retried, or failed.
	Due(ctx context.Context, limit int) ([]*notification.Job, error)

	// Complete removes a finished job, releasing the per-order slot so a
	// later resend can be queued.
	Complete(ctx context.Context, job *notification.Job) error

	// Retry reschedules a claimed job to become due again after delay,
	// preserving its attempt count.
	Retry(ctx context.Context, job *notification.Job, delay time.Duration) error

	// Fail removes an exhausted job and releases the per-order slot.
	// The job is recorded as dead, not requeued.
	Fail(ctx context.Context, job *notification.Job) error
}
