package notifications

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/ports"
)

// Policy bounds the lifetime of a notification job.
type Policy struct {
	// InitialDelay is how long a job waits before its first attempt.
	// The delay batches rapid successive creations.
	InitialDelay time.Duration

	// MaxAttempts caps total gateway calls per job, first attempt included.
	MaxAttempts int
}

// DefaultPolicy matches the queue settings the system has always run with.
func DefaultPolicy() Policy {
	return Policy{
		InitialDelay: 5 * time.Second,
		MaxAttempts:  3,
	}
}

// Dispatcher builds notification jobs from orders and schedules them.
// Both entry points share the dedup rule: one outstanding job per order.
//
// Enqueue failures are reported to the caller but the order state that
// triggered them always stands; an operator resend is the recovery path.
type Dispatcher struct {
	queue  ports.NotificationQueue
	policy Policy
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher with the given scheduling policy.
func NewDispatcher(queue ports.NotificationQueue, policy Policy, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  queue,
		policy: policy,
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// EnqueueCreated schedules the automatic notification fired right after an
// order is created.
func (d *Dispatcher) EnqueueCreated(ctx context.Context, aggregate *order.Order) error {
	return d.enqueue(ctx, aggregate, notification.KindOrderCreated)
}

// EnqueueResend schedules a notification requested explicitly by an operator.
func (d *Dispatcher) EnqueueResend(ctx context.Context, aggregate *order.Order) error {
	return d.enqueue(ctx, aggregate, notification.KindOrderResend)
}

func (d *Dispatcher) enqueue(ctx context.Context, aggregate *order.Order, kind notification.Kind) error {
	job, err := notification.NewJob(
		aggregate.ID(),
		aggregate.Addressee().PhoneNumber(),
		kind,
		d.policy.MaxAttempts,
	)
	if err != nil {
		return err
	}

	if err = d.queue.Enqueue(ctx, &job, d.policy.InitialDelay); err != nil {
		d.logger.WarnContext(ctx, "Failed to enqueue notification",
			"order_id", aggregate.ID().String(), "kind", string(kind), "error", err)
		return err
	}

	d.logger.InfoContext(ctx, "Notification enqueued",
		"order_id", aggregate.ID().String(), "kind", string(kind),
		"delay", d.policy.InitialDelay.String())
	return nil
}
