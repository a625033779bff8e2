package ports

import (
	"context"
	"fmt"

	"parcelhub/internal/core/domain/model/notification"
)

// SendError describes a failed delivery attempt. Permanent failures, such as
// a rejected recipient number, must not be retried; transient ones may be.
type SendError struct {
	Permanent bool
	Cause     error
}

func (e *SendError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	return fmt.Sprintf("notification send failed (%s): %s", kind, e.Cause)
}

func (e *SendError) Unwrap() error {
	return e.Cause
}

// NotificationGateway sends a pickup notification to the addressee over an
// external channel. Implementations classify failures via SendError so the
// worker can decide between retrying and dropping the job.
type NotificationGateway interface {
	Send(ctx context.Context, job *notification.Job) error
}
