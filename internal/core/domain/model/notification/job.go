// Package notification defines the deferred notification job model and its
// per-job state machine. A job is owned by the dispatcher at creation and by
// the queue and worker afterwards; it is never shared mutably across workers.
package notification

import (
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// Kind identifies why a notification is being sent. The values mirror the
// triggering entry points: automatic enqueue on order creation and explicit
// operator resend.
type Kind string

const (
	KindOrderCreated Kind = "order.created"
	KindOrderResend  Kind = "order.resend"
)

// Validate checks that the kind is one of the known values.
func (k Kind) Validate() error {
	switch k {
	case KindOrderCreated, KindOrderResend:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known job kind", k))
	}
}

// Disposition is the terminal outcome of a job.
type Disposition string

const (
	// DispositionCompleted means the gateway accepted the notification.
	DispositionCompleted Disposition = "completed"

	// DispositionDead means the job failed permanently or exhausted its
	// attempts. Dead is terminal; recovery requires an explicit new enqueue.
	DispositionDead Disposition = "dead"
)

// ErrJobIsNotConstructed is returned when a Job was not created through NewJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Job is a deferred unit of work to alert a recipient about a parcel.
// The order id doubles as the deduplication key: at most one job per order
// may be outstanding at a time.
//
// Fields are exported because the job crosses the queue boundary and is
// serialized by the queue adapter. State transitions (attempt counting,
// terminal disposition) are owned by whoever holds the job lease.
type Job struct {
	OrderID     kernel.UUID `json:"-"`
	OrderIDRaw  string      `json:"orderId"`
	PhoneNumber string      `json:"phoneNumber"`
	Kind        Kind        `json:"kind"`

	// Attempts counts gateway invocations already made for this job.
	Attempts    int `json:"attempts"`
	MaxAttempts int `json:"maxAttempts"`
}

// NewJob builds a job for the given order id and recipient phone.
func NewJob(orderID kernel.UUID, phoneNumber string, kind Kind, maxAttempts int) (Job, error) {
	if err := orderID.Validate(); err != nil {
		return Job{}, err
	}
	if phoneNumber == "" {
		return Job{}, errs.NewValueIsRequiredError("phone number")
	}
	if err := kind.Validate(); err != nil {
		return Job{}, err
	}
	if maxAttempts <= 0 {
		return Job{}, errs.NewValueIsInvalidErrorWithCause(
			"max attempts", fmt.Errorf("%d is not greater than 0", maxAttempts))
	}

	return Job{
		OrderID:     orderID,
		OrderIDRaw:  orderID.String(),
		PhoneNumber: phoneNumber,
		Kind:        kind,
		MaxAttempts: maxAttempts,
	}, nil
}

// RestoreOrderID re-derives the typed order id after deserialization.
// Queue adapters call it when a job payload is read back from storage.
func (j *Job) RestoreOrderID() error {
	id, err := kernel.UUIDFromString(j.OrderIDRaw)
	if err != nil {
		return err
	}
	j.OrderID = id
	return nil
}

// RecordFailure increments the attempt counter after a transient failure.
func (j *Job) RecordFailure() {
	j.Attempts++
}

// Exhausted reports whether the job has used up its attempt budget.
func (j Job) Exhausted() bool {
	return j.Attempts >= j.MaxAttempts
}

// Payload is the human-readable message delivered through the gateway.
func (j Job) Payload() string {
	switch j.Kind {
	case KindOrderResend:
		return "Reminder: a parcel is waiting for you at the condominium front desk."
	default:
		return "A parcel has arrived for you at the condominium front desk."
	}
}
