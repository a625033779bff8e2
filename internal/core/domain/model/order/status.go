package order

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct pickup workflow.
//
// State transitions:
//
//	Pending ──┬──> Delivered
//	          │
//	          └──> Canceled (reserved, not reachable by current operations)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first registered.
	// Orders in this status are waiting for the resident to pick them up.
	Pending

	// Delivered indicates the parcel was handed over to the resident.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled is reserved for orders withdrawn before pickup.
	// No current operation produces it, but persistence accepts it.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// StatusFromString parses the persisted string representation back into a
// Status. Unrecognized strings map to Unknown, which fails Validate.
func StatusFromString(value string) Status {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status
		}
	}
	return Unknown
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Delivered, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDeliver checks if the status allows the accept transition without
// performing it. Only Pending orders can be delivered; everything else
// reports ErrOrderAlreadyAccepted so concurrent racers get a uniform answer.
func (s Status) ValidateDeliver() error {
	if s != Pending {
		return ErrOrderAlreadyAccepted
	}
	return nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//
// Returns (Delivered, nil) on a valid transition, or (0, error) when the
// transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateDeliver(); err != nil {
		return 0, err
	}

	return Delivered, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending -> Canceled
//
// The transition exists for completeness of the state machine; no current
// operation invokes it.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}

// ValidateCanHaveSignature validates the consistency between order status and
// the stored signature, enforcing that a signature exists exactly when the
// order is Delivered.
func (s Status) ValidateCanHaveSignature(signature bool) error {
	if signature && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to carry a signature", s.String()),
		)
	}

	if !signature && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires a stored signature", s.String()),
		)
	}

	return nil
}
