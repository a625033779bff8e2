package order

import (
	"crypto/subtle"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCodeMismatch is returned when the pickup code presented at acceptance
	// differs from the one stored on the order.
	ErrCodeMismatch = errors.New("pickup code does not match")

	// ErrOrderAlreadyAccepted is returned when the accept transition is attempted
	// on an order that is no longer Pending.
	ErrOrderAlreadyAccepted = errors.New("order has already been accepted")
)

// Order represents a parcel registered for pickup by a condominium resident.
// It is the aggregate root managing the order lifecycle from registration
// through acceptance.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and condominium reference
//   - Must carry a public url token and a secret pickup code
//   - The pickup code is compared only while the order is Pending
//   - The signature blob exists exactly when the order is Delivered
//   - Soft deletion is idempotent and independent of status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	condominiumID kernel.UUID

	// url is the public, unguessable token for unauthenticated pickup access.
	// Unique among non-deleted orders, immutable after creation.
	url string

	// code is the secret the resident presents at pickup.
	code string

	addressee Addressee
	status    Status

	// signature is the captured proof-of-receipt blob, stored verbatim.
	signature []byte

	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status. The url token and pickup
// code are generated (and collision-checked) by the caller so the aggregate
// stays free of storage concerns.
func NewOrder(
	id kernel.UUID,
	condominiumID kernel.UUID,
	url string,
	code string,
	addressee Addressee,
) (*Order, error) {
	now := time.Now().UTC()
	newOrder := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		newOrder.setID(id),
		newOrder.setCondominiumID(condominiumID),
		newOrder.setURL(url),
		newOrder.setCode(code),
		newOrder.setAddressee(addressee),
	); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, signature, and timestamps. The restored order
// behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	condominiumID kernel.UUID,
	url string,
	code string,
	addressee Addressee,
	status Status,
	signature []byte,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	restored := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setCondominiumID(condominiumID),
		restored.setURL(url),
		restored.setCode(code),
		restored.setAddressee(addressee),
		restored.setStatus(status, signature),
	); err != nil {
		return nil, err
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CondominiumID returns the condominium the parcel was delivered to.
func (o *Order) CondominiumID() kernel.UUID {
	return o.condominiumID
}

// URL returns the public url token of the order.
func (o *Order) URL() string {
	return o.url
}

// Code returns the secret pickup code.
func (o *Order) Code() string {
	return o.code
}

// Addressee returns the recipient of the parcel.
func (o *Order) Addressee() Addressee {
	return o.addressee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Signature returns the stored proof-of-receipt blob.
// It is nil unless the order is Delivered.
func (o *Order) Signature() []byte {
	return o.signature
}

// CreatedAt returns when the order was registered.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-deletion timestamp, or nil for active orders.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// MatchCode compares the presented pickup code against the stored one in
// constant time. The comparison is meaningful only while the order is Pending.
func (o *Order) MatchCode(code string) bool {
	return subtle.ConstantTimeCompare([]byte(o.code), []byte(code)) == 1
}

// Deliver marks the order as accepted by the resident, storing the captured
// signature and bumping updatedAt.
//
// Business rules:
//   - The order must be Pending; otherwise ErrOrderAlreadyAccepted is returned
//   - The signature must be present
//
// Note that under concurrent acceptance the authoritative transition is the
// store's conditional update; this method enforces the same rules for the
// in-memory aggregate.
func (o *Order) Deliver(signature []byte) error {
	if len(signature) == 0 {
		return errs.NewValueIsRequiredError("signature")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.signature = signature
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkDeleted soft-deletes the order. Repeated calls keep the timestamp from
// the first call, making the operation idempotent.
func (o *Order) MarkDeleted() {
	if o.deletedAt != nil {
		return
	}

	now := time.Now().UTC()
	o.deletedAt = &now
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCondominiumID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.condominiumID = id
	return nil
}

func (o *Order) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	o.url = url
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setAddressee(addressee Addressee) error {
	if err := addressee.Validate(); err != nil {
		return err
	}
	o.addressee = addressee
	return nil
}

func (o *Order) setStatus(status Status, signature []byte) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveSignature(len(signature) > 0); err != nil {
		return err
	}

	o.status = status
	o.signature = signature
	return nil
}
