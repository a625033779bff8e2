// Package ports defines the contracts between the application core and
// infrastructure adapters: persistence, the notification queue, and the
// outbound notification gateway. Keeping these as interfaces lets commands
// and workers stay free of driver details.
package ports

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All read methods exclude soft-deleted orders; a deleted order is
// indistinguishable from one that never existed.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist
	// or has been soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByURL retrieves an order aggregate by its public URL token.
	// Returns errs.ObjectNotFoundError when no live order carries the token.
	GetByURL(ctx context.Context, url string) (*order.Order, error)

	// ExistsURL reports whether any order, including soft-deleted ones,
	// already carries the given URL token. Used to keep tokens unique.
	ExistsURL(ctx context.Context, url string) (bool, error)

	// SoftDelete marks the order as deleted without removing the row.
	// Deleting an already-deleted or unknown order is a no-op.
	SoftDelete(ctx context.Context, id kernel.UUID, now time.Time) error

	// CompareAndSetDelivered atomically transitions the order identified by
	// its URL token from pending to delivered, storing the signature.
	// Returns false when the order was not pending anymore, which means a
	// concurrent acceptance won the race.
	CompareAndSetDelivered(ctx context.Context, url string, signature []byte, now time.Time) (bool, error)
}
