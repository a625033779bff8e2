// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS architecture: handlers read directly
// through the database connection, bypassing aggregates and transactions.
package queries

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
)

// OrderResponse is the full order view returned to authenticated callers.
// It includes the secret pickup code, which the staff relays to the
// addressee out-of-band.
type OrderResponse struct {
	ID            kernel.UUID
	CondominiumID kernel.UUID
	URL           string
	Code          string
	Status        string
	AddresseeName string
	PhoneNumber   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicOrderResponse is the reduced view served on the unauthenticated
// pickup page. The code never appears here; the caller must already know it.
type PublicOrderResponse struct {
	URL           string
	Status        string
	AddresseeName string
	CreatedAt     time.Time
}
