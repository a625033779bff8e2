// Package order provides domain entities and business logic for parcel order
// management in the condominium hub. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, pickup credentials, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - Addressee: a value object holding the validated recipient name and phone number
//
// Key business rules:
//   - Orders must have a valid unique identifier, public url token, and pickup code
//   - Order status follows a defined workflow: Pending -> Delivered (Canceled is reserved)
//   - The signature blob is present exactly when the order is Delivered
//   - The pickup code is meaningful only while the order is Pending
//   - Soft deletion is independent of status and idempotent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
