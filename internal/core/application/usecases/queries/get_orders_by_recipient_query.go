package queries

import (
	"errors"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetOrdersByRecipientQueryIsNotConstructed = errors.New(
	"GetOrdersByRecipientQuery must be created via NewGetOrdersByRecipientQuery constructor",
)

// GetOrdersByRecipientQuery lists the orders addressed to one recipient,
// identified by phone number. The caller identity resolved at the HTTP edge
// supplies the number; it only scopes the listing and plays no part in
// lifecycle transitions.
//
// Example:
//
//	query, err := NewGetOrdersByRecipientQuery("+5511987654321")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersByRecipientQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d parcels waiting\n", len(orders))
type GetOrdersByRecipientQuery struct { //nolint:recvcheck //using for validation
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewGetOrdersByRecipientQuery creates a query scoped to one recipient.
func NewGetOrdersByRecipientQuery(phoneNumber string) (GetOrdersByRecipientQuery, error) {
	query := GetOrdersByRecipientQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPhoneNumber(phoneNumber); err != nil {
		return GetOrdersByRecipientQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRecipientQueryIsNotConstructed)
}

// PhoneNumber returns the recipient scope of the listing.
func (q GetOrdersByRecipientQuery) PhoneNumber() string {
	return q.phoneNumber
}

func (q *GetOrdersByRecipientQuery) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	q.phoneNumber = phoneNumber
	return nil
}
