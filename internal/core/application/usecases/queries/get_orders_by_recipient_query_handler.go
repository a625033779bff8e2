package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByRecipientQueryHandler lists every live order addressed to the
// given phone number, newest first.
type GetOrdersByRecipientQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRecipientQueryHandler creates a handler for recipient-scoped
// order listings. Requires a GORM database connection for query execution.
func NewGetOrdersByRecipientQueryHandler(db *gorm.DB) GetOrdersByRecipientQueryHandler {
	return GetOrdersByRecipientQueryHandler{db: db}
}

// Handle executes the listing. Soft-deleted orders are excluded; an empty
// result is a valid answer, not an error.
func (h GetOrdersByRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRecipientQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			condominium_id,
			url,
			code,
			status,
			addressee_name,
			phone_number,
			created_at,
			updated_at
		FROM orders
		WHERE phone_number = ? AND deleted_at IS NULL
		ORDER BY created_at DESC, id
	`, query.PhoneNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
