package queries

import (
	"context"

	"gorm.io/gorm"

	"parcelhub/internal/pkg/errs"
)

// GetOrderByURLQueryHandler serves the unauthenticated pickup page lookup.
// The projection deliberately omits the pickup code and both identifiers:
// possession of the URL token grants viewing, nothing more.
type GetOrderByURLQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByURLQueryHandler creates a handler for public order lookups.
func NewGetOrderByURLQueryHandler(db *gorm.DB) GetOrderByURLQueryHandler {
	return GetOrderByURLQueryHandler{db: db}
}

// Handle resolves the URL token among live orders. Unknown and soft-deleted
// tokens are indistinguishable in the result.
func (h GetOrderByURLQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByURLQuery,
) (PublicOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return PublicOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			url,
			status,
			addressee_name,
			created_at
		FROM orders
		WHERE url = ? AND deleted_at IS NULL
	`, query.URL()).Rows()
	if err != nil {
		return PublicOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PublicOrderResponse{}, err
		}
		return PublicOrderResponse{}, errs.NewObjectNotFoundError("url", query.URL())
	}

	var resp PublicOrderResponse
	err = rows.Scan(
		&resp.URL,
		&resp.Status,
		&resp.AddresseeName,
		&resp.CreatedAt,
	)
	if err != nil {
		return PublicOrderResponse{}, err
	}

	return resp, nil
}
