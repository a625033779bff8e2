package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads a single order row for authenticated staff.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query, _ := NewGetOrderByIDQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // render 404
//	}
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no live
// order matches; soft-deleted rows are excluded.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

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
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	return scanOrderResponse(rows)
}

// scanOrderResponse maps the standard order projection, shared by all order
// query handlers. The column order must match the SELECT lists above.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		condominiumID uuid.UUID
	)

	err := rows.Scan(
		&id,
		&condominiumID,
		&resp.URL,
		&resp.Code,
		&resp.Status,
		&resp.AddresseeName,
		&resp.PhoneNumber,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	condoID, err := kernel.UUIDFromBytes(condominiumID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CondominiumID = condoID

	return resp, nil
}
