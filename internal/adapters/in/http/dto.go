// Package http exposes the parcel tracking API over Echo. Authenticated
// staff routes live under /api/v1/orders; the unauthenticated pickup flow
// lives under /api/v1/public/orders and is addressed purely by the order's
// url token.
package http

import (
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// CreateOrderRequest registers a parcel that arrived for a resident.
type CreateOrderRequest struct {
	CondominiumID string `json:"condominiumId"`
	AddresseeName string `json:"addresseeName"`
	PhoneNumber   string `json:"phoneNumber"`

	// Code optionally fixes the pickup code; left empty, one is generated.
	Code string `json:"code,omitempty"`
}

// AcceptOrderRequest confirms a pickup. The signature image travels
// base64-encoded in the body.
type AcceptOrderRequest struct {
	URL       string `json:"url"`
	Code      string `json:"code"`
	Signature string `json:"signature"`
}

// OrderView is the staff-facing representation of an order.
// It carries the pickup code so the staff can relay it to the addressee.
type OrderView struct {
	ID            string    `json:"id"`
	CondominiumID string    `json:"condominiumId"`
	URL           string    `json:"url"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	AddresseeName string    `json:"addresseeName"`
	PhoneNumber   string    `json:"phoneNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PublicOrderView is the reduced representation served on the pickup page.
type PublicOrderView struct {
	URL           string    `json:"url"`
	Status        string    `json:"status"`
	AddresseeName string    `json:"addresseeName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func orderViewFromAggregate(aggregate *order.Order) OrderView {
	return OrderView{
		ID:            aggregate.ID().String(),
		CondominiumID: aggregate.CondominiumID().String(),
		URL:           aggregate.URL(),
		Code:          aggregate.Code(),
		Status:        aggregate.Status().String(),
		AddresseeName: aggregate.Addressee().Name(),
		PhoneNumber:   aggregate.Addressee().PhoneNumber(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func orderViewFromResponse(resp queries.OrderResponse) OrderView {
	return OrderView{
		ID:            resp.ID.String(),
		CondominiumID: resp.CondominiumID.String(),
		URL:           resp.URL,
		Code:          resp.Code,
		Status:        resp.Status,
		AddresseeName: resp.AddresseeName,
		PhoneNumber:   resp.PhoneNumber,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}

func publicOrderViewFromResponse(resp queries.PublicOrderResponse) PublicOrderView {
	return PublicOrderView{
		URL:           resp.URL,
		Status:        resp.Status,
		AddresseeName: resp.AddresseeName,
		CreatedAt:     resp.CreatedAt,
	}
}
