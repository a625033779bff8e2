// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The url token is unique across all rows, deleted ones included, so a token
// never resolves to two orders over the table's lifetime. Soft deletion is an
// explicit timestamp column rather than gorm.DeletedAt: reads filter on it
// manually and repeated deletes must keep the first timestamp.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CondominiumID uuid.UUID `gorm:"type:uuid;index"`
	URL           string    `gorm:"uniqueIndex;not null"`
	Code          string    `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);index;not null"`
	AddresseeName string    `gorm:"not null"`
	PhoneNumber   string    `gorm:"index;not null"`
	Signature     []byte
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
	DeletedAt     *time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CondominiumID: aggregate.CondominiumID().Bytes(),
		URL:           aggregate.URL(),
		Code:          aggregate.Code(),
		Status:        aggregate.Status().String(),
		AddresseeName: aggregate.Addressee().Name(),
		PhoneNumber:   aggregate.Addressee().PhoneNumber(),
		Signature:     aggregate.Signature(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		DeletedAt:     aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and signature using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	condominiumID, err := kernel.UUIDFromBytes(dto.CondominiumID[:])
	if err != nil {
		return nil, err
	}

	addressee, err := order.NewAddressee(dto.AddresseeName, dto.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		condominiumID,
		dto.URL,
		dto.Code,
		addressee,
		order.StatusFromString(dto.Status),
		dto.Signature,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeletedAt,
	)
}
