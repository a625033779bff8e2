package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every read filters out soft-deleted rows so a deleted order answers
// exactly like one that never existed.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a live order by ID. Soft-deleted orders report not found.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted_at IS NULL", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByURL retrieves a live order by its public url token.
func (r *GormOrderRepository) GetByURL(ctx context.Context, url string) (*order.Order, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "url = ? AND deleted_at IS NULL", url).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", url)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsURL reports whether any row, soft-deleted ones included, carries the
// url token. Tokens are never recycled.
func (r *GormOrderRepository) ExistsURL(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, errs.NewValueIsRequiredError("url")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("url = ?", url).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SoftDelete stamps deleted_at on a live order. Unknown ids and repeated
// deletes succeed without touching anything, so the first deletion timestamp
// is preserved.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID, now time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND deleted_at IS NULL", id.Bytes()).
		Update("deleted_at", now).Error
}

// CompareAndSetDelivered performs the atomic accept transition. The status
// predicate makes concurrent acceptances race safely: exactly one caller sees
// a row affected, everyone else gets false.
func (r *GormOrderRepository) CompareAndSetDelivered(
	ctx context.Context,
	url string,
	signature []byte,
	now time.Time,
) (bool, error) {
	if url == "" {
		return false, errs.NewValueIsRequiredError("url")
	}
	if len(signature) == 0 {
		return false, errs.NewValueIsRequiredError("signature")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("url = ? AND status = ? AND deleted_at IS NULL", url, order.Pending.String()).
		Updates(map[string]any{
			"status":     order.Delivered.String(),
			"signature":  signature,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
