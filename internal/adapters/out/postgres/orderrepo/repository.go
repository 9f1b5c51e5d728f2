package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"driverapp/internal/devbackend/domain/delivery"
	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.DeliveryRepository = &GormOrderRepository{}

// GormOrderRepository implements DeliveryRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the deliveries whose events are published on commit.
type aggregateTracker interface {
	TrackAggregate(aggregate *delivery.Delivery)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a draft as a READY_FOR_DELIVERY order without driver.
func (r *GormOrderRepository) Add(ctx context.Context, draft delivery.Draft) (*delivery.Delivery, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	dto := fromDraft(draft)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the mutable columns, status and driver.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":    dto.Status,
		"driver_id": dto.DriverID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get loads a delivery and locks its row for the rest of the transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*delivery.Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
