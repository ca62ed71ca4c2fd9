package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository persists order aggregates in the orders and order_items tables.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackOrder(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := validateForSave(aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackOrder(aggregate)
	return nil
}

func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := validateForSave(aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&dto).Select("*").Omit(clause.Associations).Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackOrder(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id order.OrderID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id order.OrderID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) GetAllInStatusUpdatedBefore(
	ctx context.Context,
	status order.Status,
	cutoff time.Time,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", orderedItems).
		Where("status = ? AND updated_at < ?", status.String(), cutoff).
		Order("updated_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) get(db *gorm.DB, id order.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.Preload("Items", orderedItems).First(&dto, "id = ?", id.UUID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// validateForSave rejects aggregates that could not be restored once stored.
// UpdateStatus accepts any token, so the status is checked here.
func validateForSave(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return aggregate.Status().Validate()
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
