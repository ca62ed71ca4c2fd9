// Package postgres provides the GORM-based unit of work used by the ordering
// commands. A unit of work wraps one database transaction, hands out
// repositories bound to it and remembers every order aggregate they save.
//
// After a successful commit the remembered orders are announced through
// ports.OrderEventPublisher, one event per order carrying its final snapshot.
// Publishing happens outside the transaction: a broker outage is logged and
// never undoes or fails a committed change.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork instance.
package postgres

import (
	"context"
	"log/slog"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates one database transaction and the orders saved in it.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	tracked   []*order.Order
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.tracked = nil
	return nil
}

// Commit finalizes the transaction and then publishes the tracked orders.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = nil
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and forgets the tracked orders.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

// OrderRepository returns a repository bound to the open transaction, or to
// the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackOrder registers an order saved through this unit of work. Saving the
// same order twice keeps a single entry.
func (uow *GormUnitOfWork) TrackOrder(aggregate *order.Order) {
	for i, tracked := range uow.tracked {
		if tracked.ID().IsEqual(aggregate.ID()) {
			uow.tracked[i] = aggregate
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

// TrackedOrders returns the orders saved since Begin, in first-save order.
func (uow *GormUnitOfWork) TrackedOrders() []*order.Order {
	out := make([]*order.Order, len(uow.tracked))
	copy(out, uow.tracked)
	return out
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = nil

	if uow.publisher == nil {
		return
	}

	for _, aggregate := range tracked {
		if err := uow.publisher.PublishOrderChanged(ctx, aggregate.Snapshot()); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish order changed event",
				"order_id", aggregate.ID().String(),
				"error", err)
		}
	}
}
