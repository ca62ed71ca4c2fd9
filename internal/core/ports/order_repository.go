// Package ports defines the contracts between the ordering core and its
// infrastructure: persistence, transactions and event publishing.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and returned in insertion order, duplicates included.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order, replacing its items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id order.OrderID) (*order.Order, error)

	// GetForUpdate is Get with the row locked until the surrounding transaction
	// ends. Concurrent writers of the same order are serialized here rather than
	// inside the aggregate.
	GetForUpdate(ctx context.Context, id order.OrderID) (*order.Order, error)

	// GetAllInStatusUpdatedBefore returns orders in status whose last change is
	// older than cutoff, oldest first, locked for update.
	GetAllInStatusUpdatedBefore(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
