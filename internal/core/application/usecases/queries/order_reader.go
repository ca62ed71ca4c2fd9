// Package queries contains read-only operations. Handlers read with raw SQL
// and rebuild orders through the domain so derived totals always match what
// the aggregate itself would report.
package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRow struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	RestaurantID       uuid.UUID
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeliveryAddress    *string
	DeliveryFeeInCents *int64
	DiscountInCents    *int64
	Notes              *string
}

type itemRow struct {
	OrderID          uuid.UUID
	ItemID           uuid.UUID
	Name             string
	Quantity         int
	UnitPriceInCents int64
	Notes            *string
}

const selectOrders = `
	SELECT
		id,
		customer_id,
		restaurant_id,
		status,
		created_at,
		updated_at,
		delivery_address,
		delivery_fee_in_cents,
		discount_in_cents,
		notes
	FROM orders
`

// readSnapshots loads the orders matched by where (appended to selectOrders)
// together with their items and returns their snapshots in row order.
func readSnapshots(ctx context.Context, db *gorm.DB, where string, args ...any) ([]order.Snapshot, error) {
	var rows []orderRow
	if err := db.WithContext(ctx).Raw(selectOrders+where, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(rows))
	if len(rows) == 0 {
		return snapshots, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []itemRow
	if err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			quantity,
			unit_price_in_cents,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Scan(&items).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]itemRow, len(rows))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	for _, row := range rows {
		o, err := restore(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, o.Snapshot())
	}

	return snapshots, nil
}

func restore(row orderRow, itemRows []itemRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(itemRows))
	for _, r := range itemRows {
		itemID, idErr := kernel.UUIDFromBytes(r.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewOrderItem(order.OrderItemIDFromUUID(itemID), r.Name, r.Quantity, r.UnitPriceInCents, r.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		order.OrderIDFromUUID(id),
		customerID,
		restaurantID,
		items,
		order.Status(row.Status),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
		order.OptionsFrom(row.DeliveryAddress, row.DeliveryFeeInCents, row.DiscountInCents, row.Notes)...,
	)
}
