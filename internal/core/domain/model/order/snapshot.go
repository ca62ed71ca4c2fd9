package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ItemSnapshot is the serialized form of an OrderItem.
type ItemSnapshot struct {
	OrderItemID      string  `json:"order_item_id"`
	Name             string  `json:"name"`
	Quantity         int     `json:"quantity"`
	UnitPriceInCents int64   `json:"unit_price_in_cents"`
	SubtotalInCents  int64   `json:"subtotal_in_cents"`
	Notes            *string `json:"notes"`
}

// Snapshot is the canonical record of an order used for persistence and API
// responses: every stored field plus the derived quantity and totals.
// Absent optional fields serialize as null.
type Snapshot struct {
	OrderID            string         `json:"order_id"`
	CustomerID         string         `json:"customer_id"`
	RestaurantID       string         `json:"restaurant_id"`
	Items              []ItemSnapshot `json:"items"`
	Status             Status         `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeliveryAddress    *string        `json:"delivery_address"`
	DeliveryFeeInCents *int64         `json:"delivery_fee_in_cents"`
	DiscountInCents    *int64         `json:"discount_in_cents"`
	Notes              *string        `json:"notes"`
	ItemsQuantity      int            `json:"items_quantity"`
	SubtotalInCents    int64          `json:"subtotal_in_cents"`
	TotalInCents       int64          `json:"total_in_cents"`
}

func (o *Order) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.Snapshot())
	}

	return Snapshot{
		OrderID:            o.id.String(),
		CustomerID:         o.customerID.String(),
		RestaurantID:       o.restaurantID.String(),
		Items:              items,
		Status:             o.status,
		CreatedAt:          o.createdAt,
		UpdatedAt:          o.updatedAt,
		DeliveryAddress:    cloneString(o.deliveryAddress),
		DeliveryFeeInCents: cloneInt64(o.deliveryFeeInCents),
		DiscountInCents:    cloneInt64(o.discountInCents),
		Notes:              cloneString(o.notes),
		ItemsQuantity:      o.ItemsQuantity(),
		SubtotalInCents:    o.SubtotalInCents(),
		TotalInCents:       o.TotalInCents(),
	}
}

// MarshalJSON encodes the snapshot. The value receiver makes Order and *Order
// encode alike.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Snapshot())
}

// RestoreFromSnapshot rebuilds an order from its canonical record. The derived
// fields of s are ignored and recomputed by the restored aggregate.
func RestoreFromSnapshot(s Snapshot, opts ...Option) (*Order, error) {
	id, idErr := OrderIDFromString(s.OrderID)
	customerID, customerErr := kernel.UUIDFromString(s.CustomerID)
	restaurantID, restaurantErr := kernel.UUIDFromString(s.RestaurantID)
	if err := errors.Join(
		wrapParam("order_id", idErr),
		wrapParam("customer_id", customerErr),
		wrapParam("restaurant_id", restaurantErr),
	); err != nil {
		return nil, err
	}

	items := make([]OrderItem, 0, len(s.Items))
	for i, is := range s.Items {
		itemID, err := OrderItemIDFromString(is.OrderItemID)
		if err != nil {
			return nil, wrapParam(fmt.Sprintf("items[%d].order_item_id", i), err)
		}
		item, err := NewOrderItem(itemID, is.Name, is.Quantity, is.UnitPriceInCents, is.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	restoreOpts := append(OptionsFrom(s.DeliveryAddress, s.DeliveryFeeInCents, s.DiscountInCents, s.Notes), opts...)

	return RestoreOrder(id, customerID, restaurantID, items, s.Status, s.CreatedAt, s.UpdatedAt, restoreOpts...)
}

func wrapParam(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}
