package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Timestamps are owned by the domain,
// so gorm's automatic time tracking is switched off.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status             string         `gorm:"type:varchar(32);not null;index:idx_orders_status_updated_at,priority:1"`
	CreatedAt          time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time      `gorm:"not null;autoUpdateTime:false;index:idx_orders_status_updated_at,priority:2"`
	DeliveryAddress    *string        `gorm:"type:text"`
	DeliveryFeeInCents *int64         `gorm:"type:bigint"`
	DiscountInCents    *int64         `gorm:"type:bigint"`
	Notes              *string        `gorm:"type:text"`
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is keyed by (order_id, position) rather than by item id: the
// aggregate tolerates repeated item ids and its item order is meaningful.
type OrderItemDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position         int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Quantity         int       `gorm:"type:int;not null"`
	UnitPriceInCents int64     `gorm:"type:bigint;not null"`
	Notes            *string   `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:          orderID,
			Position:         position,
			ItemID:           item.ID().UUID().Bytes(),
			Name:             item.Name(),
			Quantity:         item.Quantity(),
			UnitPriceInCents: item.UnitPriceInCents(),
			Notes:            item.Notes(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		CustomerID:         aggregate.CustomerID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		DeliveryFeeInCents: aggregate.DeliveryFeeInCents(),
		DiscountInCents:    aggregate.DiscountInCents(),
		Notes:              aggregate.Notes(),
		Items:              items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
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
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		order.OptionsFrom(dto.DeliveryAddress, dto.DeliveryFeeInCents, dto.DiscountInCents, dto.Notes)...,
	)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(order.OrderItemIDFromUUID(id), dto.Name, dto.Quantity, dto.UnitPriceInCents, dto.Notes)
}
