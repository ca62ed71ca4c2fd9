package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemDraft describes an order line before it has an identifier.
type ItemDraft struct {
	Name             string
	Quantity         int
	UnitPriceInCents int64
	Notes            *string
}

// OrderDetails carries the optional parts of a new order. Nil means absent.
type OrderDetails struct {
	DeliveryAddress    *string
	DeliveryFeeInCents *int64
	DiscountInCents    *int64
	Notes              *string
}

// CreateOrderCommand places a new pending order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID,
//	    []ItemDraft{{Name: "Pad thai", Quantity: 2, UnitPriceInCents: 1250}},
//	    OrderDetails{DeliveryFeeInCents: &fee})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []order.OrderItem
	details      OrderDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the ids and every item draft. Each draft
// gets a fresh OrderItemID here.
func NewCreateOrderCommand(
	customerID, restaurantID kernel.UUID,
	drafts []ItemDraft,
	details OrderDetails,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setItems(drafts),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateOrderCommand) Details() OrderDetails     { return c.details }

func (c CreateOrderCommand) Items() []order.OrderItem {
	out := make([]order.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c CreateOrderCommand) options() []order.Option {
	return order.OptionsFrom(
		c.details.DeliveryAddress,
		c.details.DeliveryFeeInCents,
		c.details.DiscountInCents,
		c.details.Notes,
	)
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customer_id: %w", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("restaurant_id: %w", err)
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(drafts []ItemDraft) error {
	items := make([]order.OrderItem, 0, len(drafts))
	var errList []error
	for i, draft := range drafts {
		item, err := draft.build()
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.items = items
	return nil
}

func (d ItemDraft) build() (order.OrderItem, error) {
	return order.NewOrderItem(order.NewOrderItemID(), d.Name, d.Quantity, d.UnitPriceInCents, d.Notes)
}
