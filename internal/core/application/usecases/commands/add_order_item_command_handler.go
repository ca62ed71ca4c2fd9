package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the item and returns the id it was given.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (order.OrderItemID, error) {
	if err := cmd.Validate(); err != nil {
		return order.OrderItemID{}, err
	}

	item := cmd.Item()
	err := modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		o.AddItem(item)
		return nil
	})
	if err != nil {
		return order.OrderItemID{}, err
	}

	return item.ID(), nil
}
