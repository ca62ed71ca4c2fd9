package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		o.RemoveItem(cmd.ItemID())
		return nil
	})
}
