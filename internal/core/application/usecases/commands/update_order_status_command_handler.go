package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order to a new status, subject to
// the configured transition table. A nil table allows every transition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	transitions order.TransitionTable
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	transitions order.TransitionTable,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := h.transitions.Check(o.Status(), cmd.Status()); err != nil {
			return err
		}
		o.UpdateStatus(cmd.Status())
		return nil
	})
}
