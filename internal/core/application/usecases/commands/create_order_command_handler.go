package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order in pending status and returns its id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return order.OrderID{}, err
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(), cmd.Items(), cmd.options()...)
	if err != nil {
		return order.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return order.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.OrderID{}, err
	}

	return o.ID(), nil
}
