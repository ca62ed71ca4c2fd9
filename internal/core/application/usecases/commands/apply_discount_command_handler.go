package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		o.ApplyDiscount(cmd.AmountInCents())
		return nil
	})
}
