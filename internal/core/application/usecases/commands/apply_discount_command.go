package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand replaces the order discount. The amount is not range
// checked: a discount larger than the subtotal yields a negative total.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID       order.OrderID
	amountInCents int64

	guard guard.ConstructorGuard
}

func NewApplyDiscountCommand(orderID order.OrderID, amountInCents int64) (ApplyDiscountCommand, error) {
	command := ApplyDiscountCommand{
		amountInCents: amountInCents,
		guard:         guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ApplyDiscountCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) OrderID() order.OrderID { return c.orderID }
func (c ApplyDiscountCommand) AmountInCents() int64   { return c.amountInCents }
