package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends one line to an existing order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID order.OrderID
	item    order.OrderItem

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID order.OrderID, draft ItemDraft) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItem(draft),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() order.OrderID { return c.orderID }
func (c AddOrderItemCommand) Item() order.OrderItem  { return c.item }

func (c *AddOrderItemCommand) setOrderID(id order.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddOrderItemCommand) setItem(draft ItemDraft) error {
	item, err := draft.build()
	if err != nil {
		return err
	}

	c.item = item
	return nil
}
