package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand drops every line of the order carrying itemID.
// Removing an id the order does not contain is not an error.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID order.OrderID
	itemID  order.OrderItemID

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(orderID order.OrderID, itemID order.OrderItemID) (RemoveOrderItemCommand, error) {
	command := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return command, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() order.OrderID    { return c.orderID }
func (c RemoveOrderItemCommand) ItemID() order.OrderItemID { return c.itemID }

func (c *RemoveOrderItemCommand) setOrderID(id order.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *RemoveOrderItemCommand) setItemID(id order.OrderItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}
