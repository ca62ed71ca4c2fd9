package order

import (
	"foodorder/internal/core/domain/model/kernel"
)

// OrderID identifies an Order. Equality is by value.
type OrderID struct {
	value kernel.UUID
}

func NewOrderID() OrderID {
	return OrderID{value: kernel.NewUUID()}
}

// OrderIDFromUUID wraps an existing UUID; the result must still pass Validate.
func OrderIDFromUUID(id kernel.UUID) OrderID {
	return OrderID{value: id}
}

func OrderIDFromString(s string) (OrderID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: id}, nil
}

func (id OrderID) UUID() kernel.UUID          { return id.value }
func (id OrderID) String() string             { return id.value.String() }
func (id OrderID) IsEqual(other OrderID) bool { return id.value.IsEqual(other.value) }
func (id OrderID) Validate() error            { return id.value.Validate() }

// OrderItemID identifies an OrderItem within its order. Equality is by value.
type OrderItemID struct {
	value kernel.UUID
}

func NewOrderItemID() OrderItemID {
	return OrderItemID{value: kernel.NewUUID()}
}

func OrderItemIDFromUUID(id kernel.UUID) OrderItemID {
	return OrderItemID{value: id}
}

func OrderItemIDFromString(s string) (OrderItemID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return OrderItemID{}, err
	}
	return OrderItemID{value: id}, nil
}

func (id OrderItemID) UUID() kernel.UUID              { return id.value }
func (id OrderItemID) String() string                 { return id.value.String() }
func (id OrderItemID) IsEqual(other OrderItemID) bool { return id.value.IsEqual(other.value) }
func (id OrderItemID) Validate() error                { return id.value.Validate() }
