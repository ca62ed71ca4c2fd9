package order

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Upper bounds keep quantity × unit price within int64.
const (
	MaxItemQuantity     = 1_000_000
	MaxUnitPriceInCents = int64(1_000_000_000_000)
)

var (
	// ErrOrderItemIsNotConstructed is returned for OrderItem values not built by NewOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
)

// OrderItem is one line of an order: a named dish, how many, and the price of one.
//
// Items are immutable. Changing a line means removing the item from its order and
// adding a replacement. Two items are the same item iff their ids are equal; equal
// names and prices do not make items equal.
type OrderItem struct { //nolint:recvcheck // setters use pointer receivers during construction
	id               OrderItemID
	name             string
	quantity         int
	unitPriceInCents int64
	notes            *string

	guard guard.ConstructorGuard
}

// NewOrderItem validates and builds a line item. Quantity must be in
// [1, MaxItemQuantity] and the unit price in [0, MaxUnitPriceInCents]; notes may
// be nil. All field errors are joined.
func NewOrderItem(
	id OrderItemID,
	name string,
	quantity int,
	unitPriceInCents int64,
	notes *string,
) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPriceInCents),
	); err != nil {
		return OrderItem{}, err
	}
	item.notes = cloneString(notes)

	return item, nil
}

func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) ID() OrderItemID         { return i.id }
func (i OrderItem) Name() string            { return i.name }
func (i OrderItem) Quantity() int           { return i.quantity }
func (i OrderItem) UnitPriceInCents() int64 { return i.unitPriceInCents }
func (i OrderItem) Notes() *string          { return cloneString(i.notes) }

// SubtotalInCents is quantity × unit price.
func (i OrderItem) SubtotalInCents() int64 {
	return int64(i.quantity) * i.unitPriceInCents
}

// IsEqual compares identity only.
func (i OrderItem) IsEqual(other OrderItem) bool {
	return i.id.IsEqual(other.id)
}

// Snapshot returns the flat serialized form, including the computed subtotal.
func (i OrderItem) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		OrderItemID:      i.id.String(),
		Name:             i.name,
		Quantity:         i.quantity,
		UnitPriceInCents: i.unitPriceInCents,
		SubtotalInCents:  i.SubtotalInCents(),
		Notes:            cloneString(i.notes),
	}
}

func (i *OrderItem) setID(id OrderItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPriceInCents int64) error {
	if unitPriceInCents < 0 || unitPriceInCents > MaxUnitPriceInCents {
		return errs.NewValueIsOutOfRangeError("unit_price_in_cents", unitPriceInCents, 0, MaxUnitPriceInCents)
	}
	i.unitPriceInCents = unitPriceInCents
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
