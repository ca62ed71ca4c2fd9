package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned for Order values not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the ordering domain. A customer places it against
// a restaurant; it owns its line items and tracks fulfilment status and timestamps.
//
// Order follows these invariants:
//   - created via NewOrder it starts in Pending with createdAt == updatedAt
//   - updatedAt never precedes createdAt and never moves backwards
//   - every mutating method refreshes updatedAt
//   - derived totals are recomputed from current state on each call
//
// Mutators accept any input. Discounts larger than the order value yield a
// negative total, items sharing an id are kept side by side, and any status may
// follow any other. Callers wanting stricter rules check them before calling.
//
// An Order is not safe for concurrent mutation; callers serialize access
// (the persistence layer locks the row for the duration of a unit of work).
type Order struct { //nolint:recvcheck // MarshalJSON uses a value receiver
	id           OrderID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// items keeps insertion order; it is never shared outside the aggregate
	items []OrderItem

	status    Status
	createdAt time.Time
	updatedAt time.Time

	// optional fields; nil means "not provided"
	deliveryAddress    *string
	deliveryFeeInCents *int64
	discountInCents    *int64
	notes              *string

	clock kernel.Clock
	guard guard.ConstructorGuard
}

// Option sets an optional attribute of an order at construction or restore time.
type Option func(*Order)

func WithDeliveryAddress(address string) Option {
	return func(o *Order) { o.deliveryAddress = &address }
}

func WithDeliveryFee(amountInCents int64) Option {
	return func(o *Order) { o.deliveryFeeInCents = &amountInCents }
}

func WithDiscount(amountInCents int64) Option {
	return func(o *Order) { o.discountInCents = &amountInCents }
}

func WithNotes(notes string) Option {
	return func(o *Order) { o.notes = &notes }
}

// OptionsFrom turns optional attributes into options. Nil arguments are skipped,
// leaving the attribute absent.
func OptionsFrom(deliveryAddress *string, deliveryFeeInCents, discountInCents *int64, notes *string) []Option {
	opts := make([]Option, 0, 4)
	if deliveryAddress != nil {
		opts = append(opts, WithDeliveryAddress(*deliveryAddress))
	}
	if deliveryFeeInCents != nil {
		opts = append(opts, WithDeliveryFee(*deliveryFeeInCents))
	}
	if discountInCents != nil {
		opts = append(opts, WithDiscount(*discountInCents))
	}
	if notes != nil {
		opts = append(opts, WithNotes(*notes))
	}
	return opts
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(clock kernel.Clock) Option {
	return func(o *Order) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewOrder places a new order. It assigns a fresh OrderID, sets the status to
// Pending and stamps createdAt and updatedAt with the same instant.
//
// items may be empty; an order can start blank and accrue items. The customer and
// restaurant ids must be constructed, every item must come from NewOrderItem, and
// a supplied delivery fee or discount must not be negative.
func NewOrder(customerID, restaurantID kernel.UUID, items []OrderItem, opts ...Option) (*Order, error) {
	o := newOrder(opts)

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		validateNonNegative("delivery_fee_in_cents", o.deliveryFeeInCents),
		validateNonNegative("discount_in_cents", o.discountInCents),
	); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	o.id = NewOrderID()
	o.status = Pending
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Identity, status and
// timestamps are validated; monetary fields are taken as stored, since
// ApplyDiscount may legitimately have recorded any amount.
func RestoreOrder(
	id OrderID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItem,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	opts ...Option,
) (*Order, error) {
	o := newOrder(opts)

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func newOrder(opts []Option) *Order {
	o := &Order{
		items: make([]OrderItem, 0),
		clock: kernel.SystemClock(),
		guard: guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares identity only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() OrderID                { return o.id }
func (o *Order) CustomerID() kernel.UUID    { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID  { return o.restaurantID }
func (o *Order) Status() Status             { return o.status }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }
func (o *Order) DeliveryAddress() *string   { return cloneString(o.deliveryAddress) }
func (o *Order) DeliveryFeeInCents() *int64 { return cloneInt64(o.deliveryFeeInCents) }
func (o *Order) DiscountInCents() *int64    { return cloneInt64(o.discountInCents) }
func (o *Order) Notes() *string             { return cloneString(o.notes) }

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// ItemsQuantity is the sum of item quantities.
func (o *Order) ItemsQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// SubtotalInCents is the sum of item subtotals.
func (o *Order) SubtotalInCents() int64 {
	var total int64
	for _, item := range o.items {
		total += item.SubtotalInCents()
	}
	return total
}

// TotalInCents is subtotal + delivery fee - discount, absent amounts counting as 0.
// The result is negative when the discount exceeds subtotal plus fee.
func (o *Order) TotalInCents() int64 {
	return o.SubtotalInCents() + valueOrZero(o.deliveryFeeInCents) - valueOrZero(o.discountInCents)
}

// UpdateStatus overwrites the status. No transition is rejected here.
func (o *Order) UpdateStatus(status Status) {
	o.status = status
	o.touch()
}

// AddItem appends item to the end of the list. Items are not deduplicated by id.
func (o *Order) AddItem(item OrderItem) {
	o.items = append(o.items, item)
	o.touch()
}

// RemoveItem drops every item whose id equals itemID. A missing id is not an
// error; updatedAt is refreshed either way.
func (o *Order) RemoveItem(itemID OrderItemID) {
	kept := make([]OrderItem, 0, len(o.items))
	for _, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			kept = append(kept, item)
		}
	}
	o.items = kept
	o.touch()
}

// ApplyDiscount sets the discount, replacing any previous one. The amount is not
// bounded by the order value.
func (o *Order) ApplyDiscount(amountInCents int64) {
	o.discountInCents = &amountInCents
	o.touch()
}

func (o *Order) touch() {
	clock := o.clock
	if clock == nil {
		clock = kernel.SystemClock()
	}

	now := clock.Now()
	if now.Before(o.updatedAt) {
		now = o.updatedAt
	}
	o.updatedAt = now
}

func (o *Order) setID(id OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant_id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = append(make([]OrderItem, 0, len(items)), items...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsOutOfRangeError("updated_at", updatedAt.Format(time.RFC3339Nano),
			createdAt.Format(time.RFC3339Nano), nil)
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

func validateNonNegative(param string, amount *int64) error {
	if amount != nil && *amount < 0 {
		return errs.NewValueIsOutOfRangeError(param, *amount, 0, nil)
	}
	return nil
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
