package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// steppingClock returns start, start+step, start+2*step, ... on successive calls.
type steppingClock struct {
	next time.Time
	step time.Duration
}

func newSteppingClock(step time.Duration) *steppingClock {
	return &steppingClock{
		next: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
		step: step,
	}
}

func (c *steppingClock) Now() time.Time {
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

func mustItem(t *testing.T, name string, quantity int, unitPrice int64) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(order.NewOrderItemID(), name, quantity, unitPrice, nil)
	require.NoError(t, err)
	return item
}

func ptr[T any](v T) *T {
	return &v
}
