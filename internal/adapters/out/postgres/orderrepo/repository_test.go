package orderrepo_test

import (
	"context"
	"testing"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository_RejectsUnknownStatusBeforeSaving(t *testing.T) {
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	aggregate.UpdateStatus(order.Status("bogus"))

	tracker := &MockAggregateTracker{}
	// a nil db panics if the guard lets the aggregate through
	repository := orderrepo.NewGormOrderRepository(nil, tracker)

	t.Run("add", func(t *testing.T) {
		err := repository.Add(context.Background(), aggregate)

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("update", func(t *testing.T) {
		err := repository.Update(context.Background(), aggregate)

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
	})

	tracker.AssertNotCalled(t, "TrackOrder", mock.Anything)
}

func TestGormOrderRepository_RejectsUnconstructedOrder(t *testing.T) {
	repository := orderrepo.NewGormOrderRepository(nil, &MockAggregateTracker{})

	err := repository.Add(context.Background(), &order.Order{})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}
