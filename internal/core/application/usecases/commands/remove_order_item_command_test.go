package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveOrderItemCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID, itemID := order.NewOrderID(), order.NewOrderItemID()
		cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, itemID, cmd.ItemID())
	})

	t.Run("invalid ids", func(t *testing.T) {
		_, err := commands.NewRemoveOrderItemCommand(order.OrderID{}, order.OrderItemID{})

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestRemoveOrderItemCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name          string
		removeExisted bool
		expectedItems int
	}{
		{"existing item is removed", true, 0},
		{"unknown item is a no-op", false, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			existing := newPendingOrder(t)
			before := existing.UpdatedAt()

			itemID := order.NewOrderItemID()
			if tc.removeExisted {
				itemID = existing.Items()[0].ID()
			}
			cmd, err := commands.NewRemoveOrderItemCommand(existing.ID(), itemID)
			require.NoError(t, err)

			factory, uow, repo := newFixture()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
				repo.On("Update", ctx, existing).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			h := commands.NewRemoveOrderItemCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))

			assert.Len(t, existing.Items(), tc.expectedItems)
			assert.False(t, existing.UpdatedAt().Before(before))
			uow.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestRemoveOrderItemCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewRemoveOrderItemCommandHandler(new(MockOrderUoWFactory))

	err := h.Handle(t.Context(), commands.RemoveOrderItemCommand{})

	require.ErrorIs(t, err, commands.ErrRemoveOrderItemCommandIsNotConstructed)
}
