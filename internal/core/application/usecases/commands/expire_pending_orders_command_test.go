package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpirePendingOrdersCommand(t *testing.T) {
	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.OlderThan())

	_, err = commands.NewExpirePendingOrdersCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestExpirePendingOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)
	clock := kernel.ClockFunc(func() time.Time { return now })
	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	first, second := newPendingOrder(t), newPendingOrder(t)

	factory, uow, repo := newFixture()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetAllInStatusUpdatedBefore", ctx, order.Pending, now.Add(-30*time.Minute)).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first).Return(nil).Once()
	repo.On("Update", ctx, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory, clock)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, canceled)
	assert.Equal(t, order.Canceled, first.Status())
	assert.Equal(t, order.Canceled, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpirePendingOrdersCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpirePendingOrdersCommand(time.Minute)
	require.NoError(t, err)

	factory, uow, repo := newFixture()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetAllInStatusUpdatedBefore", ctx, order.Pending, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory, kernel.SystemClock())
	canceled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, canceled)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExpirePendingOrdersCommandHandler_Handle_UpdateErrorAbortsBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpirePendingOrdersCommand(time.Minute)
	require.NoError(t, err)
	first, second := newPendingOrder(t), newPendingOrder(t)

	factory, uow, repo := newFixture()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetAllInStatusUpdatedBefore", ctx, order.Pending, mock.Anything).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first).Return(errors.New("deadlock detected")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory, kernel.SystemClock())
	canceled, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "deadlock detected")
	assert.Zero(t, canceled)
	repo.AssertNotCalled(t, "Update", ctx, second)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
