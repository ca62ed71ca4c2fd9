package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels every stale pending order in one transaction and reports how
// many were canceled.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock.Now().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllInStatusUpdatedBefore(ctx, order.Pending, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		o.UpdateStatus(order.Canceled)
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
