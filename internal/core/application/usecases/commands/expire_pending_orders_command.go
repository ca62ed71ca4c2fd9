package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels orders that stayed pending, untouched,
// for longer than olderThan.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(olderThan time.Duration) (ExpirePendingOrdersCommand, error) {
	if olderThan <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan, time.Nanosecond, nil)
	}

	return ExpirePendingOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
