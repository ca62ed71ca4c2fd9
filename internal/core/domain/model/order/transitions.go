package order

import (
	"fmt"
	"slices"

	"foodorder/internal/pkg/errs"
)

// TransitionTable lists the permitted successors of each status.
//
// The Order aggregate never consults it; it exists for application code that
// opts into a stricter lifecycle. A nil table permits every transition.
// A status missing from a non-nil table has no permitted successors.
type TransitionTable map[Status][]Status

// UnrestrictedTransitions returns the nil table: all six states are mutually reachable.
func UnrestrictedTransitions() TransitionTable {
	return nil
}

// LifecycleTransitions returns the conventional restaurant flow:
// pending -> preparing -> ready -> in_transit -> delivered, with cancellation
// possible until delivery and pickup orders going straight from ready to delivered.
func LifecycleTransitions() TransitionTable {
	return TransitionTable{
		Pending:   {Preparing, Canceled},
		Preparing: {Ready, Canceled},
		Ready:     {InTransit, Delivered, Canceled},
		InTransit: {Delivered, Canceled},
	}
}

// Allows reports whether moving from one status to another is permitted.
// Re-applying the current status is always allowed.
func (t TransitionTable) Allows(from, to Status) bool {
	if t == nil || from == to {
		return true
	}
	return slices.Contains(t[from], to)
}

// Check returns a validation error when the transition is not permitted.
func (t TransitionTable) Check(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !t.Allows(from, to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", from, to),
		)
	}
	return nil
}
