package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the fulfilment state of an order. The set is closed; the type
// itself imposes no ordering between states.
type Status string

const (
	Pending   Status = "pending"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Canceled  Status = "canceled"
)

var allStatuses = []Status{Pending, Preparing, Ready, InTransit, Delivered, Canceled}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ParseStatus converts an external token into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	for _, valid := range allStatuses {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether the status ends the usual lifecycle. It is
// informational only: UpdateStatus may still move a final order elsewhere.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Canceled
}
