package kernel

import "time"

// Clock is the only environmental input of the domain model: the source of "now"
// for creation and modification timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SystemClock returns a Clock reading the wall clock in UTC at microsecond
// precision, the resolution Postgres stores timestamps at.
func SystemClock() Clock {
	return systemClock{}
}
