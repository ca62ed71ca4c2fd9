package kernel_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := kernel.SystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := kernel.ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, clock.Now())
}
