package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/pinpoint/internal/common/clock Clock

// Clock is the time source for every timestamp the game persists
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock.
// Times are truncated to microseconds and reported in UTC so that values
// survive a round trip through Redis scores and SQLite text columns unchanged.
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
