package statdefs

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/jfandel/statkit/internal/repositories/statdefs TimeProvider

// TimeProvider supplies timestamps; injectable for testing
type TimeProvider interface {
	Now() time.Time
}

// ClockTimeProvider reads the system clock
type ClockTimeProvider struct{}

// Now returns the current UTC time
func (ClockTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
