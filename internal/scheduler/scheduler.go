// Package scheduler provides the delayed-callback capability consumed by
// timed modifiers. The engine is single-threaded and cooperative; an
// implementation must run callbacks one at a time.
package scheduler

//go:generate mockgen -destination=mock/mock_scheduler.go -package=mockscheduler -source=scheduler.go

import "time"

// Handle cancels a scheduled task. Cancel is idempotent: cancelling an
// already-fired or already-cancelled task is a safe no-op, and no callback
// fires after Cancel returns.
type Handle interface {
	Cancel()
}

// Scheduler runs callbacks after a delay or on a repeating interval
type Scheduler interface {
	// ScheduleOnce runs fn once after delay
	ScheduleOnce(delay time.Duration, fn func()) Handle

	// ScheduleRepeating runs fn every interval until cancelled
	ScheduleRepeating(interval time.Duration, fn func()) Handle
}
