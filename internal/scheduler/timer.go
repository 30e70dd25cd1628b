package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimerScheduler is a wall-clock Scheduler backed by the time package.
// All callbacks run under one mutex so the engine's cooperative
// single-threaded model holds. Host code that mutates the engine outside a
// callback must do so through Sync.
type TimerScheduler struct {
	mu sync.Mutex
}

// NewTimerScheduler creates a TimerScheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Sync runs fn under the scheduler's callback mutex
func (s *TimerScheduler) Sync(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// ScheduleOnce runs fn once after delay
func (s *TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	h := &onceHandle{}
	h.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if h.cancelled.Load() {
			return
		}
		h.fired.Store(true)
		fn()
	})
	return h
}

// ScheduleRepeating runs fn every interval until cancelled
func (s *TimerScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	h := &repeatHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				if h.cancelled.Load() {
					s.mu.Unlock()
					return
				}
				fn()
				s.mu.Unlock()
			case <-h.done:
				return
			}
		}
	}()

	return h
}

type onceHandle struct {
	timer     *time.Timer
	cancelled atomic.Bool
	fired     atomic.Bool
}

func (h *onceHandle) Cancel() {
	h.cancelled.Store(true)
	h.timer.Stop()
}

type repeatHandle struct {
	cancelled atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

func (h *repeatHandle) Cancel() {
	h.cancelled.Store(true)
	h.closeOnce.Do(func() { close(h.done) })
}
