package mockscheduler

import (
	"sort"
	"time"

	"github.com/jfandel/statkit/internal/scheduler"
)

// ManualScheduler implements scheduler.Scheduler with a virtual clock for
// testing. Nothing fires until Advance is called; tasks due within the
// advanced window fire in due-time order, then insertion order.
type ManualScheduler struct {
	now   time.Duration
	tasks []*task
	seq   int
}

type task struct {
	due       time.Duration
	interval  time.Duration // 0 for one-shot
	fn        func()
	seq       int
	cancelled bool
}

// NewManualScheduler creates a ManualScheduler at virtual time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the current virtual time
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// PendingCount returns the number of live scheduled tasks
func (s *ManualScheduler) PendingCount() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// ScheduleOnce runs fn once after delay of virtual time
func (s *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) scheduler.Handle {
	return s.add(s.now+delay, 0, fn)
}

// ScheduleRepeating runs fn every interval of virtual time until cancelled
func (s *ManualScheduler) ScheduleRepeating(interval time.Duration, fn func()) scheduler.Handle {
	return s.add(s.now+interval, interval, fn)
}

func (s *ManualScheduler) add(due, interval time.Duration, fn func()) scheduler.Handle {
	s.seq++
	t := &task{due: due, interval: interval, fn: fn, seq: s.seq}
	s.tasks = append(s.tasks, t)
	return &manualHandle{t: t}
}

// Advance moves the virtual clock forward by d, firing every task that
// comes due, in order. Callbacks may schedule or cancel tasks; a task
// scheduled during Advance fires in the same call if it comes due within
// the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			s.seq++
			t.seq = s.seq
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	s.now = target
	s.compact()
}

// nextDue returns the earliest live task due at or before target
func (s *ManualScheduler) nextDue(target time.Duration) *task {
	live := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.cancelled && t.due <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (s *ManualScheduler) compact() {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			s.tasks[n] = t
			n++
		}
	}
	s.tasks = s.tasks[:n]
}

type manualHandle struct {
	t *task
}

// Cancel marks the task dead; idempotent
func (h *manualHandle) Cancel() {
	h.t.cancelled = true
}
