package mockscheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler_ScheduleOnce(t *testing.T) {
	t.Run("fires when its delay elapses", func(t *testing.T) {
		s := NewManualScheduler()
		fired := 0
		s.ScheduleOnce(5*time.Second, func() { fired++ })

		s.Advance(4 * time.Second)
		assert.Equal(t, 0, fired)

		s.Advance(time.Second)
		assert.Equal(t, 1, fired)
		assert.Equal(t, 0, s.PendingCount())
	})

	t.Run("cancelled task never fires", func(t *testing.T) {
		s := NewManualScheduler()
		fired := 0
		h := s.ScheduleOnce(time.Second, func() { fired++ })
		h.Cancel()
		h.Cancel() // idempotent

		s.Advance(10 * time.Second)
		assert.Equal(t, 0, fired)
	})

	t.Run("fires in due order then schedule order", func(t *testing.T) {
		s := NewManualScheduler()
		var order []string
		s.ScheduleOnce(2*time.Second, func() { order = append(order, "late") })
		s.ScheduleOnce(time.Second, func() { order = append(order, "early-a") })
		s.ScheduleOnce(time.Second, func() { order = append(order, "early-b") })

		s.Advance(3 * time.Second)
		assert.Equal(t, []string{"early-a", "early-b", "late"}, order)
	})
}

func TestManualScheduler_ScheduleRepeating(t *testing.T) {
	t.Run("fires once per interval", func(t *testing.T) {
		s := NewManualScheduler()
		fired := 0
		s.ScheduleRepeating(2*time.Second, func() { fired++ })

		s.Advance(7 * time.Second)
		assert.Equal(t, 3, fired)
		assert.Equal(t, 1, s.PendingCount())
	})

	t.Run("stops after cancel", func(t *testing.T) {
		s := NewManualScheduler()
		fired := 0
		h := s.ScheduleRepeating(time.Second, func() { fired++ })

		s.Advance(2 * time.Second)
		require.Equal(t, 2, fired)

		h.Cancel()
		s.Advance(5 * time.Second)
		assert.Equal(t, 2, fired)
		assert.Equal(t, 0, s.PendingCount())
	})

	t.Run("callback can cancel itself", func(t *testing.T) {
		s := NewManualScheduler()
		fired := 0
		var h interface{ Cancel() }
		h = s.ScheduleRepeating(time.Second, func() {
			fired++
			if fired == 2 {
				h.Cancel()
			}
		})

		s.Advance(10 * time.Second)
		assert.Equal(t, 2, fired)
	})
}

func TestManualScheduler_Advance(t *testing.T) {
	t.Run("clock lands on the advance target", func(t *testing.T) {
		s := NewManualScheduler()
		s.Advance(3 * time.Second)
		assert.Equal(t, 3*time.Second, s.Now())
	})

	t.Run("task scheduled during advance fires in the same window", func(t *testing.T) {
		s := NewManualScheduler()
		var order []string
		s.ScheduleOnce(time.Second, func() {
			order = append(order, "outer")
			s.ScheduleOnce(time.Second, func() { order = append(order, "inner") })
		})

		s.Advance(2 * time.Second)
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("callback observes virtual time of its due instant", func(t *testing.T) {
		s := NewManualScheduler()
		var seen time.Duration
		s.ScheduleOnce(2*time.Second, func() { seen = s.Now() })

		s.Advance(10 * time.Second)
		assert.Equal(t, 2*time.Second, seen)
	})
}
