package stats

import (
	"time"

	"github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/scheduler"
	"github.com/jfandel/statkit/internal/telemetry"
)

// Unbounded is the sentinel duration for a ticking modifier that runs until
// externally removed.
const Unbounded time.Duration = -1

// TickingModifier applies its amount to the target's current amount as an
// impulse on every interval — through CalculateFinal, not as a standing
// contribution — and removes itself once the accumulated time reaches its
// duration. The target must accept direct writes, so ticking modifiers pair
// with floating values, not elastic ones.
type TickingModifier struct {
	TempModifier
	interval time.Duration
	elapsed  time.Duration
}

// NewTickingModifier creates a modifier that pulses every interval for
// duration. Duration must be Unbounded or exactly divisible by interval;
// anything else fails construction.
func NewTickingModifier(target ModifierTarget, amount float64, origin any, priority int, duration, interval time.Duration, sched scheduler.Scheduler) (*TickingModifier, error) {
	if interval <= 0 {
		return nil, errors.InvalidDurationf("interval must be positive, got %v", interval)
	}
	if duration != Unbounded {
		if duration <= 0 {
			return nil, errors.InvalidDurationf("duration must be positive or unbounded, got %v", duration)
		}
		if duration%interval != 0 {
			return nil, errors.InvalidDurationf("duration %v is not divisible by interval %v", duration, interval)
		}
	}

	return &TickingModifier{
		TempModifier: TempModifier{
			BaseModifier: *NewModifier(target, amount, origin, priority),
			duration:     duration,
			sched:        sched,
		},
		interval: interval,
	}, nil
}

// Interval returns the pulse interval
func (m *TickingModifier) Interval() time.Duration {
	return m.interval
}

// Elapsed returns the accumulated active time
func (m *TickingModifier) Elapsed() time.Duration {
	return m.elapsed
}

// Activate schedules the repeating pulse; redundant activation is a
// diagnostic no-op
func (m *TickingModifier) Activate() {
	if m.state != StatePending {
		m.emit(telemetry.KindRedundantActivation)
		return
	}
	m.state = StateScheduled
	m.active = true
	m.handle = m.sched.ScheduleRepeating(m.interval, m.tick)
	m.emit(telemetry.KindModifierActivated)
}

// tick applies one impulse and expires the modifier once it has run for
// its full duration
func (m *TickingModifier) tick() {
	if m.state != StateScheduled {
		return
	}

	// A write-protected target rejects the impulse; that is the caller's
	// wiring mistake, surfaced through diagnostics only.
	err := m.target.SetAmount(m.CalculateFinal(m.target.Amount(), m.amount))
	if m.sink != nil {
		fields := map[string]any{"modifier": m.id}
		if err != nil {
			fields["error"] = err.Error()
		}
		m.sink.Emit(telemetry.Event{Kind: telemetry.KindModifierTick, Fields: fields})
	}

	if m.duration == Unbounded {
		return
	}

	m.elapsed += m.interval
	if m.elapsed >= m.duration {
		m.state = StateExpired
		m.handle.Cancel()
		m.emit(telemetry.KindModifierExpired)
		m.target.RemoveModifier(m)
	}
}
