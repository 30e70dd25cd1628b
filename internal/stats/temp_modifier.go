package stats

import (
	"time"

	"github.com/jfandel/statkit/internal/scheduler"
	"github.com/jfandel/statkit/internal/telemetry"
)

// ModifierState tracks a timed modifier's lifecycle
type ModifierState int

const (
	StatePending ModifierState = iota
	StateScheduled
	StateExpired
	StateCancelled
)

// String returns the state name
func (s ModifierState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateScheduled:
		return "scheduled"
	case StateExpired:
		return "expired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TempModifier is a modifier with a scheduled lifetime: activation starts a
// one-shot timer, and on expiry the modifier removes itself from its target
// exactly once. Deactivating early cancels the pending timer; the scheduled
// removal then never fires.
type TempModifier struct {
	BaseModifier
	duration time.Duration
	sched    scheduler.Scheduler
	handle   scheduler.Handle
	state    ModifierState
}

// NewTempModifier creates a modifier that expires after duration
func NewTempModifier(target ModifierTarget, amount float64, origin any, priority int, duration time.Duration, sched scheduler.Scheduler) *TempModifier {
	return &TempModifier{
		BaseModifier: *NewModifier(target, amount, origin, priority),
		duration:     duration,
		sched:        sched,
	}
}

// Duration returns the scheduled lifetime
func (m *TempModifier) Duration() time.Duration {
	return m.duration
}

// State returns the lifecycle state
func (m *TempModifier) State() ModifierState {
	return m.state
}

// Activate schedules the expiry timer; redundant activation is a
// diagnostic no-op
func (m *TempModifier) Activate() {
	if m.state != StatePending {
		m.emit(telemetry.KindRedundantActivation)
		return
	}
	m.state = StateScheduled
	m.active = true
	m.handle = m.sched.ScheduleOnce(m.duration, m.expire)
	m.emit(telemetry.KindModifierActivated)
}

// Deactivate cancels a pending expiry timer; redundant deactivation is a
// diagnostic no-op
func (m *TempModifier) Deactivate() {
	switch m.state {
	case StateScheduled:
		m.handle.Cancel()
		m.state = StateCancelled
		m.active = false
		m.emit(telemetry.KindModifierCancelled)
	case StateExpired:
		// Normal teardown when the expiry removal runs.
		m.active = false
	default:
		m.emit(telemetry.KindRedundantDeactivation)
	}
}

// expire removes the modifier from its target. Guarded by the state so it
// runs at most once.
func (m *TempModifier) expire() {
	if m.state != StateScheduled {
		return
	}
	m.state = StateExpired
	m.emit(telemetry.KindModifierExpired)
	m.target.RemoveModifier(m)
}
