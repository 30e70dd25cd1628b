// Package stats implements the reactive numeric-attribute engine: stat
// values whose effective amount is derived from a base amount, prioritized
// stacking modifiers, and dependency-driven clamping constraints.
//
// The engine is single-threaded and cooperative. All mutation and change
// notification are synchronous; constraint wiring must stay acyclic, and
// callers must not mutate a modifier or constraint list from inside a
// recalculation callback.
package stats

import (
	"github.com/jfandel/statkit/internal/telemetry"
)

// Observable is the read side of a value: the current amount plus change
// notification. Constraints depend on their bounds through this interface.
type Observable interface {
	Amount() float64
	Subscribe(fn ChangeFunc) *Subscription
}

// Value is the common read/write capability shared by every value variant.
type Value interface {
	Observable

	// SetAmount proposes a new amount. Locked and derived variants reject
	// the write with an immutable-write error.
	SetAmount(amount float64) error

	// Recalculate re-derives the amount: constrained variants re-submit
	// the current amount through their constraint chain, derived variants
	// recompute from their modifier set.
	Recalculate()

	// base returns the underlying reactive cell. Unexported: all variants
	// live in this package.
	base() *StatValue
}

// ConstrainedValue is a Value carrying an ordered constraint chain.
type ConstrainedValue interface {
	Value
	AddConstraint(c Constraint)
	RemoveConstraint(c Constraint)
}

// ChangeFunc receives the cell whose amount changed
type ChangeFunc func(v *StatValue)

// Subscription is a handle to a registered change callback
type Subscription struct {
	value *StatValue
	fn    ChangeFunc
}

// Unsubscribe removes the callback; safe to call more than once
func (s *Subscription) Unsubscribe() {
	if s.value == nil {
		return
	}
	subs := s.value.subs
	for i, sub := range subs {
		if sub == s {
			s.value.subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	s.value = nil
}

// StatValue is the base reactive cell: an amount plus synchronous multicast
// change notification. A write that does not change the numeric value never
// fires the change event, which suppresses redundant cascades.
type StatValue struct {
	amount float64
	owner  *Stat
	subs   []*Subscription
	name   string
	sink   telemetry.Sink
}

// NewStatValue creates a plain cell holding initial
func NewStatValue(initial float64) *StatValue {
	return &StatValue{amount: initial}
}

// Amount returns the current amount
func (v *StatValue) Amount() float64 {
	return v.amount
}

// Owner returns the Stat this value belongs to, nil when unattached
func (v *StatValue) Owner() *Stat {
	return v.owner
}

// SetAmount stores the proposed amount and notifies subscribers when it
// differs from the current one
func (v *StatValue) SetAmount(amount float64) error {
	v.commit(amount)
	return nil
}

// Recalculate is a no-op for a plain cell
func (v *StatValue) Recalculate() {}

// Subscribe registers a change callback. Subscribers are notified
// synchronously, in registration order.
func (v *StatValue) Subscribe(fn ChangeFunc) *Subscription {
	sub := &Subscription{value: v, fn: fn}
	v.subs = append(v.subs, sub)
	return sub
}

func (v *StatValue) base() *StatValue { return v }

// bind attaches the owning stat's name and telemetry sink
func (v *StatValue) bind(owner *Stat, name string, sink telemetry.Sink) {
	v.owner = owner
	v.name = name
	v.sink = sink
}

// commit stores amount and fires the change event. The equality check makes
// redundant writes silent.
func (v *StatValue) commit(amount float64) {
	if amount == v.amount {
		return
	}
	v.amount = amount

	if v.sink != nil {
		v.sink.Emit(telemetry.Event{
			Kind:   telemetry.KindAmountChanged,
			Stat:   v.name,
			Fields: map[string]any{"amount": amount},
		})
	}

	// Snapshot so a callback that unsubscribes (or subscribes) does not
	// disturb this notification pass.
	snapshot := make([]*Subscription, len(v.subs))
	copy(snapshot, v.subs)
	for _, sub := range snapshot {
		if sub.value == nil {
			continue
		}
		sub.fn(v)
	}
}
