package stats

import (
	"time"

	"github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/scheduler"
	"github.com/jfandel/statkit/internal/telemetry"
)

// RelationKind identifies a cross-stat dependency wiring
type RelationKind string

const (
	RelationFloor RelationKind = "floor"
	RelationRange RelationKind = "range"
)

// Relation records one cross-stat constraint wiring
type Relation struct {
	Kind    RelationKind
	Current string
	Min     string
	Max     string
}

// System owns a collection of named stats and their cross-stat relations,
// and carries the scheduling and diagnostics capabilities consumed by
// timed modifiers. Ownership flows strictly downward: the system owns
// stats, stats own values, values own their modifiers and constraints.
type System struct {
	sched     scheduler.Scheduler
	sink      telemetry.Sink
	stats     map[string]NamedStat
	order     []string
	relations []Relation
}

// NewSystem creates an empty system. A nil sink discards diagnostics.
func NewSystem(sched scheduler.Scheduler, sink telemetry.Sink) *System {
	if sink == nil {
		sink = telemetry.NewNopSink()
	}
	return &System{
		sched: sched,
		sink:  sink,
		stats: make(map[string]NamedStat),
	}
}

// Scheduler returns the scheduling capability
func (sys *System) Scheduler() scheduler.Scheduler { return sys.sched }

// Sink returns the diagnostics sink
func (sys *System) Sink() telemetry.Sink { return sys.sink }

// Get looks up a stat by name
func (sys *System) Get(name string) (NamedStat, bool) {
	st, ok := sys.stats[name]
	return st, ok
}

// Stats returns all stats in creation order
func (sys *System) Stats() []NamedStat {
	out := make([]NamedStat, 0, len(sys.order))
	for _, name := range sys.order {
		out = append(out, sys.stats[name])
	}
	return out
}

// Relations returns a copy of the recorded cross-stat wirings
func (sys *System) Relations() []Relation {
	out := make([]Relation, len(sys.relations))
	copy(out, sys.relations)
	return out
}

// NewStat creates a stat backed by a constrained (simple) value
func (sys *System) NewStat(name string, initial float64) *Stat {
	v := NewSimpleValue(initial)
	st := &Stat{name: name, system: sys, current: v}
	v.bind(st, name, sys.sink)
	sys.register(name, st)
	return st
}

// NewFloatingStat creates a stat backed by a modifiable value with an
// externally driven base amount
func (sys *System) NewFloatingStat(name string, initial float64) *Stat {
	v := NewFloatingValue(initial)
	st := &Stat{name: name, system: sys, current: v}
	v.bind(st, name, sys.sink)
	sys.register(name, st)
	return st
}

// NewConstantStat creates a stat backed by a locked value
func (sys *System) NewConstantStat(name string, amount float64) *Stat {
	v := NewConstantValue(amount)
	st := &Stat{name: name, system: sys, current: v}
	v.bind(st, name, sys.sink)
	sys.register(name, st)
	return st
}

// NewElasticStat creates a stat backed by a derived value with the given
// immutable base
func (sys *System) NewElasticStat(name string, base float64) *Stat {
	v := NewElasticValue(base)
	st := &Stat{name: name, system: sys, current: v}
	v.bind(st, name, sys.sink)
	sys.register(name, st)
	return st
}

// NewFloorStat creates a floor-bound stat. The bound is itself a reactive
// value: writing it re-clamps the current value.
func (sys *System) NewFloorStat(name string, initial, min float64) *FloorStat {
	minV := NewStatValue(min)
	cur := NewFloatingValue(initial)
	st := &FloorStat{
		Stat: Stat{name: name, system: sys, current: cur},
		min:  minV,
	}
	cur.bind(&st.Stat, name, sys.sink)
	minV.bind(&st.Stat, name+".min", sys.sink)
	sys.register(name, st)
	st.InitConstraints()
	return st
}

// NewRangeStat creates a range-bound stat with reactive min and max bounds
func (sys *System) NewRangeStat(name string, initial, min, max float64) *RangeStat {
	minV := NewStatValue(min)
	maxV := NewStatValue(max)
	cur := NewFloatingValue(initial)
	st := &RangeStat{
		FloorStat: FloorStat{
			Stat: Stat{name: name, system: sys, current: cur},
			min:  minV,
		},
		max: maxV,
	}
	cur.bind(&st.Stat, name, sys.sink)
	minV.bind(&st.Stat, name+".min", sys.sink)
	maxV.bind(&st.Stat, name+".max", sys.sink)
	sys.register(name, st)
	st.InitConstraints()
	return st
}

// RelateFloor wires min's value as a floor of current's value and records
// the relation
func (sys *System) RelateFloor(current, min string) error {
	cv, err := sys.constrained(current)
	if err != nil {
		return err
	}
	ms, ok := sys.stats[min]
	if !ok {
		return errors.NotFoundf("stat %q not found", min)
	}

	cv.AddConstraint(NewFloorConstraint(ms.Value(), cv))
	sys.relations = append(sys.relations, Relation{Kind: RelationFloor, Current: current, Min: min})
	return nil
}

// RelateRange wires min's and max's values as the bounds of current's
// value and records the relation
func (sys *System) RelateRange(current, min, max string) error {
	cv, err := sys.constrained(current)
	if err != nil {
		return err
	}
	ms, ok := sys.stats[min]
	if !ok {
		return errors.NotFoundf("stat %q not found", min)
	}
	xs, ok := sys.stats[max]
	if !ok {
		return errors.NotFoundf("stat %q not found", max)
	}

	cv.AddConstraint(NewRangeConstraint(ms.Value(), cv, xs.Value()))
	sys.relations = append(sys.relations, Relation{Kind: RelationRange, Current: current, Min: min, Max: max})
	return nil
}

// NewModifier creates a plain modifier wired to the system's diagnostics
func (sys *System) NewModifier(target ModifierTarget, amount float64, origin any, priority int) *BaseModifier {
	return NewModifier(target, amount, origin, priority).WithSink(sys.sink)
}

// NewTempModifier creates an expiring modifier on the system's scheduler
func (sys *System) NewTempModifier(target ModifierTarget, amount float64, origin any, priority int, duration time.Duration) *TempModifier {
	m := NewTempModifier(target, amount, origin, priority, duration, sys.sched)
	m.sink = sys.sink
	return m
}

// NewTickingModifier creates a pulsing modifier on the system's scheduler
func (sys *System) NewTickingModifier(target ModifierTarget, amount float64, origin any, priority int, duration, interval time.Duration) (*TickingModifier, error) {
	m, err := NewTickingModifier(target, amount, origin, priority, duration, interval, sys.sched)
	if err != nil {
		return nil, err
	}
	m.sink = sys.sink
	return m, nil
}

func (sys *System) constrained(name string) (ConstrainedValue, error) {
	st, ok := sys.stats[name]
	if !ok {
		return nil, errors.NotFoundf("stat %q not found", name)
	}
	cv, ok := st.Value().(ConstrainedValue)
	if !ok {
		return nil, errors.InvalidArgumentf("stat %q does not accept constraints", name)
	}
	return cv, nil
}

func (sys *System) register(name string, st NamedStat) {
	if _, exists := sys.stats[name]; !exists {
		sys.order = append(sys.order, name)
	}
	sys.stats[name] = st
}
