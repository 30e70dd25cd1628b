package stats

import (
	"sort"

	"github.com/jfandel/statkit/internal/errors"
)

// ElasticValue derives its amount entirely from a fixed base plus its
// modifier set: each distinct priority, ascending, folds its modifiers'
// amounts into a stack total which the group's last modifier then folds
// into the running result. Direct writes are rejected; only a modifier
// change or a forced recalculation updates the amount.
type ElasticValue struct {
	FloatingValue
	baseAmount float64
	priorities []int // distinct, ascending, rebuilt on every modifier change
}

// NewElasticValue creates a derived cell with the given immutable base
func NewElasticValue(base float64) *ElasticValue {
	return &ElasticValue{
		FloatingValue: FloatingValue{SimpleValue: SimpleValue{StatValue: StatValue{amount: base}}},
		baseAmount:    base,
	}
}

// BaseAmount returns the immutable base
func (v *ElasticValue) BaseAmount() float64 {
	return v.baseAmount
}

// SetAmount always fails: the amount is a pure function of the base and
// the modifier set
func (v *ElasticValue) SetAmount(float64) error {
	return errors.ImmutableWrite("elastic value amount is derived from its modifiers")
}

// AddModifier appends and activates m, then rebuilds the priority set and
// recalculates
func (v *ElasticValue) AddModifier(m Modifier) {
	v.appendModifier(m)
	v.rebuildPriorities()
	v.Recalculate()
}

// RemoveModifier deactivates and removes m by identity, then rebuilds the
// priority set and recalculates; silent no-op when m is not present
func (v *ElasticValue) RemoveModifier(m Modifier) {
	if !v.dropModifier(m) {
		return
	}
	v.rebuildPriorities()
	v.Recalculate()
}

// AddConstraint appends c and recalculates from the modifier set
func (v *ElasticValue) AddConstraint(c Constraint) {
	v.appendConstraint(c)
	v.Recalculate()
}

// RemoveConstraint detaches and removes c, then recalculates
func (v *ElasticValue) RemoveConstraint(c Constraint) {
	if !v.dropConstraint(c) {
		return
	}
	v.Recalculate()
}

// Recalculate recomputes the amount from the base and the modifier set and
// commits it through the constraint chain via the internal setter.
func (v *ElasticValue) Recalculate() {
	result := v.baseAmount

	for _, priority := range v.priorities {
		stackTotal := 0.0
		var last Modifier
		for _, m := range v.modifiers {
			if m.Priority() != priority {
				continue
			}
			stackTotal = m.CalculateStack(stackTotal, m.Amount())
			last = m
		}
		if last == nil {
			// Priorities are derived from the modifier list; an empty
			// group means the bookkeeping desynced.
			panic(errors.Internalf("no modifier found for priority %d", priority))
		}
		result = last.CalculateFinal(result, stackTotal)
	}

	v.commit(v.applyConstraints(result))
}

func (v *ElasticValue) rebuildPriorities() {
	seen := make(map[int]struct{}, len(v.modifiers))
	v.priorities = v.priorities[:0]
	for _, m := range v.modifiers {
		p := m.Priority()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		v.priorities = append(v.priorities, p)
	}
	sort.Ints(v.priorities)
}
