package stats

import "math"

// Recalculator is the value a constraint protects: when one of the
// constraint's dependencies changes, the constraint requests a
// recalculation of this value rather than mutating the dependency.
type Recalculator interface {
	Recalculate()
}

// Constraint is a pure clamp bound to dependency values. Apply never
// mutates anything; dependency changes re-trigger the protected value's
// recalculation through the subscriptions taken at construction.
type Constraint interface {
	Apply(x float64) float64

	// Detach cancels the dependency subscriptions; called when the
	// constraint is removed from its value
	Detach()
}

// FloorConstraint clamps the protected value to at least min's amount. It
// subscribes to min at construction, so min must already exist and hold a
// stable amount; attaching the constraint (AddConstraint) performs the
// initial recalculation.
type FloorConstraint struct {
	min       Observable
	protected Recalculator
	minSub    *Subscription
}

// NewFloorConstraint creates a floor clamp on protected with bound min
func NewFloorConstraint(min Observable, protected Recalculator) *FloorConstraint {
	c := &FloorConstraint{min: min, protected: protected}
	c.minSub = min.Subscribe(func(*StatValue) {
		protected.Recalculate()
	})
	return c
}

// Apply clamps x to >= min
func (c *FloorConstraint) Apply(x float64) float64 {
	return math.Max(c.min.Amount(), x)
}

// Detach cancels the min subscription
func (c *FloorConstraint) Detach() {
	c.minSub.Unsubscribe()
}

// RangeConstraint clamps the protected value to [min, max]. When the bounds
// invert (min > max) the result is always min; the ceiling is applied first
// and the floor wins.
type RangeConstraint struct {
	FloorConstraint
	max    Observable
	maxSub *Subscription
}

// NewRangeConstraint creates a range clamp on protected with bounds min, max
func NewRangeConstraint(min Observable, protected Recalculator, max Observable) *RangeConstraint {
	c := &RangeConstraint{max: max}
	c.min = min
	c.protected = protected
	c.minSub = min.Subscribe(func(*StatValue) {
		protected.Recalculate()
	})
	c.maxSub = max.Subscribe(func(*StatValue) {
		protected.Recalculate()
	})
	return c
}

// Apply clamps x into [min, max], min winning on inverted bounds
func (c *RangeConstraint) Apply(x float64) float64 {
	return math.Max(c.min.Amount(), math.Min(x, c.max.Amount()))
}

// Detach cancels both bound subscriptions
func (c *RangeConstraint) Detach() {
	c.FloorConstraint.Detach()
	c.maxSub.Unsubscribe()
}
