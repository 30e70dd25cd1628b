package stats

// SimpleValue is a StatValue with an ordered constraint chain. Every
// proposed amount is folded through all constraints, in registration order,
// before it is committed.
type SimpleValue struct {
	StatValue
	constraints []Constraint
}

// NewSimpleValue creates a constrained cell holding initial
func NewSimpleValue(initial float64) *SimpleValue {
	return &SimpleValue{StatValue: StatValue{amount: initial}}
}

// SetAmount folds the proposed amount through the constraint chain and
// commits the result
func (v *SimpleValue) SetAmount(amount float64) error {
	v.commit(v.applyConstraints(amount))
	return nil
}

// Recalculate re-submits the current amount through the constraint chain.
// Detects drift when a dependency changed since the last write; the commit
// equality check keeps it a no-op otherwise.
func (v *SimpleValue) Recalculate() {
	v.commit(v.applyConstraints(v.amount))
}

// AddConstraint appends c and immediately recalculates
func (v *SimpleValue) AddConstraint(c Constraint) {
	v.appendConstraint(c)
	v.Recalculate()
}

// RemoveConstraint detaches c from its dependencies, removes it, and
// recalculates. No-op when c is not registered.
func (v *SimpleValue) RemoveConstraint(c Constraint) {
	if !v.dropConstraint(c) {
		return
	}
	v.Recalculate()
}

func (v *SimpleValue) appendConstraint(c Constraint) {
	v.constraints = append(v.constraints, c)
}

func (v *SimpleValue) dropConstraint(c Constraint) bool {
	for i, existing := range v.constraints {
		if existing == c {
			c.Detach()
			v.constraints = append(v.constraints[:i], v.constraints[i+1:]...)
			return true
		}
	}
	return false
}

func (v *SimpleValue) applyConstraints(amount float64) float64 {
	for _, c := range v.constraints {
		amount = c.Apply(amount)
	}
	return amount
}
