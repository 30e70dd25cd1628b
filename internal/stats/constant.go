package stats

import (
	"github.com/jfandel/statkit/internal/errors"
)

// ConstantValue locks after construction: the constructor performs the one
// allowed write, every later write fails.
type ConstantValue struct {
	StatValue
}

// NewConstantValue creates a locked cell holding amount
func NewConstantValue(amount float64) *ConstantValue {
	return &ConstantValue{StatValue: StatValue{amount: amount}}
}

// SetAmount always fails with an immutable-write error; the value is left
// unchanged
func (v *ConstantValue) SetAmount(float64) error {
	return errors.ImmutableWrite("constant value is locked after construction")
}
