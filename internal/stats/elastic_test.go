package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statkiterr "github.com/jfandel/statkit/internal/errors"
)

func TestElasticValue_SetAmount(t *testing.T) {
	v := NewElasticValue(10)

	err := v.SetAmount(99)

	require.Error(t, err)
	assert.True(t, statkiterr.IsImmutableWrite(err))
	assert.Equal(t, 10.0, v.Amount())
}

func TestElasticValue_Recalculate(t *testing.T) {
	t.Run("no modifiers yields the base", func(t *testing.T) {
		v := NewElasticValue(10)
		v.Recalculate()
		assert.Equal(t, 10.0, v.Amount())
		assert.Equal(t, 10.0, v.BaseAmount())
	})

	t.Run("stacks within a priority then folds groups ascending", func(t *testing.T) {
		// base 10, priorities [0,0,1], amounts [5,3,2], default sums:
		// 10 + (5+3) + 2 = 20
		v := NewElasticValue(10)
		v.AddModifier(NewModifier(v, 5, "a", 0))
		v.AddModifier(NewModifier(v, 3, "b", 0))
		v.AddModifier(NewModifier(v, 2, "c", 1))

		assert.Equal(t, 20.0, v.Amount())
	})

	t.Run("lower priorities fold in before higher ones", func(t *testing.T) {
		// A multiplicative final at priority 1 must see the priority-0
		// subtotal already applied: (10+4)*2, not 10*2+4.
		v := NewElasticValue(10)
		v.AddModifier(NewModifier(v, 4, "flat", 0))
		v.AddModifier(NewModifier(v, 2, "mult", 1).
			WithFinalFunc(func(base, stackTotal float64) float64 { return base * stackTotal }))

		assert.Equal(t, 28.0, v.Amount())
	})

	t.Run("insertion order decides a group's final function", func(t *testing.T) {
		// Two modifiers at the same priority: the last one encountered
		// supplies CalculateFinal for the whole group.
		v := NewElasticValue(10)
		v.AddModifier(NewModifier(v, 3, "a", 0).
			WithFinalFunc(func(base, stackTotal float64) float64 { return base * stackTotal }))
		v.AddModifier(NewModifier(v, 2, "b", 0))

		// stack total 5, final is b's sum: 10 + 5
		assert.Equal(t, 15.0, v.Amount())
	})

	t.Run("custom stack function", func(t *testing.T) {
		v := NewElasticValue(10)
		mult := func(total, next float64) float64 {
			if total == 0 {
				return next
			}
			return total * next
		}
		v.AddModifier(NewModifier(v, 3, "a", 0).WithStackFunc(mult))
		v.AddModifier(NewModifier(v, 4, "b", 0).WithStackFunc(mult))

		// 10 + (3*4)
		assert.Equal(t, 22.0, v.Amount())
	})
}

func TestElasticValue_RemoveModifier(t *testing.T) {
	t.Run("recalculates without the removed contribution", func(t *testing.T) {
		v := NewElasticValue(10)
		a := NewModifier(v, 5, "a", 0)
		b := NewModifier(v, 3, "b", 1)
		v.AddModifier(a)
		v.AddModifier(b)
		require.Equal(t, 18.0, v.Amount())

		v.RemoveModifier(a)
		assert.Equal(t, 13.0, v.Amount())

		v.RemoveModifier(b)
		assert.Equal(t, 10.0, v.Amount())
	})

	t.Run("silent no-op when absent", func(t *testing.T) {
		v := NewElasticValue(10)
		v.AddModifier(NewModifier(v, 5, "a", 0))

		v.RemoveModifier(NewModifier(v, 5, "a", 0))

		assert.Equal(t, 15.0, v.Amount())
	})
}

func TestElasticValue_Constraints(t *testing.T) {
	t.Run("derived amount still flows through the constraint chain", func(t *testing.T) {
		max := NewStatValue(12)
		min := NewStatValue(0)
		v := NewElasticValue(10)
		v.AddConstraint(NewRangeConstraint(min, v, max))

		v.AddModifier(NewModifier(v, 50, "a", 0))

		assert.Equal(t, 12.0, v.Amount())
	})

	t.Run("bound change recalculates from the modifier set", func(t *testing.T) {
		max := NewStatValue(12)
		min := NewStatValue(0)
		v := NewElasticValue(10)
		v.AddConstraint(NewRangeConstraint(min, v, max))
		v.AddModifier(NewModifier(v, 50, "a", 0))
		require.Equal(t, 12.0, v.Amount())

		require.NoError(t, max.SetAmount(45))
		assert.Equal(t, 45.0, v.Amount())

		require.NoError(t, max.SetAmount(100))
		assert.Equal(t, 60.0, v.Amount())
	})

	t.Run("change events fire for derived commits", func(t *testing.T) {
		v := NewElasticValue(10)

		var seen []float64
		v.Subscribe(func(changed *StatValue) { seen = append(seen, changed.Amount()) })

		v.AddModifier(NewModifier(v, 5, "a", 0))
		assert.Equal(t, []float64{15}, seen)
	})
}
