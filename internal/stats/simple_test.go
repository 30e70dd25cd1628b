package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConstraint applies an arbitrary clamp with no dependencies
type fakeConstraint struct {
	fn func(float64) float64
}

func (c *fakeConstraint) Apply(x float64) float64 { return c.fn(x) }
func (c *fakeConstraint) Detach()                 {}

func TestSimpleValue_SetAmount(t *testing.T) {
	t.Run("applies constraints in registration order", func(t *testing.T) {
		v := NewSimpleValue(0)

		var order []string
		v.AddConstraint(&fakeConstraint{fn: func(x float64) float64 {
			order = append(order, "double")
			return x * 2
		}})
		v.AddConstraint(&fakeConstraint{fn: func(x float64) float64 {
			order = append(order, "add_one")
			return x + 1
		}})
		order = nil

		require.NoError(t, v.SetAmount(10))

		// (10*2)+1, not (10+1)*2
		assert.Equal(t, 21.0, v.Amount())
		assert.Equal(t, []string{"double", "add_one"}, order)
	})

	t.Run("clamped write to the same result fires no event", func(t *testing.T) {
		min := NewStatValue(10)
		v := NewSimpleValue(10)
		v.AddConstraint(NewFloorConstraint(min, v))

		fired := 0
		v.Subscribe(func(*StatValue) { fired++ })

		// 5 clamps to 10 which is already the amount
		require.NoError(t, v.SetAmount(5))
		assert.Zero(t, fired)
		assert.Equal(t, 10.0, v.Amount())
	})
}

func TestSimpleValue_AddConstraint(t *testing.T) {
	t.Run("recalculates immediately", func(t *testing.T) {
		min := NewStatValue(50)
		v := NewSimpleValue(10)

		v.AddConstraint(NewFloorConstraint(min, v))

		assert.Equal(t, 50.0, v.Amount())
	})
}

func TestSimpleValue_RemoveConstraint(t *testing.T) {
	t.Run("recalculates without the removed constraint", func(t *testing.T) {
		v := NewSimpleValue(10)
		double := &fakeConstraint{fn: func(x float64) float64 { return x * 2 }}
		v.AddConstraint(double)
		require.Equal(t, 20.0, v.Amount())

		v.RemoveConstraint(double)

		// Recalculation re-submits the current amount through the
		// remaining (empty) chain; 20 stands.
		assert.Equal(t, 20.0, v.Amount())
	})

	t.Run("no-op for an unregistered constraint", func(t *testing.T) {
		v := NewSimpleValue(10)
		v.RemoveConstraint(&fakeConstraint{fn: func(x float64) float64 { return x }})
		assert.Equal(t, 10.0, v.Amount())
	})

	t.Run("detaches the constraint's dependency subscription", func(t *testing.T) {
		min := NewStatValue(5)
		v := NewSimpleValue(10)
		c := NewFloorConstraint(min, v)
		v.AddConstraint(c)

		v.RemoveConstraint(c)

		// A detached constraint must not clamp on later bound changes.
		require.NoError(t, min.SetAmount(100))
		assert.Equal(t, 10.0, v.Amount())
	})
}

func TestSimpleValue_Recalculate(t *testing.T) {
	t.Run("re-applies the chain to detect drift", func(t *testing.T) {
		floor := 5.0
		v := NewSimpleValue(10)
		v.AddConstraint(&fakeConstraint{fn: func(x float64) float64 {
			if x < floor {
				return floor
			}
			return x
		}})
		require.Equal(t, 10.0, v.Amount())

		// The clamp changed behind the value's back; a forced
		// recalculation picks it up.
		floor = 25
		v.Recalculate()
		assert.Equal(t, 25.0, v.Amount())
	})

	t.Run("no-op when nothing drifted", func(t *testing.T) {
		v := NewSimpleValue(10)
		fired := 0
		v.Subscribe(func(*StatValue) { fired++ })

		v.Recalculate()
		assert.Zero(t, fired)
	})
}
