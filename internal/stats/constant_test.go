package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statkiterr "github.com/jfandel/statkit/internal/errors"
)

func TestConstantValue(t *testing.T) {
	t.Run("holds the constructed amount", func(t *testing.T) {
		v := NewConstantValue(42)
		assert.Equal(t, 42.0, v.Amount())
	})

	t.Run("rejects every write after construction", func(t *testing.T) {
		v := NewConstantValue(42)

		err := v.SetAmount(1)
		require.Error(t, err)
		assert.True(t, statkiterr.IsImmutableWrite(err))
		assert.Equal(t, 42.0, v.Amount())

		// Writing the current amount is still a write.
		err = v.SetAmount(42)
		assert.True(t, statkiterr.IsImmutableWrite(err))
	})

	t.Run("can serve as a constraint bound", func(t *testing.T) {
		min := NewConstantValue(10)
		v := NewSimpleValue(20)
		v.AddConstraint(NewFloorConstraint(min, v))

		require.NoError(t, v.SetAmount(3))
		assert.Equal(t, 10.0, v.Amount())
	})
}
