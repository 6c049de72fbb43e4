package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Require(t *testing.T) {
	state := false
	g := NewGuard(func() bool { return state })

	assert.NoError(t, g.Require(false, "Add"))

	err := g.Require(true, "TeamOptions")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlocked)

	var blocked *BlockedError
	require.True(t, errors.As(err, &blocked))
	assert.Equal(t, "TeamOptions", blocked.Op)
	assert.False(t, blocked.Committed)
	assert.Contains(t, err.Error(), "TeamOptions is blocked while the roster is uncommitted")

	state = true
	assert.NoError(t, g.Require(true, "TeamOptions"))
	assert.ErrorIs(t, g.Require(false, "Add"), ErrBlocked)
}

func TestGuarded(t *testing.T) {
	state := true
	g := NewGuard(func() bool { return state })

	t.Run("runs when state matches", func(t *testing.T) {
		calls := 0
		got, err := Guarded(g, true, "Count", func() (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("skips when state differs", func(t *testing.T) {
		calls := 0
		got, err := Guarded(g, false, "Count", func() (int, error) {
			calls++
			return 42, nil
		})
		assert.ErrorIs(t, err, ErrBlocked)
		assert.Zero(t, got)
		assert.Zero(t, calls)
	})
}
