package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairAndAvoid(t *testing.T) {
	r := newRoster(t, "Alice", "Bob", "Charlie")

	require.NoError(t, r.Pair("Bob", "Alice"))
	require.NoError(t, r.Pair("Alice", "Bob"), "re-pairing is a no-op")
	require.NoError(t, r.Avoid("Alice", "Charlie"))

	// Pair and avoid on the same two people are independent.
	require.NoError(t, r.Avoid("Alice", "Bob"))

	assert.Equal(t, [][2]string{{"Alice", "Bob"}}, r.Pairs())
	assert.Equal(t, [][2]string{{"Alice", "Bob"}, {"Alice", "Charlie"}}, r.Avoids())
}

func TestRelations_Errors(t *testing.T) {
	r := newRoster(t, "Alice", "Bob")

	ops := map[string]func(a, b string) error{
		"Pair":     r.Pair,
		"Separate": r.Separate,
		"Avoid":    r.Avoid,
		"Unavoid":  r.Unavoid,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op("Alice", "Zed"), ErrUnknownName)
			assert.ErrorIs(t, op("Zed", "Alice"), ErrUnknownName)
			assert.ErrorIs(t, op("Alice", "Alice"), ErrSelfRelation)
		})
	}
}

func TestSeparateAndUnavoid(t *testing.T) {
	t.Run("removes existing relations", func(t *testing.T) {
		r := newRoster(t, "Alice", "Bob")
		require.NoError(t, r.Pair("Alice", "Bob"))
		require.NoError(t, r.Avoid("Alice", "Bob"))

		require.NoError(t, r.Separate("Bob", "Alice"))
		require.NoError(t, r.Unavoid("Alice", "Bob"))
		assert.Empty(t, r.Pairs())
		assert.Empty(t, r.Avoids())
	})

	t.Run("absent relation is a no-op by default", func(t *testing.T) {
		r := newRoster(t, "Alice", "Bob")
		assert.NoError(t, r.Separate("Alice", "Bob"))
		assert.NoError(t, r.Unavoid("Alice", "Bob"))
	})

	t.Run("absent relation fails in strict mode", func(t *testing.T) {
		r, err := New(WithStrictRelations(), WithPeople("Alice", "Bob"))
		require.NoError(t, err)

		assert.ErrorIs(t, r.Separate("Alice", "Bob"), ErrUnknownRelation)
		assert.ErrorIs(t, r.Unavoid("Alice", "Bob"), ErrUnknownRelation)

		require.NoError(t, r.Pair("Alice", "Bob"))
		assert.NoError(t, r.Separate("Alice", "Bob"))
		assert.ErrorIs(t, r.Separate("Alice", "Bob"), ErrUnknownRelation)
	})
}

func TestAdjacency(t *testing.T) {
	a := make(adjacency[string])

	assert.True(t, a.link("x", "y"))
	assert.False(t, a.link("y", "x"))
	assert.True(t, a.has("y", "x"))

	a.link("x", "z")
	a.drop("x")
	assert.Empty(t, a, "dropping the only hub empties the relation")

	a.link("x", "y")
	assert.True(t, a.unlink("y", "x"))
	assert.False(t, a.unlink("x", "y"))
	assert.Empty(t, a)
}
