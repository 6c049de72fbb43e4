package filter

import (
	"testing"

	"github.com/dyluth/teamify/internal/store"
	"github.com/stretchr/testify/assert"
)

func draw(createdAtMs int64, teams ...[]string) *store.Draw {
	return &store.Draw{Roster: "friday", CreatedAtMs: createdAtMs, Teams: teams}
}

func TestCriteria_Matches(t *testing.T) {
	d := draw(2000, []string{"Alice", "Bob"}, []string{"Charlie", "Dave"})

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty criteria", Criteria{}, true},
		{"after since", Criteria{SinceTimestampMs: 1000}, true},
		{"before since", Criteria{SinceTimestampMs: 3000}, false},
		{"before until", Criteria{UntilTimestampMs: 3000}, true},
		{"after until", Criteria{UntilTimestampMs: 1000}, false},
		{"member present", Criteria{Member: "Dave"}, true},
		{"member absent", Criteria{Member: "Eve"}, false},
		{"together", Criteria{Together: []string{"Bob", "Alice"}}, true},
		{"apart", Criteria{Together: []string{"Alice", "Charlie"}}, false},
		{"together unknown", Criteria{Together: []string{"Eve", "Alice"}}, false},
		{"combined", Criteria{SinceTimestampMs: 1000, Member: "Alice", Together: []string{"Charlie", "Dave"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(d))
		})
	}
}

func TestCriteria_Apply(t *testing.T) {
	draws := []*store.Draw{
		draw(1000, []string{"Alice", "Bob"}, []string{"Charlie"}),
		draw(2000, []string{"Alice", "Charlie"}, []string{"Bob"}),
		draw(3000, []string{"Alice", "Bob"}, []string{"Charlie"}),
	}

	empty := &Criteria{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, draws, empty.Apply(draws))

	together := &Criteria{Together: []string{"Alice", "Bob"}}
	assert.False(t, together.IsEmpty())
	assert.Equal(t, []*store.Draw{draws[0], draws[2]}, together.Apply(draws))

	recent := &Criteria{SinceTimestampMs: 1500, Together: []string{"Alice", "Bob"}}
	assert.Equal(t, []*store.Draw{draws[2]}, recent.Apply(draws))
}
