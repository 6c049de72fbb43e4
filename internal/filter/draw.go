package filter

import (
	"slices"

	"github.com/dyluth/teamify/internal/store"
)

// Criteria defines filtering criteria for recorded draws.
// All filters are ANDed together - a draw must match ALL criteria to pass.
type Criteria struct {
	SinceTimestampMs int64    // Unix timestamp in milliseconds, 0 = no filter
	UntilTimestampMs int64    // Unix timestamp in milliseconds, 0 = no filter
	Member           string   // Person that must appear in the draw, empty = no filter
	Together         []string // People that must share one team, empty = no filter
}

// Matches returns true if the draw matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(d *store.Draw) bool {
	if c.SinceTimestampMs > 0 && d.CreatedAtMs < c.SinceTimestampMs {
		return false
	}
	if c.UntilTimestampMs > 0 && d.CreatedAtMs > c.UntilTimestampMs {
		return false
	}

	if c.Member != "" && teamOf(d, c.Member) < 0 {
		return false
	}

	if len(c.Together) > 0 {
		team := teamOf(d, c.Together[0])
		if team < 0 {
			return false
		}
		for _, name := range c.Together[1:] {
			if !slices.Contains(d.Teams[team], name) {
				return false
			}
		}
	}

	return true
}

// IsEmpty returns true if no filter criteria are set.
func (c *Criteria) IsEmpty() bool {
	return c.SinceTimestampMs == 0 &&
		c.UntilTimestampMs == 0 &&
		c.Member == "" &&
		len(c.Together) == 0
}

// Apply returns the draws that match the criteria, preserving order.
func (c *Criteria) Apply(draws []*store.Draw) []*store.Draw {
	if c.IsEmpty() {
		return draws
	}
	out := make([]*store.Draw, 0, len(draws))
	for _, d := range draws {
		if c.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// teamOf returns the index of the team containing name, or -1.
func teamOf(d *store.Draw, name string) int {
	for i, team := range d.Teams {
		if slices.Contains(team, name) {
			return i
		}
	}
	return -1
}
