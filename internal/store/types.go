package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Draw is one team option picked at random from a roster's valid options.
type Draw struct {
	ID          string     `json:"id"`            // UUID of this draw
	Roster      string     `json:"roster"`        // Name of the roster it was drawn from
	Index       int        `json:"index"`         // Position of the option among the valid ones
	Total       int        `json:"total"`         // Number of valid options at draw time
	Seed        int64      `json:"seed"`          // Random seed, 0 when unseeded
	Teams       [][]string `json:"teams"`         // Member names per team
	CreatedAtMs int64      `json:"created_at_ms"` // Unix timestamp in milliseconds
}

// Validate checks if the Draw has valid field values.
func (d *Draw) Validate() error {
	if !isValidUUID(d.ID) {
		return fmt.Errorf("invalid draw ID: not a valid UUID")
	}

	if d.Roster == "" {
		return fmt.Errorf("roster name cannot be empty")
	}

	if d.Total < 1 {
		return fmt.Errorf("invalid total: must be >= 1, got %d", d.Total)
	}

	if d.Index < 0 || d.Index >= d.Total {
		return fmt.Errorf("invalid index: %d out of range [0, %d)", d.Index, d.Total)
	}

	if len(d.Teams) < 2 {
		return fmt.Errorf("a draw needs at least 2 teams, got %d", len(d.Teams))
	}

	return nil
}

// isValidUUID checks if a string is a valid UUID format.
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
