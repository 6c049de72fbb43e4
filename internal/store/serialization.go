package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dyluth/teamify/internal/config"
)

// Serialization helpers for converting between Go structs and Redis hashes
//
// Scalar fields map to individual hash fields; lists are JSON-encoded into a
// single field.

// DrawToHash converts a Draw to a Redis hash format.
func DrawToHash(d *Draw) (map[string]interface{}, error) {
	teamsJSON, err := json.Marshal(d.Teams)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal teams: %w", err)
	}

	return map[string]interface{}{
		"id":            d.ID,
		"roster":        d.Roster,
		"index":         d.Index,
		"total":         d.Total,
		"seed":          d.Seed,
		"teams":         string(teamsJSON),
		"created_at_ms": d.CreatedAtMs,
	}, nil
}

// HashToDraw converts a Redis hash to a Draw.
func HashToDraw(hash map[string]string) (*Draw, error) {
	index, err := strconv.Atoi(hash["index"])
	if err != nil {
		return nil, fmt.Errorf("invalid index field: %w", err)
	}

	total, err := strconv.Atoi(hash["total"])
	if err != nil {
		return nil, fmt.Errorf("invalid total field: %w", err)
	}

	var teams [][]string
	if err := json.Unmarshal([]byte(hash["teams"]), &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal teams: %w", err)
	}

	seed, _ := strconv.ParseInt(hash["seed"], 10, 64)
	createdAtMs, _ := strconv.ParseInt(hash["created_at_ms"], 10, 64)

	return &Draw{
		ID:          hash["id"],
		Roster:      hash["roster"],
		Index:       index,
		Total:       total,
		Seed:        seed,
		Teams:       teams,
		CreatedAtMs: createdAtMs,
	}, nil
}

// RosterToHash converts a roster configuration to a Redis hash format.
func RosterToHash(c *config.RosterConfig, updatedAtMs int64) (map[string]interface{}, error) {
	people, err := json.Marshal(c.People)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal people: %w", err)
	}
	pairs, err := json.Marshal(c.Pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pairs: %w", err)
	}
	avoids, err := json.Marshal(c.Avoids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal avoids: %w", err)
	}

	return map[string]interface{}{
		"version":       c.Version,
		"name":          c.Name,
		"teams":         c.Teams,
		"people":        string(people),
		"pairs":         string(pairs),
		"avoids":        string(avoids),
		"updated_at_ms": updatedAtMs,
	}, nil
}

// HashToRoster converts a Redis hash back to a validated roster configuration.
func HashToRoster(hash map[string]string) (*config.RosterConfig, error) {
	teams, err := strconv.Atoi(hash["teams"])
	if err != nil {
		return nil, fmt.Errorf("invalid teams field: %w", err)
	}

	c := &config.RosterConfig{
		Version: hash["version"],
		Name:    hash["name"],
		Teams:   teams,
	}

	fields := []struct {
		name string
		dest any
	}{
		{"people", &c.People},
		{"pairs", &c.Pairs},
		{"avoids", &c.Avoids},
	}
	for _, f := range fields {
		raw := hash[f.name]
		if raw == "" || raw == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(raw), f.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", f.name, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("stored roster is invalid: %w", err)
	}

	return c, nil
}
