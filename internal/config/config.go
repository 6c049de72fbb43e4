package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/dyluth/teamify/pkg/roster"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the roster file looked up when no path is given.
const DefaultFileName = "roster.yml"

// SupportedVersion is the only accepted value of the version field.
const SupportedVersion = "1.0"

// RosterConfig represents the top-level roster.yml configuration
type RosterConfig struct {
	Version string     `yaml:"version" json:"version"`
	Name    string     `yaml:"name" json:"name"`                       // Used to namespace stored snapshots and draws
	Teams   int        `yaml:"teams,omitempty" json:"teams,omitempty"` // Number of teams, default 2
	People  []string   `yaml:"people" json:"people"`
	Pairs   []Relation `yaml:"pairs,omitempty" json:"pairs,omitempty"`   // Must share a team
	Avoids  []Relation `yaml:"avoids,omitempty" json:"avoids,omitempty"` // Must not share a team
}

// Relation is a two-name entry of the pairs or avoids list, e.g. [Ferran, Andrea].
type Relation []string

// Validate performs strict validation on the configuration and applies defaults
func (c *RosterConfig) Validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("unsupported version: %s (expected: %s)", c.Version, SupportedVersion)
	}

	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(c.Name, ": ") {
		return fmt.Errorf("invalid name %q: must not contain spaces or ':'", c.Name)
	}

	if c.Teams == 0 {
		c.Teams = roster.SupportedTeamCount
	}
	if c.Teams != roster.SupportedTeamCount {
		return fmt.Errorf("unsupported teams: %d (only %d teams are supported)", c.Teams, roster.SupportedTeamCount)
	}

	if len(c.People) == 0 {
		return fmt.Errorf("no people defined")
	}
	if len(c.People) < c.Teams {
		return fmt.Errorf("%d people cannot be split into %d teams", len(c.People), c.Teams)
	}

	seen := make(map[string]bool, len(c.People))
	for i, person := range c.People {
		if strings.TrimSpace(person) == "" {
			return fmt.Errorf("people[%d]: name is empty", i)
		}
		if seen[person] {
			return fmt.Errorf("duplicate person '%s'", person)
		}
		seen[person] = true
	}

	if err := validateRelations("pairs", c.Pairs, seen); err != nil {
		return err
	}
	if err := validateRelations("avoids", c.Avoids, seen); err != nil {
		return err
	}

	return nil
}

func validateRelations(field string, relations []Relation, people map[string]bool) error {
	for i, rel := range relations {
		if len(rel) != 2 {
			return fmt.Errorf("%s[%d]: expected exactly 2 names, got %d", field, i, len(rel))
		}
		for _, name := range rel {
			if !people[name] {
				return fmt.Errorf("%s[%d]: unknown person '%s'", field, i, name)
			}
		}
		if rel[0] == rel[1] {
			return fmt.Errorf("%s[%d]: '%s' cannot be related to themselves", field, i, rel[0])
		}
	}
	return nil
}

// Build creates a roster from the configuration and commits it.
// The configuration must already be valid.
func (c *RosterConfig) Build(opts ...roster.Option) (*roster.Roster, error) {
	opts = append(opts, roster.WithPeople(c.People...))
	r, err := roster.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster: %w", err)
	}

	for _, rel := range c.Pairs {
		if err := r.Pair(rel[0], rel[1]); err != nil {
			return nil, fmt.Errorf("failed to pair %s and %s: %w", rel[0], rel[1], err)
		}
	}
	for _, rel := range c.Avoids {
		if err := r.Avoid(rel[0], rel[1]); err != nil {
			return nil, fmt.Errorf("failed to avoid %s and %s: %w", rel[0], rel[1], err)
		}
	}

	if err := r.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit roster: %w", err)
	}

	return r, nil
}

// Parse decodes and validates a roster configuration from YAML bytes
func Parse(data []byte) (*RosterConfig, error) {
	var config RosterConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Load reads and validates roster.yml from the specified path
func Load(path string) (*RosterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Marshal encodes the configuration back to YAML
func (c *RosterConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	return data, nil
}
