package commands

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dyluth/teamify/internal/config"
	"github.com/dyluth/teamify/internal/printer"
	"github.com/dyluth/teamify/internal/store"
	"github.com/dyluth/teamify/pkg/roster"
	"github.com/spf13/cobra"
)

// loadRoster reads the stored snapshot called remote when set, otherwise the
// roster file given by --file.
func loadRoster(ctx context.Context, remote string) (*config.RosterConfig, error) {
	if remote != "" {
		client, err := openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer client.Close()

		cfg, err := client.GetRoster(ctx, remote)
		if err != nil {
			if store.IsNotFound(err) {
				return nil, printer.Error(
					fmt.Sprintf("roster '%s' not found", remote),
					fmt.Sprintf("No roster named '%s' is stored in namespace '%s'.", remote, namespace),
					[]string{"Store it first:\n  teamify push -f <roster.yml>"},
				)
			}
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
		log.Printf("[DEBUG] Loaded roster '%s' from Redis (%d people)", cfg.Name, len(cfg.People))
		return cfg, nil
	}

	cfg, err := config.Load(rosterFile)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"invalid roster file",
			err.Error(),
			map[string]string{"File": rosterFile},
			[]string{
				"Create a sample roster:\n  teamify init",
				"Point at another file:\n  teamify <command> -f path/to/roster.yml",
			},
		)
	}
	log.Printf("[DEBUG] Loaded roster '%s' from %s (%d people)", cfg.Name, rosterFile, len(cfg.People))
	return cfg, nil
}

// openStore connects to Redis and verifies the connection.
func openStore(ctx context.Context) (*store.Client, error) {
	url := resolveRedisURL()
	client, err := store.NewClientFromURL(url, namespace)
	if err != nil {
		return nil, printer.Error(
			"invalid Redis URL",
			err.Error(),
			[]string{"Use the form redis://host:port/db"},
		)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"Redis connection failed",
			fmt.Sprintf("Could not connect to Redis at %s", url),
			map[string]string{"Error": err.Error()},
			[]string{"Start Redis or pass --redis-url / set REDIS_URL"},
		)
	}

	log.Printf("[DEBUG] Connected to Redis at %s (namespace '%s')", url, namespace)
	return client, nil
}

// teamCount returns the --teams value when it was given, or the roster's
// own count. A given value below 1 is rejected.
func teamCount(cmd *cobra.Command, cfg *config.RosterConfig, override int) (int, error) {
	if !cmd.Flags().Changed("teams") {
		return cfg.Teams, nil
	}
	if override < 1 {
		return 0, printer.Error(
			"invalid team count",
			fmt.Sprintf("--teams must be at least 1, got %d.", override),
			[]string{fmt.Sprintf("Split into %d teams:\n  --teams %d", roster.SupportedTeamCount, roster.SupportedTeamCount)},
		)
	}
	return override, nil
}

// possibleOptions builds the roster and returns its valid options by name.
func possibleOptions(cfg *config.RosterConfig, teams int) ([][][]string, error) {
	r, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}

	valid, err := r.PossibleTeams(teams)
	if err != nil {
		return nil, teamError(err, teams)
	}
	log.Printf("[DEBUG] %d valid options for %d teams", len(valid), teams)

	named, err := r.NamedPartitions(valid)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve names: %w", err)
	}

	if len(named) == 0 {
		return nil, printer.Error(
			"no valid team options",
			fmt.Sprintf("No split of the %d people in '%s' satisfies every pair and avoid.", len(cfg.People), cfg.Name),
			[]string{
				"Inspect the roster:\n  teamify check",
				"Remove a conflicting pair or avoid from the roster file",
			},
		)
	}

	return named, nil
}

// teamError maps enumeration errors to user-facing messages.
func teamError(err error, teams int) error {
	switch {
	case errors.Is(err, roster.ErrUnsupportedTeamCount):
		return printer.Error(
			"unsupported team count",
			fmt.Sprintf("Cannot split into %d teams.", teams),
			[]string{fmt.Sprintf("Only %d teams are supported:\n  --teams %d", roster.SupportedTeamCount, roster.SupportedTeamCount)},
		)
	case errors.Is(err, roster.ErrTooFewPeople):
		return printer.Error(
			"not enough people",
			err.Error(),
			[]string{"Add more people to the roster"},
		)
	default:
		return fmt.Errorf("failed to enumerate teams: %w", err)
	}
}
