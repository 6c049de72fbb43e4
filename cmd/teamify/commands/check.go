package commands

import (
	"context"
	"fmt"

	"github.com/dyluth/teamify/internal/printer"
	"github.com/spf13/cobra"
)

var (
	checkTeams  int
	checkRemote string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a roster and count its options",
	Long: `Validate the roster and report how many splits exist and how many of them
satisfy every pair and avoid.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkTeams, "teams", 0, "Number of teams (default from roster)")
	checkCmd.Flags().StringVar(&checkRemote, "remote", "", "Use a roster stored in Redis instead of --file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadRoster(ctx, checkRemote)
	if err != nil {
		return err
	}

	r, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build roster: %w", err)
	}

	teams, err := teamCount(cmd, cfg, checkTeams)
	if err != nil {
		return err
	}
	stats, err := r.Stats(teams)
	if err != nil {
		return teamError(err, teams)
	}

	printer.Heading("Roster '%s'\n", cfg.Name)
	printer.Info("  People:  %d\n", stats.People)
	printer.Info("  Pairs:   %d\n", stats.Pairs)
	printer.Info("  Avoids:  %d\n", stats.Avoids)
	printer.Info("  Options: %d for %d teams\n", stats.Options, teams)
	printer.Info("  Valid:   %d\n\n", stats.Valid)

	if stats.Valid == 0 {
		printer.Warning("No split satisfies every pair and avoid\n")
		return nil
	}
	printer.Success("Roster is valid\n")
	return nil
}
