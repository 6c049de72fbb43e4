package commands

import (
	"context"
	"fmt"

	"github.com/dyluth/teamify/internal/config"
	"github.com/dyluth/teamify/internal/printer"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Store the roster in Redis",
	Long: `Store a snapshot of the roster file in Redis under its name, so other
commands can use it with --remote.

Pushing again replaces the stored snapshot.`,
	Args: cobra.NoArgs,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadRoster(ctx, "")
	if err != nil {
		return err
	}

	client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	printer.Step("Storing roster '%s' (%d people)\n", cfg.Name, len(cfg.People))
	if err := client.SaveRoster(ctx, cfg); err != nil {
		return fmt.Errorf("failed to store roster: %w", err)
	}

	names, err := client.ListRosters(ctx)
	if err != nil {
		return err
	}

	printer.Success("Stored roster '%s' (%d stored in namespace '%s')\n", cfg.Name, len(names), namespace)
	if rosterFile != config.DefaultFileName {
		printer.Info("Use it with: teamify options --remote %s\n", cfg.Name)
	}
	return nil
}
