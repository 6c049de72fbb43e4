package commands

import (
	"fmt"

	"github.com/dyluth/teamify/internal/printer"
	"github.com/dyluth/teamify/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initName  string
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample roster.yml",
	Long: `Create a sample roster.yml with people, pairs and avoids to edit.

Use --force to overwrite an existing roster.yml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing roster.yml")
	initCmd.Flags().StringVar(&initName, "name", scaffold.DefaultRosterName, "Roster name")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to create roster.yml in")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := scaffold.Initialize(initDir, initName, forceInit)
	if err != nil {
		if checkErr := scaffold.CheckExisting(initDir); checkErr != nil && !forceInit {
			return printer.Error(
				"roster already initialized",
				checkErr.Error(),
				nil,
			)
		}
		return fmt.Errorf("initialization failed: %w", err)
	}

	printer.Success("Created %s\n", path)
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Edit %s with your people, pairs and avoids\n", path)
	printer.Info("  2. Run 'teamify options' to list every valid split\n")
	printer.Info("  3. Run 'teamify pick' to draw one at random\n")
	return nil
}
