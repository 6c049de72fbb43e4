package commands

import (
	"context"

	"github.com/dyluth/teamify/internal/format"
	"github.com/dyluth/teamify/internal/printer"
	"github.com/spf13/cobra"
)

var (
	optionsTeams  int
	optionsOutput string
	optionsRemote string
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List every valid team split",
	Long: `List every way to split the roster into balanced teams that keeps all pairs
together and all avoids apart.

Output Formats:
  table - Aligned columns, one row per option (default)
  box   - Bordered table
  jsonl - One JSON array of teams per line

Examples:
  # All options for roster.yml
  teamify options

  # Options for a roster stored with 'teamify push'
  teamify options --remote friday-football

  # Count options with jq-friendly output
  teamify options -o jsonl | wc -l`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().IntVar(&optionsTeams, "teams", 0, "Number of teams (default from roster)")
	optionsCmd.Flags().StringVarP(&optionsOutput, "output", "o", string(format.StyleTable), "Output format: table, box or jsonl")
	optionsCmd.Flags().StringVar(&optionsRemote, "remote", "", "Use a roster stored in Redis instead of --file")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	style, err := format.ParseStyle(optionsOutput)
	if err != nil {
		return printer.Error(
			"invalid output format",
			err.Error(),
			[]string{"Valid formats: table, box, jsonl"},
		)
	}

	cfg, err := loadRoster(ctx, optionsRemote)
	if err != nil {
		return err
	}

	teams, err := teamCount(cmd, cfg, optionsTeams)
	if err != nil {
		return err
	}
	named, err := possibleOptions(cfg, teams)
	if err != nil {
		return err
	}

	if style != format.StyleJSONL {
		printer.Heading("Options for %d teams (%s):\n", teams, cfg.Name)
	}
	if err := format.FormatOptions(printer.Out(), style, named, teams); err != nil {
		return err
	}
	if style != format.StyleJSONL {
		printer.Info("\n%d valid options\n", len(named))
	}

	return nil
}
