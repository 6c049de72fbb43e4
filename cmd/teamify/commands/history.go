package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dyluth/teamify/internal/config"
	"github.com/dyluth/teamify/internal/filter"
	"github.com/dyluth/teamify/internal/format"
	"github.com/dyluth/teamify/internal/printer"
	"github.com/dyluth/teamify/internal/resolver"
	"github.com/dyluth/teamify/internal/store"
	"github.com/dyluth/teamify/internal/timespec"
	"github.com/spf13/cobra"
)

var (
	historyID       string
	historyOutput   string
	historySince    string
	historyUntil    string
	historyWith     string
	historyTogether []string
)

var historyCmd = &cobra.Command{
	Use:   "history [ROSTER]",
	Short: "Inspect recorded draws",
	Long: `Inspect draws recorded with 'teamify pick --save'.

List Mode (no --id):
  Displays the roster's draws, oldest first. ROSTER defaults to the name in
  the roster file.

Get Mode (--id):
  Displays one draw as pretty-printed JSON. Accepts short IDs of at least
  6 characters.

Filters (list mode only):
  --since     - Draws after this time (duration, date or RFC3339)
  --until     - Draws before this time
  --with      - Draws that include this person
  --together  - Draws where all these people share a team

Examples:
  # Last week's draws
  teamify history --since=168h

  # How often were Alice and Bob on the same side?
  teamify history --together Alice,Bob

  # One draw in full
  teamify history --id 3f2a9c`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyID, "id", "", "Show a single draw by (short) ID")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "default", "Output format: default or jsonl (ignored with --id)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Show draws after time (duration, date or RFC3339)")
	historyCmd.Flags().StringVar(&historyUntil, "until", "", "Show draws before time (duration, date or RFC3339)")
	historyCmd.Flags().StringVar(&historyWith, "with", "", "Only draws including this person")
	historyCmd.Flags().StringSliceVar(&historyTogether, "together", nil, "Only draws where these people share a team")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if historyID == "" && historyOutput != "default" && historyOutput != "jsonl" {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", historyOutput),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if historyID != "" {
		return showDraw(ctx, client, historyID)
	}

	name, err := historyRoster(args)
	if err != nil {
		return err
	}

	sinceMs, untilMs, err := timespec.ParseRange(historySince, historyUntil)
	if err != nil {
		return printer.Error(
			"invalid time filter",
			err.Error(),
			[]string{"Use duration format like '48h', a date like '2025-03-07' or RFC3339 like '2025-03-07T18:00:00Z'"},
		)
	}

	draws, err := client.ListDraws(ctx, name, sinceMs, untilMs)
	if err != nil {
		return fmt.Errorf("failed to list draws: %w", err)
	}

	criteria := &filter.Criteria{
		SinceTimestampMs: sinceMs,
		UntilTimestampMs: untilMs,
		Member:           strings.TrimSpace(historyWith),
		Together:         trimAll(historyTogether),
	}
	draws = criteria.Apply(draws)

	if historyOutput == "jsonl" {
		return format.FormatDrawsJSONL(printer.Out(), draws)
	}

	printer.Heading("Draws for '%s':\n", name)
	format.FormatDraws(printer.Out(), draws)
	return nil
}

// historyRoster returns the roster named on the command line, or the name
// in the roster file.
func historyRoster(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := config.Load(rosterFile)
	if err != nil {
		return "", printer.Error(
			"no roster given",
			fmt.Sprintf("Could not read the roster name from %s: %v", rosterFile, err),
			[]string{"Name the roster explicitly:\n  teamify history <roster>"},
		)
	}
	return cfg.Name, nil
}

func showDraw(ctx context.Context, client *store.Client, shortID string) error {
	fullID, err := resolver.ResolveDrawID(ctx, client, shortID)
	if err != nil {
		if nf, ok := err.(*resolver.NotFoundError); ok {
			return printer.Error(
				fmt.Sprintf("draw with ID '%s' not found", nf.ShortID),
				"No recorded draw has this ID.",
				[]string{"List recorded draws:\n  teamify history"},
			)
		}
		if amb, ok := err.(*resolver.AmbiguousError); ok {
			return printer.Error(
				"ambiguous short ID",
				amb.Error(),
				[]string{"Use more characters. Matching draws:\n  " + strings.Join(amb.Candidates(), "\n  ")},
			)
		}
		return fmt.Errorf("failed to resolve draw ID: %w", err)
	}

	d, err := client.GetDraw(ctx, fullID)
	if err != nil {
		if store.IsNotFound(err) {
			return printer.Error(
				fmt.Sprintf("draw with ID '%s' not found", fullID),
				"The draw was resolved but could not be fetched.",
				[]string{"This might indicate a race condition. Try again."},
			)
		}
		return fmt.Errorf("failed to get draw: %w", err)
	}

	return format.FormatSingleJSON(printer.Out(), d)
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
