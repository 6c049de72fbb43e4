package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/dyluth/teamify/internal/draw"
	"github.com/dyluth/teamify/internal/format"
	"github.com/dyluth/teamify/internal/printer"
	"github.com/spf13/cobra"
)

var (
	pickTeams  int
	pickSeed   int64
	pickSave   bool
	pickOutput string
	pickRemote string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick one valid team split at random",
	Long: `Pick one of the valid team splits uniformly at random.

Use --seed to make the pick reproducible and --save to record it in the
roster's draw history (see 'teamify history').`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().IntVar(&pickTeams, "teams", 0, "Number of teams (default from roster)")
	pickCmd.Flags().Int64Var(&pickSeed, "seed", 0, "Random seed (0 = random)")
	pickCmd.Flags().BoolVar(&pickSave, "save", false, "Record the draw in Redis")
	pickCmd.Flags().StringVarP(&pickOutput, "output", "o", string(format.StyleTable), "Output format: table, box or jsonl")
	pickCmd.Flags().StringVar(&pickRemote, "remote", "", "Use a roster stored in Redis instead of --file")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	style, err := format.ParseStyle(pickOutput)
	if err != nil {
		return printer.Error(
			"invalid output format",
			err.Error(),
			[]string{"Valid formats: table, box, jsonl"},
		)
	}

	cfg, err := loadRoster(ctx, pickRemote)
	if err != nil {
		return err
	}

	teams, err := teamCount(cmd, cfg, pickTeams)
	if err != nil {
		return err
	}
	named, err := possibleOptions(cfg, teams)
	if err != nil {
		return err
	}

	d, err := draw.New(cfg.Name, named, pickSeed)
	if err != nil {
		return fmt.Errorf("failed to pick teams: %w", err)
	}
	log.Printf("[DEBUG] Picked option %d of %d (seed %d)", d.Index+1, d.Total, d.Seed)

	if style != format.StyleJSONL {
		printer.Heading("Random option (%d of %d):\n", d.Index+1, d.Total)
	}
	if err := format.FormatOptions(printer.Out(), style, [][][]string{d.Teams}, teams); err != nil {
		return err
	}

	if !pickSave {
		return nil
	}

	client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.RecordDraw(ctx, d); err != nil {
		return fmt.Errorf("failed to record draw: %w", err)
	}
	log.Printf("[INFO] Recorded draw %s for roster '%s'", d.ID, d.Roster)

	if style != format.StyleJSONL {
		printer.Success("Recorded draw %s\n", d.ID[:8])
	}
	return nil
}
