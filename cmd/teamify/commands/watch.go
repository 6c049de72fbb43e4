package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dyluth/teamify/internal/printer"
	"github.com/dyluth/teamify/internal/watch"
	"github.com/spf13/cobra"
)

var watchOutputFormat string

var watchCmd = &cobra.Command{
	Use:   "watch [ROSTER]",
	Short: "Stream draws as they are recorded",
	Long: `Stream draws recorded with 'teamify pick --save' as they happen, until
interrupted. With ROSTER, only that roster's draws are shown.

Output Formats:
  default - One human-readable line per draw
  json    - Line-delimited JSON for programmatic processing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputFormat, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	var outputFormat watch.OutputFormat
	switch watchOutputFormat {
	case "default":
		outputFormat = watch.OutputFormatDefault
	case "json":
		outputFormat = watch.OutputFormatJSON
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", watchOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	sub, err := client.SubscribeDraws(ctx)
	if err != nil {
		return err
	}
	defer sub.Close()

	var rosterName string
	if len(args) > 0 {
		rosterName = args[0]
	}

	if outputFormat == watch.OutputFormatDefault {
		printer.Info("Watching draws in namespace '%s' (Ctrl+C to stop)\n", namespace)
	}
	return watch.StreamDraws(ctx, sub, rosterName, outputFormat, printer.Out())
}
