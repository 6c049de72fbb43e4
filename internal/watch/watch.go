package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dyluth/teamify/internal/store"
)

// OutputFormat selects how streamed draws are written.
type OutputFormat string

const (
	// OutputFormatDefault prints one human-readable line per draw
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON prints one JSON object per line
	OutputFormatJSON OutputFormat = "json"
)

// Source delivers draws as they are recorded. *store.Subscription implements it.
type Source interface {
	Events() <-chan *store.Draw
	Errors() <-chan error
}

// StreamDraws writes every draw from src to w until ctx is cancelled or the
// source closes. When roster is set, draws of other rosters are skipped.
// Source errors are logged and do not stop the stream.
func StreamDraws(ctx context.Context, src Source, roster string, format OutputFormat, w io.Writer) error {
	events, errs := src.Events(), src.Errors()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("[WARN] Skipping draw event: %v", err)

		case d, ok := <-events:
			if !ok {
				return nil
			}
			if roster != "" && d.Roster != roster {
				continue
			}
			if err := writeDraw(w, d, format); err != nil {
				return err
			}
		}
	}
}

func writeDraw(w io.Writer, d *store.Draw, format OutputFormat) error {
	if format == OutputFormatJSON {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal draw: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	teams := make([]string, len(d.Teams))
	for i, team := range d.Teams {
		teams[i] = strings.Join(team, ", ")
	}

	at := time.UnixMilli(d.CreatedAtMs).Format("15:04:05")
	_, err := fmt.Fprintf(w, "[%s] 🎲 %s drew option %d/%d (%.8s): %s\n",
		at, d.Roster, d.Index+1, d.Total, d.ID, strings.Join(teams, " | "))
	return err
}
