package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dyluth/teamify/internal/store"
)

// shortIDLength is how much of a draw UUID the history table shows.
const shortIDLength = 8

// drawTimeLayout renders draw timestamps in UTC.
const drawTimeLayout = "2006-01-02 15:04"

// FormatDraws writes recorded draws as a column-aligned table, newest last.
// Returns the number of draws formatted.
func FormatDraws(w io.Writer, draws []*store.Draw) int {
	if len(draws) == 0 {
		fmt.Fprintln(w, "No draws recorded")
		return 0
	}

	headers := []string{"ID", "WHEN", "OPTION", "TEAMS"}
	rows := make([][]string, len(draws))
	for i, d := range draws {
		rows[i] = []string{
			shortID(d.ID),
			time.UnixMilli(d.CreatedAtMs).UTC().Format(drawTimeLayout),
			fmt.Sprintf("%d/%d", d.Index+1, d.Total),
			joinTeams(d.Teams),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row[:len(row)-1] {
			widths[i] = max(widths[i], len(cell))
		}
	}
	// Last column is never padded.
	widths[len(widths)-1] = 0

	writeRow(w, headers, widths)
	for _, row := range rows {
		writeRow(w, row, widths)
	}
	return len(draws)
}

// FormatDrawsJSONL writes each draw as a single-line JSON object.
func FormatDrawsJSONL(w io.Writer, draws []*store.Draw) error {
	for _, d := range draws {
		if err := writeJSONLine(w, d); err != nil {
			return err
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func joinTeams(teams [][]string) string {
	parts := make([]string, len(teams))
	for i, team := range teams {
		parts[i] = strings.Join(team, ", ")
	}
	return strings.Join(parts, " | ")
}
