package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// Style selects how FormatOptions renders team options.
type Style string

const (
	// StyleTable is a plain column-aligned table with a dashed rule
	StyleTable Style = "table"

	// StyleBox is a bordered table
	StyleBox Style = "box"

	// StyleJSONL outputs each option as one JSON array per line
	StyleJSONL Style = "jsonl"
)

// ParseStyle validates a style name from a command-line flag.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleTable, StyleBox, StyleJSONL:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s (valid: table, box, jsonl)", s)
	}
}

// columnGap separates table columns.
const columnGap = "  "

// FormatOptions writes options in the given style.
// options[i][j] holds the member names of team j in option i.
func FormatOptions(w io.Writer, style Style, options [][][]string, teams int) error {
	switch style {
	case StyleBox:
		return FormatBox(w, options, teams)
	case StyleJSONL:
		return FormatJSONL(w, options)
	default:
		FormatTable(w, options, teams)
		return nil
	}
}

// Headers returns the column titles "Team 1" .. "Team n".
func Headers(teams int) []string {
	headers := make([]string, teams)
	for i := range headers {
		headers[i] = fmt.Sprintf("Team %d", i+1)
	}
	return headers
}

// Rows joins each team's members with ", " giving one cell per team.
func Rows(options [][][]string, teams int) [][]string {
	rows := make([][]string, len(options))
	for i, option := range options {
		row := make([]string, teams)
		for j := 0; j < teams && j < len(option); j++ {
			row[j] = strings.Join(option[j], ", ")
		}
		rows[i] = row
	}
	return rows
}

// FormatTable writes options as a column-aligned table: a header row, a
// dashed rule, then one row per option. Column widths use display width so
// names with accents or wide characters stay aligned.
// Returns the number of options formatted.
func FormatTable(w io.Writer, options [][][]string, teams int) int {
	if len(options) == 0 {
		fmt.Fprintln(w, "No valid team options")
		return 0
	}

	headers := Headers(teams)
	rows := Rows(options, teams)

	widths := make([]int, teams)
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	rule := make([]string, teams)
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}

	writeRow(w, headers, widths)
	writeRow(w, rule, widths)
	for _, row := range rows {
		writeRow(w, row, widths)
	}

	return len(options)
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, columnGap), " "))
}

// FormatBox writes options as a bordered table.
func FormatBox(w io.Writer, options [][][]string, teams int) error {
	if len(options) == 0 {
		fmt.Fprintln(w, "No valid team options")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(Headers(teams))
	if err := table.Bulk(Rows(options, teams)); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// FormatJSONL writes each option as a single-line JSON array of teams.
// This format is ideal for streaming and processing with tools like jq.
func FormatJSONL(w io.Writer, options [][][]string) error {
	for _, option := range options {
		if err := writeJSONLine(w, option); err != nil {
			return err
		}
	}

	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write JSONL output: %w", err)
	}
	return nil
}

// FormatSingleJSON writes v as pretty-printed JSON followed by a newline.
func FormatSingleJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)
	return nil
}
