package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleOptions = [][][]string{
	{{"Alice", "Bob"}, {"Charlie", "Dave"}},
	{{"Alice", "Charlie"}, {"Bob", "Dave"}},
}

func TestParseStyle(t *testing.T) {
	for _, s := range []string{"table", "box", "jsonl"} {
		style, err := ParseStyle(s)
		require.NoError(t, err)
		assert.Equal(t, Style(s), style)
	}

	_, err := ParseStyle("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format: xml")
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, []string{"Team 1", "Team 2"}, Headers(2))
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	n := FormatTable(&buf, sampleOptions, 2)
	assert.Equal(t, 2, n)

	expected := "" +
		"Team 1          Team 2\n" +
		"--------------  -------------\n" +
		"Alice, Bob      Charlie, Dave\n" +
		"Alice, Charlie  Bob, Dave\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	n := FormatTable(&buf, nil, 2)
	assert.Zero(t, n)
	assert.Equal(t, "No valid team options\n", buf.String())
}

func TestFormatTable_WideNames(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&buf, [][][]string{
		{{"Arón", "Iris"}, {"Jan"}},
		{{"Marc", "Jan"}, {"Arón"}},
	}, 2)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// The second column starts at the same display offset on every line.
	col := runewidth.StringWidth("Arón, Iris") + len(columnGap)
	for _, line := range lines {
		assert.GreaterOrEqual(t, runewidth.StringWidth(line), col, line)
		prefix := runewidth.Truncate(line, col, "")
		assert.Equal(t, col, runewidth.StringWidth(prefix), line)
		assert.True(t, strings.HasSuffix(prefix, columnGap), "line %q", line)
	}
}

func TestFormatBox(t *testing.T) {
	var buf bytes.Buffer
	err := FormatBox(&buf, sampleOptions, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Alice, Bob")
	assert.Contains(t, out, "Charlie, Dave")
	assert.Contains(t, strings.ToUpper(out), "TEAM 2")
}

func TestFormatJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSONL(&buf, sampleOptions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `[["Alice","Bob"],["Charlie","Dave"]]`, lines[0])

	var decoded [][]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, sampleOptions[1], decoded)
}

func TestFormatSingleJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatSingleJSON(&buf, map[string]int{"valid": 1}))
	assert.Equal(t, "{\n  \"valid\": 1\n}\n", buf.String())
}

func TestFormatOptions_DispatchesByStyle(t *testing.T) {
	var table, jsonl bytes.Buffer
	require.NoError(t, FormatOptions(&table, StyleTable, sampleOptions, 2))
	require.NoError(t, FormatOptions(&jsonl, StyleJSONL, sampleOptions, 2))

	assert.True(t, strings.HasPrefix(table.String(), "Team 1"))
	assert.True(t, strings.HasPrefix(jsonl.String(), `[["Alice"`))
}
