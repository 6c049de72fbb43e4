package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Draw)
		wantErr string
	}{
		{"valid", func(d *Draw) {}, ""},
		{"bad id", func(d *Draw) { d.ID = "abc" }, "not a valid UUID"},
		{"no roster", func(d *Draw) { d.Roster = "" }, "roster name cannot be empty"},
		{"no options", func(d *Draw) { d.Total = 0 }, "invalid total"},
		{"index out of range", func(d *Draw) { d.Index = 1 }, "invalid index"},
		{"negative index", func(d *Draw) { d.Index = -1 }, "invalid index"},
		{"one team", func(d *Draw) { d.Teams = d.Teams[:1] }, "at least 2 teams"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draw{
				ID:     uuid.New().String(),
				Roster: "friday",
				Index:  0,
				Total:  1,
				Teams:  [][]string{{"Alice"}, {"Bob"}},
			}
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaKeys(t *testing.T) {
	assert.Equal(t, "teamify:ns:roster:friday", RosterKey("ns", "friday"))
	assert.Equal(t, "teamify:ns:rosters", RostersKey("ns"))
	assert.Equal(t, "teamify:ns:draw:abc", DrawKey("ns", "abc"))
	assert.Equal(t, "teamify:ns:history:friday", HistoryKey("ns", "friday"))
	assert.Equal(t, "teamify:ns:draw_events", DrawEventsChannel("ns"))
	assert.Equal(t, float64(1700000000123), HistoryScore(1700000000123))
}

func TestHashToDraw_Malformed(t *testing.T) {
	_, err := HashToDraw(map[string]string{"index": "x"})
	assert.ErrorContains(t, err, "invalid index field")

	_, err = HashToDraw(map[string]string{"index": "0", "total": "1", "teams": "{"})
	assert.ErrorContains(t, err, "failed to unmarshal teams")
}

func TestHashToRoster_Invalid(t *testing.T) {
	_, err := HashToRoster(map[string]string{"teams": "2", "version": "1.0", "name": "x", "people": `["Solo"]`})
	assert.ErrorContains(t, err, "stored roster is invalid")
}
