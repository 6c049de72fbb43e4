package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/teamify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckExisting(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte("version: '1.0'"), 0644))
	err := CheckExisting(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found existing: roster.yml")
	assert.Contains(t, err.Error(), "teamify init --force")
}
