package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dyluth/teamify/internal/store"
	"github.com/stretchr/testify/require"
)

// Environment is an isolated test setup: a temp directory holding a roster
// file and an in-memory Redis reachable through RedisURL.
type Environment struct {
	T          *testing.T
	TmpDir     string
	RosterPath string
	Redis      *miniredis.Miniredis
	RedisURL   string
	Store      *store.Client
	Ctx        context.Context
}

// Namespace is the store namespace the CLI uses by default.
const Namespace = "default"

// SetupEnvironment writes rosterYML to a fresh temp directory and starts a
// miniredis server. Everything is torn down when the test ends.
func SetupEnvironment(t *testing.T, rosterYML string) *Environment {
	t.Helper()

	tmpDir := t.TempDir()
	rosterPath := filepath.Join(tmpDir, "roster.yml")
	require.NoError(t, os.WriteFile(rosterPath, []byte(rosterYML), 0644), "Failed to write roster.yml")

	mr := miniredis.RunT(t)
	redisURL := "redis://" + mr.Addr() + "/0"

	client, err := store.NewClientFromURL(redisURL, Namespace)
	require.NoError(t, err, "Failed to create store client")
	t.Cleanup(func() { client.Close() })

	return &Environment{
		T:          t,
		TmpDir:     tmpDir,
		RosterPath: rosterPath,
		Redis:      mr,
		RedisURL:   redisURL,
		Store:      client,
		Ctx:        context.Background(),
	}
}

// WaitForDraws polls the roster's history until it holds at least n draws.
func (env *Environment) WaitForDraws(roster string, n int, timeout time.Duration) []*store.Draw {
	env.T.Helper()

	var draws []*store.Draw
	require.Eventually(env.T, func() bool {
		var err error
		draws, err = env.Store.ListDraws(env.Ctx, roster, 0, 0)
		return err == nil && len(draws) >= n
	}, timeout, 50*time.Millisecond, "Timed out waiting for %d draws of '%s'", n, roster)

	return draws
}
