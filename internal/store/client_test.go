package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dyluth/teamify/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestClient creates a test client connected to a miniredis instance
func setupTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	err := mr.Start()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient(&redis.Options{Addr: mr.Addr()}, "test-ns")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func testRoster() *config.RosterConfig {
	return &config.RosterConfig{
		Version: "1.0",
		Name:    "friday",
		Teams:   2,
		People:  []string{"Alice", "Bob", "Charlie", "Dave"},
		Pairs:   []config.Relation{{"Alice", "Bob"}},
	}
}

func testDraw(createdAtMs int64) *Draw {
	return &Draw{
		ID:          uuid.New().String(),
		Roster:      "friday",
		Index:       0,
		Total:       1,
		Teams:       [][]string{{"Alice", "Bob"}, {"Charlie", "Dave"}},
		CreatedAtMs: createdAtMs,
	}
}

func TestNewClient(t *testing.T) {
	t.Run("creates client successfully", func(t *testing.T) {
		client, _ := setupTestClient(t)
		assert.Equal(t, "test-ns", client.namespace)
		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("rejects empty namespace", func(t *testing.T) {
		_, err := NewClient(&redis.Options{Addr: "localhost:6379"}, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "namespace cannot be empty")
	})

	t.Run("from URL", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewClientFromURL("redis://"+mr.Addr(), "ns")
		require.NoError(t, err)
		defer client.Close()
		assert.NoError(t, client.Ping(context.Background()))

		_, err = NewClientFromURL("http://nope", "ns")
		assert.Error(t, err)
	})
}

func TestRosters(t *testing.T) {
	client, mr := setupTestClient(t)
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		roster := testRoster()
		require.NoError(t, client.SaveRoster(ctx, roster))
		assert.True(t, mr.Exists(RosterKey("test-ns", "friday")))

		got, err := client.GetRoster(ctx, "friday")
		require.NoError(t, err)
		assert.Equal(t, roster, got)
	})

	t.Run("save replaces snapshot", func(t *testing.T) {
		roster := testRoster()
		roster.Pairs = nil
		roster.Avoids = []config.Relation{{"Bob", "Dave"}}
		require.NoError(t, client.SaveRoster(ctx, roster))

		got, err := client.GetRoster(ctx, "friday")
		require.NoError(t, err)
		assert.Empty(t, got.Pairs)
		assert.Equal(t, []config.Relation{{"Bob", "Dave"}}, got.Avoids)
	})

	t.Run("rejects invalid roster", func(t *testing.T) {
		roster := testRoster()
		roster.People = nil
		err := client.SaveRoster(ctx, roster)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid roster")
	})

	t.Run("missing roster", func(t *testing.T) {
		_, err := client.GetRoster(ctx, "nope")
		assert.True(t, IsNotFound(err))
	})

	t.Run("list", func(t *testing.T) {
		other := testRoster()
		other.Name = "alpha"
		require.NoError(t, client.SaveRoster(ctx, other))

		names, err := client.ListRosters(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "friday"}, names)
	})
}

func TestDraws(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx := context.Background()

	first := testDraw(1000)
	second := testDraw(2000)
	third := testDraw(3000)
	for _, d := range []*Draw{third, first, second} {
		require.NoError(t, client.RecordDraw(ctx, d))
	}

	t.Run("get", func(t *testing.T) {
		got, err := client.GetDraw(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		_, err = client.GetDraw(ctx, uuid.New().String())
		assert.True(t, IsNotFound(err))
	})

	t.Run("list oldest first", func(t *testing.T) {
		draws, err := client.ListDraws(ctx, "friday", 0, 0)
		require.NoError(t, err)
		require.Len(t, draws, 3)
		assert.Equal(t, []string{first.ID, second.ID, third.ID},
			[]string{draws[0].ID, draws[1].ID, draws[2].ID})
	})

	t.Run("list within range", func(t *testing.T) {
		draws, err := client.ListDraws(ctx, "friday", 1500, 2500)
		require.NoError(t, err)
		require.Len(t, draws, 1)
		assert.Equal(t, second.ID, draws[0].ID)
	})

	t.Run("unknown roster has no history", func(t *testing.T) {
		draws, err := client.ListDraws(ctx, "other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, draws)
	})

	t.Run("scan by prefix", func(t *testing.T) {
		ids, err := client.ScanDraws(ctx, first.ID[:8])
		require.NoError(t, err)
		assert.Contains(t, ids, first.ID)

		all, err := client.ScanDraws(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("glob characters in prefix match literally", func(t *testing.T) {
		for _, prefix := range []string{"******", "??????", "[0-9a-f]", `\*`} {
			ids, err := client.ScanDraws(ctx, prefix)
			require.NoError(t, err)
			assert.Empty(t, ids, "prefix %q", prefix)
		}
	})
}

func TestRecordDraw_DefaultsTimestamp(t *testing.T) {
	client, _ := setupTestClient(t)
	fixed := time.UnixMilli(1_700_000_000_000)
	client.now = func() time.Time { return fixed }

	d := testDraw(0)
	require.NoError(t, client.RecordDraw(context.Background(), d))
	assert.Equal(t, fixed.UnixMilli(), d.CreatedAtMs)
}

func TestRecordDraw_Invalid(t *testing.T) {
	client, _ := setupTestClient(t)

	d := testDraw(1)
	d.ID = "not-a-uuid"
	err := client.RecordDraw(context.Background(), d)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid draw")
}

func TestListDraws_SkipsDanglingHistory(t *testing.T) {
	client, mr := setupTestClient(t)
	ctx := context.Background()

	d := testDraw(1000)
	require.NoError(t, client.RecordDraw(ctx, d))
	mr.Del(DrawKey("test-ns", d.ID))

	draws, err := client.ListDraws(ctx, "friday", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, draws)
}
