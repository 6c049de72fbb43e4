package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dyluth/teamify/internal/config"
	"github.com/redis/go-redis/v9"
)

// Client provides namespace-scoped Redis operations for rosters and draws.
// The client is safe for concurrent use.
type Client struct {
	rdb       *redis.Client
	namespace string
	now       func() time.Time
}

// NewClient creates a new store client for the specified namespace.
//
// Parameters:
//   - redisOpts: Redis connection options (address, password, DB, etc.)
//   - namespace: key prefix separating independent groups (must not be empty)
//
// Returns an error if namespace is empty.
func NewClient(redisOpts *redis.Options, namespace string) (*Client, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	return &Client{
		rdb:       redis.NewClient(redisOpts),
		namespace: namespace,
		now:       time.Now,
	}, nil
}

// NewClientFromURL parses a redis:// URL and creates a client for namespace.
func NewClientFromURL(redisURL, namespace string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	return NewClient(opts, namespace)
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// SaveRoster writes a roster snapshot, replacing any previous snapshot with
// the same name. The configuration is validated first.
func (c *Client) SaveRoster(ctx context.Context, roster *config.RosterConfig) error {
	if err := roster.Validate(); err != nil {
		return fmt.Errorf("invalid roster: %w", err)
	}

	hash, err := RosterToHash(roster, c.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to serialize roster: %w", err)
	}

	key := RosterKey(c.namespace, roster.Name)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, hash)
		pipe.SAdd(ctx, RostersKey(c.namespace), roster.Name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write roster to Redis: %w", err)
	}

	return nil
}

// GetRoster retrieves a roster snapshot by name.
// Returns redis.Nil if it does not exist (check with IsNotFound).
func (c *Client) GetRoster(ctx context.Context, name string) (*config.RosterConfig, error) {
	hashData, err := c.rdb.HGetAll(ctx, RosterKey(c.namespace, name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	roster, err := HashToRoster(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize roster: %w", err)
	}

	return roster, nil
}

// ListRosters returns the names of all stored rosters, sorted.
func (c *Client) ListRosters(ctx context.Context) ([]string, error) {
	names, err := c.rdb.SMembers(ctx, RostersKey(c.namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// RecordDraw stores a draw, appends it to its roster's history and publishes
// it to DrawEventsChannel.
// CreatedAtMs is set to the current time when zero.
// Recording the same draw twice is safe.
func (c *Client) RecordDraw(ctx context.Context, d *Draw) error {
	if d.CreatedAtMs == 0 {
		d.CreatedAtMs = c.now().UnixMilli()
	}

	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid draw: %w", err)
	}

	hash, err := DrawToHash(d)
	if err != nil {
		return fmt.Errorf("failed to serialize draw: %w", err)
	}

	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, DrawKey(c.namespace, d.ID), hash)
		pipe.ZAdd(ctx, HistoryKey(c.namespace, d.Roster), redis.Z{
			Score:  HistoryScore(d.CreatedAtMs),
			Member: d.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write draw to Redis: %w", err)
	}

	drawJSON, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draw for event: %w", err)
	}

	if err := c.rdb.Publish(ctx, DrawEventsChannel(c.namespace), drawJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish draw event: %w", err)
	}

	return nil
}

// GetDraw retrieves a draw by its full ID.
// Returns redis.Nil if it does not exist (check with IsNotFound).
func (c *Client) GetDraw(ctx context.Context, drawID string) (*Draw, error) {
	hashData, err := c.rdb.HGetAll(ctx, DrawKey(c.namespace, drawID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read draw from Redis: %w", err)
	}

	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	draw, err := HashToDraw(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize draw: %w", err)
	}

	return draw, nil
}

// ListDraws returns a roster's draws, oldest first, created within
// [sinceMs, untilMs]. Zero bounds are open.
func (c *Client) ListDraws(ctx context.Context, roster string, sinceMs, untilMs int64) ([]*Draw, error) {
	rng := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if sinceMs > 0 {
		rng.Min = strconv.FormatInt(sinceMs, 10)
	}
	if untilMs > 0 {
		rng.Max = strconv.FormatInt(untilMs, 10)
	}

	ids, err := c.rdb.ZRangeByScore(ctx, HistoryKey(c.namespace, roster), rng).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read draw history: %w", err)
	}

	draws := make([]*Draw, 0, len(ids))
	for _, id := range ids {
		draw, err := c.GetDraw(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				// History entry outlived its draw
				continue
			}
			return nil, err
		}
		draws = append(draws, draw)
	}

	return draws, nil
}

// ScanDraws returns the IDs of all draws whose ID starts with prefix.
// prefix is matched literally: glob characters in it match only themselves.
// Uses SCAN so large histories do not block the server.
func (c *Client) ScanDraws(ctx context.Context, prefix string) ([]string, error) {
	keyPrefix := DrawKey(c.namespace, "")
	iter := c.rdb.Scan(ctx, 0, escapeGlob(keyPrefix+prefix)+"*", 0).Iterator()

	var ids []string
	for iter.Next(ctx) {
		id := strings.TrimPrefix(iter.Val(), keyPrefix)
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan draws: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}

// IsNotFound reports whether err means the requested key does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}

// globEscaper backslash-escapes the characters special to SCAN MATCH.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
