package store

import "fmt"

// Redis key pattern helpers
//
// Key pattern: teamify:{namespace}:{entity}:{id}

// RosterKey returns the Redis key for a roster snapshot.
// Pattern: teamify:{namespace}:roster:{name}
func RosterKey(namespace, name string) string {
	return fmt.Sprintf("teamify:%s:roster:%s", namespace, name)
}

// RostersKey returns the Redis key for the set of stored roster names.
// Pattern: teamify:{namespace}:rosters
func RostersKey(namespace string) string {
	return fmt.Sprintf("teamify:%s:rosters", namespace)
}

// DrawKey returns the Redis key for a recorded draw.
// Pattern: teamify:{namespace}:draw:{draw_id}
func DrawKey(namespace, drawID string) string {
	return fmt.Sprintf("teamify:%s:draw:%s", namespace, drawID)
}

// HistoryKey returns the Redis key for a roster's draw history ZSET.
// Pattern: teamify:{namespace}:history:{name}
func HistoryKey(namespace, name string) string {
	return fmt.Sprintf("teamify:%s:history:%s", namespace, name)
}

// DrawEventsChannel returns the Pub/Sub channel name for draw events.
// Pattern: teamify:{namespace}:draw_events
func DrawEventsChannel(namespace string) string {
	return fmt.Sprintf("teamify:%s:draw_events", namespace)
}

// HistoryScore converts a draw's creation time to its score in the history
// ZSET, so range queries by time map to ZRANGEBYSCORE.
func HistoryScore(createdAtMs int64) float64 {
	return float64(createdAtMs)
}
