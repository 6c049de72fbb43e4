// Package store persists roster snapshots and recorded team draws in Redis.
//
// # Overview
//
// A roster file is the source of truth for a team split, but it is handy to
// keep a copy next to the history of draws made from it, so a group can look
// back at which teams were picked and when. The store keeps both.
//
// Rosters are stored as hashes keyed by roster name. Draws are immutable
// records identified by a UUID; each roster has a ZSET history of its draws
// scored by creation time in milliseconds.
//
// # Multi-Namespace Support
//
// All keys are namespaced so several groups can share one Redis server:
//
//	teamify:{namespace}:roster:{name}      hash  - roster snapshot
//	teamify:{namespace}:rosters            set   - known roster names
//	teamify:{namespace}:draw:{uuid}        hash  - a recorded draw
//	teamify:{namespace}:history:{name}     zset  - draw ids by created_at_ms
//
// # Usage Example
//
//	client, err := store.NewClient(&redis.Options{Addr: "localhost:6379"}, "default")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	draw := &store.Draw{
//		ID:     uuid.New().String(),
//		Roster: "friday-football",
//		Index:  3,
//		Total:  12,
//		Teams:  [][]string{{"Alice", "Bob"}, {"Charlie", "Dave"}},
//	}
//	if err := client.RecordDraw(ctx, draw); err != nil {
//		log.Fatal(err)
//	}
package store
