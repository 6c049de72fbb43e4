// Package roster splits a pool of named people into balanced teams while
// honouring "must be together" (pair) and "must not be together" (avoid)
// relations.
//
// # Lifecycle
//
// A Roster has two phases separated by Commit:
//
//   - Uncommitted: Add, Remove, Pair, Separate, Avoid and Unavoid edit the
//     pool and its relations. Remove also drops every relation that mentions
//     the removed name.
//   - Committed: every person has a stable ID (insertion order, starting at
//     DefaultFirstID unless WithFirstID says otherwise). Person, Name, ID,
//     TeamOptions, IsTeamOk, AreTeamsOk and PossibleTeams become available.
//
// Calling an operation in the wrong phase returns a *BlockedError, which
// matches ErrBlocked. A second Commit fails with ErrAlreadyCommitted wrapping
// that same error. The check is done by a single Guard shared by every gated
// method, Commit included.
//
// # Enumeration
//
// TeamOptions supports two teams. The smallest id is fixed on the first team
// and the rest of that team is drawn from the other ids as lexicographic
// combinations, so mirrored splits are never produced and no deduplication is
// needed. For a pool of N people this yields C(N-1, ceil(N/2)-1) partitions.
// TeamOptionsSeq exposes the same enumeration as an iter.Seq.
//
// # Usage Example
//
//	r, _ := roster.New(roster.WithPeople("Alice", "Bob", "Charlie", "Dave"))
//	_ = r.Pair("Alice", "Bob")
//	_ = r.Avoid("Alice", "Charlie")
//	_ = r.Commit()
//
//	valid, _ := r.PossibleTeams(2)
//	named, _ := r.NamedPartitions(valid)
//	// named = [[[Alice Bob] [Charlie Dave]]]
package roster
