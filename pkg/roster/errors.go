package roster

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Roster operations. Errors carrying a name or id
// wrap one of these with %w, so callers should match with errors.Is.
var (
	// ErrBlocked indicates an operation was called in the wrong lifecycle state.
	ErrBlocked = errors.New("roster: operation blocked")

	// ErrAlreadyCommitted indicates Commit was called on a committed roster.
	ErrAlreadyCommitted = errors.New("roster: already committed")

	// ErrEmptyName indicates an empty participant name.
	ErrEmptyName = errors.New("roster: name is empty")

	// ErrDuplicateName indicates the name is already in the pool.
	ErrDuplicateName = errors.New("roster: duplicate name")

	// ErrUnknownName indicates the name is not in the pool.
	ErrUnknownName = errors.New("roster: unknown name")

	// ErrUnknownID indicates an identifier outside the assigned range.
	ErrUnknownID = errors.New("roster: unknown id")

	// ErrSelfRelation indicates a pair or avoid between a person and themselves.
	ErrSelfRelation = errors.New("roster: relation with self")

	// ErrUnknownRelation indicates removal of a relation that does not exist
	// (strict mode only).
	ErrUnknownRelation = errors.New("roster: unknown relation")

	// ErrUnsupportedTeamCount indicates a team count other than two.
	ErrUnsupportedTeamCount = errors.New("roster: unsupported team count")

	// ErrTooFewPeople indicates the pool is smaller than the team count.
	ErrTooFewPeople = errors.New("roster: not enough people")
)

// BlockedError is returned when a guarded operation runs in the wrong
// lifecycle state. It matches ErrBlocked under errors.Is.
type BlockedError struct {
	Op        string // Name of the rejected operation
	Committed bool   // Lifecycle state at the time of the call
}

func (e *BlockedError) Error() string {
	state := "uncommitted"
	if e.Committed {
		state = "committed"
	}
	return fmt.Sprintf("roster: %s is blocked while the roster is %s", e.Op, state)
}

// Is reports whether target is ErrBlocked.
func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}
