package roster

import (
	"fmt"
	"slices"
)

// DefaultFirstID is the identifier given to the first person at commit time.
const DefaultFirstID = 1

// Roster is a pool of uniquely named people plus the pair and avoid
// relations between them. It starts uncommitted, accepting membership and
// relation edits, and becomes read-only once Commit assigns identifiers.
//
// A Roster is not safe for concurrent mutation.
type Roster struct {
	committed bool
	guard     *Guard
	firstID   int
	strict    bool

	names []string       // pool in insertion order
	index map[string]int // name -> position in names

	pairs  adjacency[string]
	avoids adjacency[string]

	// Populated by Commit.
	pairIDs  adjacency[ID]
	avoidIDs adjacency[ID]
}

// Option configures a Roster at construction time.
type Option func(*Roster)

// WithFirstID sets the identifier assigned to the first person at commit.
func WithFirstID(first int) Option {
	return func(r *Roster) {
		r.firstID = first
	}
}

// WithStrictRelations makes Separate and Unavoid fail with ErrUnknownRelation
// when the relation does not exist. By default both are no-ops in that case.
func WithStrictRelations() Option {
	return func(r *Roster) {
		r.strict = true
	}
}

// WithPeople adds the given names in order. Invalid or duplicate names make
// New return an error.
func WithPeople(names ...string) Option {
	return func(r *Roster) {
		r.names = append(r.names, names...)
	}
}

// New creates an empty, uncommitted Roster.
func New(opts ...Option) (*Roster, error) {
	r := &Roster{
		firstID: DefaultFirstID,
		index:   make(map[string]int),
		pairs:   make(adjacency[string]),
		avoids:  make(adjacency[string]),
	}
	r.guard = NewGuard(r.Committed)

	for _, opt := range opts {
		opt(r)
	}

	if r.firstID < 0 {
		return nil, fmt.Errorf("roster: first id must be >= 0, got %d", r.firstID)
	}

	// Names supplied through WithPeople go through the same checks as Add.
	initial := r.names
	r.names = nil
	for _, name := range initial {
		if err := r.Add(name); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Committed reports whether Commit has been called.
func (r *Roster) Committed() bool {
	return r.committed
}

// Len returns the number of people in the pool.
func (r *Roster) Len() int {
	return len(r.names)
}

// Names returns the pool in insertion order.
func (r *Roster) Names() []string {
	return slices.Clone(r.names)
}

// Has reports whether name is in the pool.
func (r *Roster) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Add appends name to the pool.
func (r *Roster) Add(name string) error {
	if err := r.guard.Require(false, "Add"); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	if r.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	return nil
}

// Remove deletes name from the pool together with every pair and avoid
// relation that references it.
func (r *Roster) Remove(name string) error {
	if err := r.guard.Require(false, "Remove"); err != nil {
		return err
	}
	pos, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	r.names = slices.Delete(r.names, pos, pos+1)
	delete(r.index, name)
	for i := pos; i < len(r.names); i++ {
		r.index[r.names[i]] = i
	}

	r.pairs.drop(name)
	r.avoids.drop(name)
	return nil
}

// Commit freezes the pool and relations and assigns each person an
// identifier in insertion order, starting at the roster's first id.
// A second call fails with an error matching both ErrAlreadyCommitted and
// ErrBlocked.
func (r *Roster) Commit() error {
	if err := r.guard.Require(false, "Commit"); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyCommitted, err)
	}

	r.pairIDs = r.indexRelations(r.pairs)
	r.avoidIDs = r.indexRelations(r.avoids)
	r.committed = true
	return nil
}

// indexRelations translates a name-keyed adjacency into an id-keyed one.
// Only valid while building the committed state: positions are final.
func (r *Roster) indexRelations(byName adjacency[string]) adjacency[ID] {
	byID := make(adjacency[ID], len(byName))
	for a, partners := range byName {
		for b := range partners {
			byID.link(r.idAt(r.index[a]), r.idAt(r.index[b]))
		}
	}
	return byID
}

func (r *Roster) idAt(pos int) ID {
	return ID(r.firstID + pos)
}

// IDs returns every assigned identifier in ascending order.
func (r *Roster) IDs() ([]ID, error) {
	return Guarded(r.guard, true, "IDs", func() ([]ID, error) {
		return r.ids(), nil
	})
}

func (r *Roster) ids() []ID {
	ids := make([]ID, len(r.names))
	for i := range r.names {
		ids[i] = r.idAt(i)
	}
	return ids
}

// ID returns the identifier assigned to name.
func (r *Roster) ID(name string) (ID, error) {
	return Guarded(r.guard, true, "ID", func() (ID, error) {
		pos, ok := r.index[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		return r.idAt(pos), nil
	})
}

// Name returns the name assigned to id.
func (r *Roster) Name(id ID) (string, error) {
	return Guarded(r.guard, true, "Name", func() (string, error) {
		return r.name(id)
	})
}

func (r *Roster) name(id ID) (string, error) {
	if !r.known(id) {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return r.names[int(id)-r.firstID], nil
}

func (r *Roster) known(id ID) bool {
	pos := int(id) - r.firstID
	return pos >= 0 && pos < len(r.names)
}
