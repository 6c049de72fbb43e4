package roster

import "fmt"

// ID identifies a person after Commit.
type ID int

// Resolvable is an identifier or a nested list/tuple of identifiers. The set
// of implementations is closed: ID, Seq and Tuple.
type Resolvable interface {
	resolvable()
}

// Seq is a list of resolvable values. It resolves to a NameSeq.
type Seq []Resolvable

// Tuple is a fixed group of resolvable values. It resolves to a NameTuple.
type Tuple []Resolvable

func (ID) resolvable()    {}
func (Seq) resolvable()   {}
func (Tuple) resolvable() {}

// Resolved mirrors Resolvable with names in place of identifiers.
type Resolved interface {
	resolved()
}

// Name is a resolved ID.
type Name string

// NameSeq is a resolved Seq.
type NameSeq []Resolved

// NameTuple is a resolved Tuple.
type NameTuple []Resolved

func (Name) resolved()      {}
func (NameSeq) resolved()   {}
func (NameTuple) resolved() {}

// Person resolves x to names, keeping the exact container shape at every
// level: an ID becomes a Name, a Seq a NameSeq and a Tuple a NameTuple.
func (r *Roster) Person(x Resolvable) (Resolved, error) {
	return Guarded(r.guard, true, "Person", func() (Resolved, error) {
		return r.resolve(x)
	})
}

func (r *Roster) resolve(x Resolvable) (Resolved, error) {
	switch v := x.(type) {
	case ID:
		name, err := r.name(v)
		if err != nil {
			return nil, err
		}
		return Name(name), nil
	case Seq:
		out := make(NameSeq, len(v))
		for i, item := range v {
			res, err := r.resolve(item)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	case Tuple:
		out := make(NameTuple, len(v))
		for i, item := range v {
			res, err := r.resolve(item)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: cannot resolve %T", ErrUnknownID, x)
	}
}

// Team is a group of identifiers in ascending order.
type Team []ID

// Tuple converts t to a resolvable tuple.
func (t Team) Tuple() Tuple {
	out := make(Tuple, len(t))
	for i, id := range t {
		out[i] = id
	}
	return out
}

// Partition is one split of the whole pool into disjoint teams.
type Partition []Team

// Tuple converts p to a tuple of team tuples.
func (p Partition) Tuple() Tuple {
	out := make(Tuple, len(p))
	for i, team := range p {
		out[i] = team.Tuple()
	}
	return out
}

// NamedPartitions resolves each partition to its team member names, in the
// same order. Intended for formatting output.
func (r *Roster) NamedPartitions(partitions []Partition) ([][][]string, error) {
	return Guarded(r.guard, true, "NamedPartitions", func() ([][][]string, error) {
		out := make([][][]string, len(partitions))
		for i, p := range partitions {
			teams := make([][]string, len(p))
			for j, team := range p {
				names := make([]string, len(team))
				for k, id := range team {
					name, err := r.name(id)
					if err != nil {
						return nil, err
					}
					names[k] = name
				}
				teams[j] = names
			}
			out[i] = teams
		}
		return out, nil
	})
}
