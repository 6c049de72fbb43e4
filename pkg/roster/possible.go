package roster

// PossibleTeams returns the partitions from TeamOptions that satisfy every
// pair and avoid relation, in enumeration order. The result is empty, not
// nil, when no partition is valid.
func (r *Roster) PossibleTeams(n int) ([]Partition, error) {
	seq, err := r.options("PossibleTeams", n)
	if err != nil {
		return nil, err
	}

	out := []Partition{}
	for p := range seq {
		if r.partitionOK(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Stats summarises how many partitions exist for n teams and how many of
// them survive validation.
type Stats struct {
	People  int
	Pairs   int
	Avoids  int
	Options int
	Valid   int
}

// Stats enumerates the partitions for n teams and counts the valid ones.
func (r *Roster) Stats(n int) (Stats, error) {
	seq, err := r.options("Stats", n)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		People: len(r.names),
		Pairs:  len(r.pairs.pairs()),
		Avoids: len(r.avoids.pairs()),
	}
	for p := range seq {
		s.Options++
		if r.partitionOK(p) {
			s.Valid++
		}
	}
	return s, nil
}
