package roster

import (
	"fmt"
	"iter"
)

// SupportedTeamCount is the only team count TeamOptions can enumerate.
const SupportedTeamCount = 2

// TeamOptions returns every balanced split of the committed pool into n
// teams. Only n == 2 is supported.
//
// The person with the smallest id is always placed on the first team, which
// receives ceil(N/2) people; the remaining members of that team are every
// (ceil(N/2)-1)-combination of the other ids in lexicographic order, and the
// second team is the complement. Each unordered split is therefore produced
// exactly once, C(N-1, ceil(N/2)-1) partitions in total, with both teams
// sorted ascending.
func (r *Roster) TeamOptions(n int) ([]Partition, error) {
	seq, err := r.options("TeamOptions", n)
	if err != nil {
		return nil, err
	}

	var out []Partition
	for p := range seq {
		out = append(out, p)
	}
	return out, nil
}

// TeamOptionsSeq is the lazy form of TeamOptions. The returned sequence is
// restartable: each iteration enumerates from the beginning.
func (r *Roster) TeamOptionsSeq(n int) (iter.Seq[Partition], error) {
	return r.options("TeamOptionsSeq", n)
}

// options builds the partition sequence, reporting guard failures as op.
func (r *Roster) options(op string, n int) (iter.Seq[Partition], error) {
	if err := r.guard.Require(true, op); err != nil {
		return nil, err
	}
	if n != SupportedTeamCount {
		return nil, fmt.Errorf("%w: %d (only %d is supported)", ErrUnsupportedTeamCount, n, SupportedTeamCount)
	}
	if len(r.names) < n {
		return nil, fmt.Errorf("%w: %d people for %d teams", ErrTooFewPeople, len(r.names), n)
	}

	ids := r.ids()
	size := len(ids)
	half := (size + 1) / 2
	first, rest := ids[0], ids[1:]

	return func(yield func(Partition) bool) {
		inA := make([]bool, len(rest))
		combinations(len(rest), half-1, func(picked []int) bool {
			clear(inA)
			a := make(Team, 0, half)
			a = append(a, first)
			for _, i := range picked {
				a = append(a, rest[i])
				inA[i] = true
			}
			b := make(Team, 0, size-half)
			for i, id := range rest {
				if !inA[i] {
					b = append(b, id)
				}
			}
			return yield(Partition{a, b})
		})
	}, nil
}

// combinations calls visit with every k-subset of [0, n) as ascending
// indices, in lexicographic order, until visit returns false. The slice
// passed to visit is reused between calls.
func combinations(n, k int, visit func([]int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		// Rightmost index that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
