package roster

import (
	"cmp"
	"fmt"
	"slices"
)

// adjacency stores a symmetric relation as key -> set of related keys, so
// all partners of a key are found in O(1).
type adjacency[K cmp.Ordered] map[K]map[K]struct{}

// link records a~b in both directions. Reports whether the relation is new.
func (a adjacency[K]) link(x, y K) bool {
	if a.has(x, y) {
		return false
	}
	a.side(x)[y] = struct{}{}
	a.side(y)[x] = struct{}{}
	return true
}

// unlink removes a~b. Reports whether the relation existed.
func (a adjacency[K]) unlink(x, y K) bool {
	if !a.has(x, y) {
		return false
	}
	a.forget(x, y)
	a.forget(y, x)
	return true
}

func (a adjacency[K]) has(x, y K) bool {
	_, ok := a[x][y]
	return ok
}

// drop removes every relation involving x.
func (a adjacency[K]) drop(x K) {
	for y := range a[x] {
		a.forget(y, x)
	}
	delete(a, x)
}

func (a adjacency[K]) side(x K) map[K]struct{} {
	set, ok := a[x]
	if !ok {
		set = make(map[K]struct{})
		a[x] = set
	}
	return set
}

func (a adjacency[K]) forget(x, y K) {
	delete(a[x], y)
	if len(a[x]) == 0 {
		delete(a, x)
	}
}

// pairs lists every relation once, each as a sorted pair, in sorted order.
func (a adjacency[K]) pairs() [][2]K {
	var out [][2]K
	for x, partners := range a {
		for y := range partners {
			if x < y {
				out = append(out, [2]K{x, y})
			}
		}
	}
	slices.SortFunc(out, func(p, q [2]K) int {
		if c := cmp.Compare(p[0], q[0]); c != 0 {
			return c
		}
		return cmp.Compare(p[1], q[1])
	})
	return out
}

// Pair requires a and b to end up on the same team. Pairing an existing
// pair is a no-op.
func (r *Roster) Pair(a, b string) error {
	return r.relate("Pair", r.pairs, a, b)
}

// Separate removes the pair relation between a and b.
func (r *Roster) Separate(a, b string) error {
	return r.unrelate("Separate", r.pairs, a, b)
}

// Avoid requires a and b to end up on different teams. Avoiding an existing
// avoid is a no-op.
func (r *Roster) Avoid(a, b string) error {
	return r.relate("Avoid", r.avoids, a, b)
}

// Unavoid removes the avoid relation between a and b.
func (r *Roster) Unavoid(a, b string) error {
	return r.unrelate("Unavoid", r.avoids, a, b)
}

// Pairs returns every pair relation as name pairs, sorted.
func (r *Roster) Pairs() [][2]string {
	return r.pairs.pairs()
}

// Avoids returns every avoid relation as name pairs, sorted.
func (r *Roster) Avoids() [][2]string {
	return r.avoids.pairs()
}

func (r *Roster) relate(op string, rel adjacency[string], a, b string) error {
	if err := r.checkRelation(op, a, b); err != nil {
		return err
	}
	rel.link(a, b)
	return nil
}

func (r *Roster) unrelate(op string, rel adjacency[string], a, b string) error {
	if err := r.checkRelation(op, a, b); err != nil {
		return err
	}
	if !rel.unlink(a, b) && r.strict {
		return fmt.Errorf("%w: %s %q and %q", ErrUnknownRelation, op, a, b)
	}
	return nil
}

func (r *Roster) checkRelation(op, a, b string) error {
	if err := r.guard.Require(false, op); err != nil {
		return err
	}
	for _, name := range []string{a, b} {
		if !r.Has(name) {
			return fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfRelation, a)
	}
	return nil
}
