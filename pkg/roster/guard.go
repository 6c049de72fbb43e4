package roster

// Guard permits an operation only when its owner's lifecycle flag matches the
// state the operation requires. One Guard serves every gated method of its
// owner: mutators require false, id and team operations require true.
type Guard struct {
	state func() bool
}

// NewGuard returns a Guard reading the owner's current flag through state.
func NewGuard(state func() bool) *Guard {
	return &Guard{state: state}
}

// Require returns a *BlockedError naming op unless the flag equals want.
func (g *Guard) Require(want bool, op string) error {
	if current := g.state(); current != want {
		return &BlockedError{Op: op, Committed: current}
	}
	return nil
}

// Guarded runs fn only if g permits op in state want, returning fn's result.
func Guarded[T any](g *Guard, want bool, op string, fn func() (T, error)) (T, error) {
	if err := g.Require(want, op); err != nil {
		var zero T
		return zero, err
	}
	return fn()
}
