package draw

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dyluth/teamify/internal/store"
	"github.com/google/uuid"
)

// NewRand returns a deterministic source for seed != 0 and a time-seeded one
// otherwise.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Pick chooses one option uniformly at random and returns its index.
func Pick[T any](options []T, rng *rand.Rand) (int, T, error) {
	var zero T
	if len(options) == 0 {
		return -1, zero, fmt.Errorf("no options to pick from")
	}
	i := rng.IntN(len(options))
	return i, options[i], nil
}

// New picks one of the named options and wraps it as a Draw ready to be
// recorded. options[i][j] holds the member names of team j in option i.
func New(rosterName string, options [][][]string, seed int64) (*store.Draw, error) {
	index, teams, err := Pick(options, NewRand(seed))
	if err != nil {
		return nil, err
	}

	return &store.Draw{
		ID:          uuid.New().String(),
		Roster:      rosterName,
		Index:       index,
		Total:       len(options),
		Seed:        seed,
		Teams:       teams,
		CreatedAtMs: time.Now().UnixMilli(),
	}, nil
}
