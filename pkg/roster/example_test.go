package roster_test

import (
	"errors"
	"fmt"

	"github.com/dyluth/teamify/pkg/roster"
)

func ExampleRoster_PossibleTeams() {
	r, _ := roster.New(roster.WithPeople("Alice", "Bob", "Charlie", "Dave"))
	_ = r.Pair("Alice", "Bob")
	_ = r.Avoid("Alice", "Charlie")
	_ = r.Commit()

	valid, _ := r.PossibleTeams(2)
	named, _ := r.NamedPartitions(valid)
	fmt.Println(named)
	// Output: [[[Alice Bob] [Charlie Dave]]]
}

func ExampleRoster_TeamOptions() {
	r, _ := roster.New(roster.WithPeople("Alice", "Bob", "Charlie", "Dave"))
	_ = r.Commit()

	options, _ := r.TeamOptions(2)
	for _, p := range options {
		fmt.Println(p)
	}
	// Output:
	// [[1 2] [3 4]]
	// [[1 3] [2 4]]
	// [[1 4] [2 3]]
}

func ExampleRoster_Person() {
	r, _ := roster.New(roster.WithPeople("Alice", "Bob", "Charlie"))
	_ = r.Commit()

	names, _ := r.Person(roster.Seq{roster.ID(1), roster.Seq{roster.ID(2), roster.ID(3)}})
	fmt.Println(names)
	// Output: [Alice [Bob Charlie]]
}

func ExampleBlockedError() {
	r, _ := roster.New(roster.WithPeople("Alice", "Bob"))
	_ = r.Commit()

	err := r.Add("Charlie")
	fmt.Println(errors.Is(err, roster.ErrBlocked))
	fmt.Println(err)
	// Output:
	// true
	// roster: Add is blocked while the roster is committed
}
