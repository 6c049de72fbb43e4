package roster

import "fmt"

// IsTeamOk reports whether team satisfies every relation: each member's pair
// partners are in the team and none of its avoid partners are. Cost is
// proportional to the members' relation degrees.
func (r *Roster) IsTeamOk(team Team) (bool, error) {
	return Guarded(r.guard, true, "IsTeamOk", func() (bool, error) {
		members, err := r.members(team)
		if err != nil {
			return false, err
		}
		return r.teamOK(team, members), nil
	})
}

// AreTeamsOk reports whether every team of p satisfies IsTeamOk. It stops at
// the first team that does not.
func (r *Roster) AreTeamsOk(p Partition) (bool, error) {
	return Guarded(r.guard, true, "AreTeamsOk", func() (bool, error) {
		for _, team := range p {
			members, err := r.members(team)
			if err != nil {
				return false, err
			}
			if !r.teamOK(team, members) {
				return false, nil
			}
		}
		return true, nil
	})
}

func (r *Roster) members(team Team) (map[ID]struct{}, error) {
	set := make(map[ID]struct{}, len(team))
	for _, id := range team {
		if !r.known(id) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *Roster) teamOK(team Team, members map[ID]struct{}) bool {
	for _, id := range team {
		for partner := range r.pairIDs[id] {
			if _, in := members[partner]; !in {
				return false
			}
		}
		for rival := range r.avoidIDs[id] {
			if _, in := members[rival]; in {
				return false
			}
		}
	}
	return true
}

func (r *Roster) partitionOK(p Partition) bool {
	for _, team := range p {
		members := make(map[ID]struct{}, len(team))
		for _, id := range team {
			members[id] = struct{}{}
		}
		if !r.teamOK(team, members) {
			return false
		}
	}
	return true
}
