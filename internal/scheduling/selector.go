package scheduling

import (
	"errors"
	"sort"
)

// ErrNoTeamAvailable is returned when no single team has enough free crew members
var ErrNoTeamAvailable = errors.New("no team has enough free crew members")

// ErrInvalidRequiredCount is returned when fewer than one crew member is requested
var ErrInvalidRequiredCount = errors.New("required crew count must be at least 1")

// TeamRoster is a team and its crew members in team-list order
type TeamRoster struct {
	TeamID        uint
	CrewMemberIDs []uint
}

// Selection is the outcome of SelectTeam
type Selection struct {
	TeamID        uint
	CrewMemberIDs []uint
}

// SelectTeam walks the teams in ascending ID order and returns the first
// `required` free crew members of the first team that has enough of them.
// Members of different teams are never combined. Selection is greedy
// first-fit with no balancing, so the result is fully determined by the
// roster order and the busy set.
func SelectTeam(teams []TeamRoster, busy map[uint]bool, required int) (Selection, error) {
	if required < 1 {
		return Selection{}, ErrInvalidRequiredCount
	}

	ordered := make([]TeamRoster, len(teams))
	copy(ordered, teams)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].TeamID < ordered[j].TeamID })

	for _, team := range ordered {
		free := make([]uint, 0, len(team.CrewMemberIDs))
		for _, id := range team.CrewMemberIDs {
			if !busy[id] {
				free = append(free, id)
			}
		}
		if len(free) >= required {
			return Selection{TeamID: team.TeamID, CrewMemberIDs: free[:required]}, nil
		}
	}

	return Selection{}, ErrNoTeamAvailable
}
