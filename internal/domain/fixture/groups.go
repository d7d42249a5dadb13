package fixture

import crerr "github.com/cockroachdb/errors"

// Group is one partition of a groups phase with its schedule.
// Every pair meets in round 1; return legs are in round 2.
type Group struct {
	Number  int
	TeamIDs []string
	Rounds  []Round
}

// GenerateGroups partitions teamIDs into contiguous chunks of teamsPerGroup and schedules
// every pair inside each chunk. The last chunk may be short.
func GenerateGroups(teamIDs []string, groupsCount, teamsPerGroup int, homeAway bool) ([]Group, error) {
	switch {
	case groupsCount < 1:
		return nil, crerr.Wrapf(ErrConfiguration, "groups count must be >= 1, got %d", groupsCount)
	case teamsPerGroup < 2:
		return nil, crerr.Wrapf(ErrConfiguration, "teams per group must be >= 2, got %d", teamsPerGroup)
	case len(teamIDs) < groupsCount*2:
		return nil, crerr.Wrapf(ErrConfiguration, "%d teams cannot fill %d groups", len(teamIDs), groupsCount)
	}

	groups := make([]Group, 0, groupsCount)
	for start := 0; start < len(teamIDs); start += teamsPerGroup {
		end := min(start+teamsPerGroup, len(teamIDs))
		members := make([]string, end-start)
		copy(members, teamIDs[start:end])

		first := Round{Number: 1}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				first.Pairings = append(first.Pairings, Pairing{Home: members[i], Away: members[j]})
			}
		}

		var rounds []Round
		if len(first.Pairings) > 0 {
			rounds = append(rounds, first)
		}
		if homeAway && len(first.Pairings) > 0 {
			rounds = append(rounds, Round{Number: 2, Pairings: mirror(first.Pairings)})
		}

		groups = append(groups, Group{
			Number:  len(groups) + 1,
			TeamIDs: members,
			Rounds:  rounds,
		})
	}

	return groups, nil
}
