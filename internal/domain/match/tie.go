package match

// TieWinner decides a knockout tie from its legs. With one leg the higher score wins; with two
// legs goals are aggregated per team. It reports false while any leg is unfinished or the
// aggregate is level.
func TieWinner(legs []Match) (string, bool) {
	if len(legs) == 0 {
		return "", false
	}
	for _, leg := range legs {
		if !leg.IsFinished() || !leg.TeamsResolved() {
			return "", false
		}
	}
	if len(legs) == 1 {
		return legs[0].WinnerTeamID()
	}

	first, second := legs[0].Home.TeamID, legs[0].Away.TeamID
	goals := make(map[string]int, 2)
	for _, leg := range legs {
		goals[leg.Home.TeamID] += leg.HomeScore
		goals[leg.Away.TeamID] += leg.AwayScore
	}

	switch {
	case goals[first] > goals[second]:
		return first, true
	case goals[second] > goals[first]:
		return second, true
	default:
		return "", false
	}
}
