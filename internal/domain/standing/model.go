package standing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

var ErrMatchNotApplicable = errors.New("match cannot be applied to standings")

// Key identifies one standings row. GroupNumber 0 is the tournament wide table.
type Key struct {
	TournamentID string
	TeamID       string
	GroupNumber  int
}

// Standing is a table row derived from finished matches.
type Standing struct {
	TournamentID   string
	TeamID         string
	GroupNumber    int
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	UpdatedAt      time.Time
}

func New(key Key) Standing {
	return Standing{TournamentID: key.TournamentID, TeamID: key.TeamID, GroupNumber: key.GroupNumber}
}

func (s Standing) Key() Key {
	return Key{TournamentID: s.TournamentID, TeamID: s.TeamID, GroupNumber: s.GroupNumber}
}

// Result is one team's side of a finished match.
type Result struct {
	Key          Key
	GoalsFor     int
	GoalsAgainst int
}

// ResultsFromMatch splits a finished match into the home and away results.
func ResultsFromMatch(m match.Match) ([]Result, error) {
	if !m.IsFinished() {
		return nil, fmt.Errorf("%w: match %s is %s", ErrMatchNotApplicable, m.ID, m.Status)
	}
	if !m.TeamsResolved() {
		return nil, fmt.Errorf("%w: match %s has unresolved teams", ErrMatchNotApplicable, m.ID)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return nil, fmt.Errorf("%w: match %s has negative score", ErrMatchNotApplicable, m.ID)
	}

	return []Result{
		{
			Key:          Key{TournamentID: m.TournamentID, TeamID: m.Home.TeamID, GroupNumber: m.GroupNumber},
			GoalsFor:     m.HomeScore,
			GoalsAgainst: m.AwayScore,
		},
		{
			Key:          Key{TournamentID: m.TournamentID, TeamID: m.Away.TeamID, GroupNumber: m.GroupNumber},
			GoalsFor:     m.AwayScore,
			GoalsAgainst: m.HomeScore,
		},
	}, nil
}

// Apply adds one result to the row.
func (s *Standing) Apply(r Result) {
	s.Played++
	s.GoalsFor += r.GoalsFor
	s.GoalsAgainst += r.GoalsAgainst
	switch {
	case r.GoalsFor > r.GoalsAgainst:
		s.Won++
		s.Points += PointsWin
	case r.GoalsFor == r.GoalsAgainst:
		s.Drawn++
		s.Points += PointsDraw
	default:
		s.Lost++
		s.Points += PointsLoss
	}
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}

// Build folds finished matches into fresh rows. Match order does not affect the result.
func Build(matches []match.Match) ([]Standing, error) {
	rows := make(map[Key]*Standing)
	for _, m := range matches {
		results, err := ResultsFromMatch(m)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			row, ok := rows[r.Key]
			if !ok {
				fresh := New(r.Key)
				row = &fresh
				rows[r.Key] = row
			}
			row.Apply(r)
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return Rank(out), nil
}

// Less orders rows by points, goal difference and goals scored, falling back to team id.
func Less(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.TeamID < b.TeamID
}

// Rank sorts rows by group then table order and assigns 1-based positions per group.
func Rank(rows []Standing) []Standing {
	out := make([]Standing, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GroupNumber != out[j].GroupNumber {
			return out[i].GroupNumber < out[j].GroupNumber
		}
		return Less(out[i], out[j])
	})

	position := 0
	for i := range out {
		if i == 0 || out[i].GroupNumber != out[i-1].GroupNumber {
			position = 0
		}
		position++
		out[i].Position = position
	}
	return out
}

// FilterGroup keeps the rows of one group.
func FilterGroup(rows []Standing, groupNumber int) []Standing {
	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		if row.GroupNumber == groupNumber {
			out = append(out, row)
		}
	}
	return out
}
