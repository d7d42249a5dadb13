package postgres

import "time"

type standingTableModel struct {
	ID             int64     `db:"id"`
	TournamentID   string    `db:"tournament_public_id"`
	TeamID         string    `db:"team_public_id"`
	GroupNumber    int       `db:"group_number"`
	Position       int       `db:"position"`
	Played         int       `db:"played"`
	Won            int       `db:"won"`
	Drawn          int       `db:"drawn"`
	Lost           int       `db:"lost"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	Points         int       `db:"points"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type standingInsertModel struct {
	TournamentID   string    `db:"tournament_public_id"`
	TeamID         string    `db:"team_public_id"`
	GroupNumber    int       `db:"group_number"`
	Position       int       `db:"position"`
	Played         int       `db:"played"`
	Won            int       `db:"won"`
	Drawn          int       `db:"drawn"`
	Lost           int       `db:"lost"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	Points         int       `db:"points"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type appliedMatchInsertModel struct {
	MatchID      string    `db:"match_public_id"`
	TournamentID string    `db:"tournament_public_id"`
	AppliedAt    time.Time `db:"applied_at"`
}
