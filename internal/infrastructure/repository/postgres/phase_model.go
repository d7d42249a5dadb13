package postgres

import (
	"database/sql"
	"time"
)

type phaseTableModel struct {
	ID                  int64        `db:"id"`
	PublicID            string       `db:"public_id"`
	TournamentID        string       `db:"tournament_public_id"`
	PhaseNumber         int          `db:"phase_number"`
	Name                string       `db:"name"`
	PhaseType           string       `db:"phase_type"`
	Status              string       `db:"status"`
	HomeAway            bool         `db:"home_away"`
	TeamsAdvance        int          `db:"teams_advance"`
	GroupsCount         int          `db:"groups_count"`
	TeamsPerGroup       int          `db:"teams_per_group"`
	FixturesGeneratedAt sql.NullTime `db:"fixtures_generated_at"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
	DeletedAt           *time.Time   `db:"deleted_at"`
}

type phaseInsertModel struct {
	PublicID            string     `db:"public_id"`
	TournamentID        string     `db:"tournament_public_id"`
	PhaseNumber         int        `db:"phase_number"`
	Name                string     `db:"name"`
	PhaseType           string     `db:"phase_type"`
	Status              string     `db:"status"`
	HomeAway            bool       `db:"home_away"`
	TeamsAdvance        int        `db:"teams_advance"`
	GroupsCount         int        `db:"groups_count"`
	TeamsPerGroup       int        `db:"teams_per_group"`
	FixturesGeneratedAt *time.Time `db:"fixtures_generated_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}
