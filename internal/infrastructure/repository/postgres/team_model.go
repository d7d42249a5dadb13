package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	ShieldURL sql.NullString `db:"shield_url"`
	Position  int            `db:"position"`
	JoinedAt  time.Time      `db:"joined_at"`
}

type tournamentTeamInsertModel struct {
	TournamentID string    `db:"tournament_public_id"`
	TeamID       string    `db:"team_public_id"`
	Position     int       `db:"position"`
	JoinedAt     time.Time `db:"joined_at"`
}
