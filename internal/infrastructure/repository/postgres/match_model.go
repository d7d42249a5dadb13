package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	TournamentID       string         `db:"tournament_public_id"`
	PhaseID            string         `db:"phase_public_id"`
	RoundNumber        int            `db:"round_number"`
	GroupNumber        int            `db:"group_number"`
	MatchType          string         `db:"match_type"`
	Leg                int            `db:"leg"`
	BracketPosition    int            `db:"bracket_position"`
	HomeSlotKind       string         `db:"home_slot_kind"`
	HomeSlotRef        sql.NullString `db:"home_slot_ref"`
	HomeTeamID         sql.NullString `db:"home_team_public_id"`
	AwaySlotKind       string         `db:"away_slot_kind"`
	AwaySlotRef        sql.NullString `db:"away_slot_ref"`
	AwayTeamID         sql.NullString `db:"away_team_public_id"`
	Status             string         `db:"status"`
	HomeScore          int            `db:"home_score"`
	AwayScore          int            `db:"away_score"`
	StandingsAppliedAt sql.NullTime   `db:"standings_applied_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	PublicID           string     `db:"public_id"`
	TournamentID       string     `db:"tournament_public_id"`
	PhaseID            string     `db:"phase_public_id"`
	RoundNumber        int        `db:"round_number"`
	GroupNumber        int        `db:"group_number"`
	MatchType          string     `db:"match_type"`
	Leg                int        `db:"leg"`
	BracketPosition    int        `db:"bracket_position"`
	HomeSlotKind       string     `db:"home_slot_kind"`
	HomeSlotRef        *string    `db:"home_slot_ref"`
	HomeTeamID         *string    `db:"home_team_public_id"`
	AwaySlotKind       string     `db:"away_slot_kind"`
	AwaySlotRef        *string    `db:"away_slot_ref"`
	AwayTeamID         *string    `db:"away_team_public_id"`
	Status             string     `db:"status"`
	HomeScore          int        `db:"home_score"`
	AwayScore          int        `db:"away_score"`
	StandingsAppliedAt *time.Time `db:"standings_applied_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}
