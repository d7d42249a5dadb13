package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

const (
	standingEnsureSuffix = "ON CONFLICT (tournament_public_id, team_public_id, group_number) DO NOTHING"

	// Serializes applies and rebuilds of one tournament until the holding transaction ends.
	tournamentStandingsLock = "SELECT pg_advisory_xact_lock(hashtext($1))"
)

type StandingRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db, now: time.Now}
}

func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("group_number", "points DESC", "goal_difference DESC", "goals_for DESC", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings tournament=%s: %w", tournamentID, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}
	return standing.Rank(out), nil
}

// ApplyMatch claims the processed marker first so a concurrent or repeated call for the same match
// inserts nothing and leaves the rows untouched.
func (r *StandingRepository) ApplyMatch(ctx context.Context, matchID string, results []standing.Result) (bool, error) {
	if len(results) == 0 {
		return false, fmt.Errorf("apply match id=%s: results are required", matchID)
	}
	tournamentID := results[0].Key.TournamentID

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx apply match standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockTournamentStandings(ctx, tx, tournamentID); err != nil {
		return false, err
	}

	now := r.now().UTC()
	markerQuery, markerArgs, err := qb.InsertModel("standing_applied_matches", appliedMatchInsertModel{
		MatchID:      matchID,
		TournamentID: tournamentID,
		AppliedAt:    now,
	}, "ON CONFLICT (match_public_id) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert applied match query: %w", err)
	}
	res, err := tx.ExecContext(ctx, markerQuery, markerArgs...)
	if err != nil {
		return false, fmt.Errorf("insert applied match id=%s: %w", matchID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read applied match rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	for _, result := range results {
		row, err := lockStanding(ctx, tx, result.Key, now)
		if err != nil {
			return false, err
		}
		row.Apply(result)
		row.UpdatedAt = now

		query, args, err := qb.Update("standings").
			Set("played", row.Played).
			Set("won", row.Won).
			Set("drawn", row.Drawn).
			Set("lost", row.Lost).
			Set("goals_for", row.GoalsFor).
			Set("goals_against", row.GoalsAgainst).
			Set("goal_difference", row.GoalDifference).
			Set("points", row.Points).
			Set("updated_at", row.UpdatedAt).
			Where(
				qb.Eq("tournament_public_id", result.Key.TournamentID),
				qb.Eq("team_public_id", result.Key.TeamID),
				qb.Eq("group_number", result.Key.GroupNumber),
			).
			ToSQL()
		if err != nil {
			return false, fmt.Errorf("build update standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("update standing team=%s group=%d: %w", result.Key.TeamID, result.Key.GroupNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit apply match standings tx: %w", err)
	}
	return true, nil
}

// ReplaceByTournament holds the tournament lock while build reads the finished matches, so a match
// applied concurrently either lands in build's output or waits and applies on top of the new rows.
func (r *StandingRepository) ReplaceByTournament(ctx context.Context, tournamentID string, build standing.RebuildFunc) ([]standing.Standing, error) {
	if build == nil {
		return nil, fmt.Errorf("replace standings tournament=%s: build is required", tournamentID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockTournamentStandings(ctx, tx, tournamentID); err != nil {
		return nil, err
	}

	rows, appliedMatchIDs, err := build(ctx)
	if err != nil {
		return nil, fmt.Errorf("rebuild standings tournament=%s: %w", tournamentID, err)
	}

	if err := deleteStandingsByTournament(ctx, tx, tournamentID); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	out := make([]standing.Standing, 0, len(rows))
	if len(rows) > 0 {
		models := make([]standingInsertModel, 0, len(rows))
		for _, row := range rows {
			row.TournamentID = tournamentID
			row.UpdatedAt = now
			models = append(models, standingToInsertModel(row))
			out = append(out, row)
		}
		query, args, err := qb.InsertModels("standings", models, "")
		if err != nil {
			return nil, fmt.Errorf("build insert standings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("insert standings tournament=%s: %w", tournamentID, err)
		}
	}

	if len(appliedMatchIDs) > 0 {
		markers := make([]appliedMatchInsertModel, 0, len(appliedMatchIDs))
		for _, matchID := range appliedMatchIDs {
			markers = append(markers, appliedMatchInsertModel{MatchID: matchID, TournamentID: tournamentID, AppliedAt: now})
		}
		query, args, err := qb.InsertModels("standing_applied_matches", markers, `ON CONFLICT (match_public_id)
DO UPDATE SET tournament_public_id = EXCLUDED.tournament_public_id, applied_at = EXCLUDED.applied_at`)
		if err != nil {
			return nil, fmt.Errorf("build insert applied matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("insert applied matches tournament=%s: %w", tournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace standings tx: %w", err)
	}
	return out, nil
}

func (r *StandingRepository) DeleteByTournament(ctx context.Context, tournamentID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockTournamentStandings(ctx, tx, tournamentID); err != nil {
		return err
	}
	if err := deleteStandingsByTournament(ctx, tx, tournamentID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete standings tx: %w", err)
	}
	return nil
}

func lockTournamentStandings(ctx context.Context, tx *sqlx.Tx, tournamentID string) error {
	if _, err := tx.ExecContext(ctx, tournamentStandingsLock, tournamentID); err != nil {
		return fmt.Errorf("lock standings tournament=%s: %w", tournamentID, err)
	}
	return nil
}

// lockStanding inserts a zeroed row on first touch so the FOR UPDATE select always has a row to lock.
func lockStanding(ctx context.Context, tx *sqlx.Tx, key standing.Key, now time.Time) (standing.Standing, error) {
	zero := standing.New(key)
	zero.UpdatedAt = now
	ensureQuery, ensureArgs, err := qb.InsertModel("standings", standingToInsertModel(zero), standingEnsureSuffix)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("build ensure standing query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
		return standing.Standing{}, fmt.Errorf("ensure standing team=%s group=%d: %w", key.TeamID, key.GroupNumber, err)
	}

	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("tournament_public_id", key.TournamentID),
			qb.Eq("team_public_id", key.TeamID),
			qb.Eq("group_number", key.GroupNumber),
		).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		return standing.Standing{}, fmt.Errorf("build lock standing query: %w", err)
	}

	var row standingTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return standing.Standing{}, fmt.Errorf("lock standing team=%s group=%d: %w", key.TeamID, key.GroupNumber, err)
	}
	return standingFromRow(row), nil
}

func deleteStandingsByTournament(ctx context.Context, tx *sqlx.Tx, tournamentID string) error {
	for _, table := range []string{"standings", "standing_applied_matches"} {
		query, args, err := qb.DeleteFrom(table).
			Where(qb.Eq("tournament_public_id", tournamentID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s tournament=%s: %w", table, tournamentID, err)
		}
	}
	return nil
}

func standingToInsertModel(s standing.Standing) standingInsertModel {
	return standingInsertModel{
		TournamentID:   s.TournamentID,
		TeamID:         s.TeamID,
		GroupNumber:    s.GroupNumber,
		Position:       s.Position,
		Played:         s.Played,
		Won:            s.Won,
		Drawn:          s.Drawn,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
		UpdatedAt:      s.UpdatedAt,
	}
}

func standingFromRow(row standingTableModel) standing.Standing {
	return standing.Standing{
		TournamentID:   row.TournamentID,
		TeamID:         row.TeamID,
		GroupNumber:    row.GroupNumber,
		Position:       row.Position,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		UpdatedAt:      row.UpdatedAt,
	}
}
