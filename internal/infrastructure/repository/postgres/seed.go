package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo tournaments into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM tournaments WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count tournaments for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTournaments() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO tournaments (public_id, name, rounds, created_at, updated_at)
VALUES (:public_id, :name, :rounds, :created_at, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  t.ID,
			"name":       t.Name,
			"rounds":     t.Rounds,
			"created_at": t.CreatedAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("bind seed tournament %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, name, shield_url)
VALUES (:public_id, :name, NULLIF(:shield_url, ''))
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  t.ID,
			"name":       t.Name,
			"shield_url": t.ShieldURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, m := range memory.SeedMemberships() {
		sqlQuery, args, err := qb.InsertModel("tournament_teams", tournamentTeamInsertModel{
			TournamentID: m.TournamentID,
			TeamID:       m.TeamID,
			Position:     m.Position,
			JoinedAt:     m.JoinedAt.UTC(),
		}, "ON CONFLICT (tournament_public_id, team_public_id) DO NOTHING")
		if err != nil {
			return fmt.Errorf("build seed membership %s/%s query: %w", m.TournamentID, m.TeamID, err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed membership %s/%s: %w", m.TournamentID, m.TeamID, err)
		}
	}

	for _, p := range memory.SeedPhases() {
		sqlQuery, args, err := qb.InsertModel("phases", phaseInsertModel{
			PublicID:      p.ID,
			TournamentID:  p.TournamentID,
			PhaseNumber:   p.Number,
			Name:          p.Name,
			PhaseType:     string(p.Type),
			Status:        string(p.Status),
			HomeAway:      p.HomeAway,
			TeamsAdvance:  p.TeamsAdvance,
			GroupsCount:   p.GroupsCount,
			TeamsPerGroup: p.TeamsPerGroup,
			CreatedAt:     p.CreatedAt.UTC(),
			UpdatedAt:     p.UpdatedAt.UTC(),
		}, "ON CONFLICT (public_id) DO NOTHING")
		if err != nil {
			return fmt.Errorf("build seed phase %s query: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed phase %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
