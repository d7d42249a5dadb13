package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	query, args, err := qb.Select("t.public_id", "t.name", "t.shield_url", "tt.position", "tt.joined_at").
		From("tournament_teams tt JOIN teams t ON t.public_id = tt.team_public_id").
		Where(
			qb.Eq("tt.tournament_public_id", tournamentID),
			qb.IsNull("t.deleted_at"),
		).
		OrderBy("tt.position", "tt.joined_at", "t.public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by tournament query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by tournament: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:        row.PublicID,
			Name:      row.Name,
			ShieldURL: nullStringValue(row.ShieldURL),
		})
	}

	return out, nil
}
