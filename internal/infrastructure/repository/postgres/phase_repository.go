package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

type PhaseRepository struct {
	db *sqlx.DB
}

func NewPhaseRepository(db *sqlx.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

func (r *PhaseRepository) GetByID(ctx context.Context, phaseID string) (phase.Phase, bool, error) {
	query, args, err := qb.Select("*").From("phases").
		Where(
			qb.Eq("public_id", phaseID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return phase.Phase{}, false, fmt.Errorf("build get phase query: %w", err)
	}

	var row phaseTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return phase.Phase{}, false, nil
		}
		return phase.Phase{}, false, fmt.Errorf("get phase id=%s: %w", phaseID, err)
	}

	return phaseFromRow(row), true, nil
}

func (r *PhaseRepository) ListByTournament(ctx context.Context, tournamentID string) ([]phase.Phase, error) {
	query, args, err := qb.Select("*").From("phases").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("phase_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list phases query: %w", err)
	}

	var rows []phaseTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list phases tournament=%s: %w", tournamentID, err)
	}

	out := make([]phase.Phase, 0, len(rows))
	for _, row := range rows {
		out = append(out, phaseFromRow(row))
	}
	return out, nil
}

func (r *PhaseRepository) MaxNumber(ctx context.Context, tournamentID string) (int, error) {
	query, args, err := qb.Select("COALESCE(MAX(phase_number), 0)").From("phases").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build max phase number query: %w", err)
	}

	var max int
	if err := r.db.GetContext(ctx, &max, query, args...); err != nil {
		return 0, fmt.Errorf("max phase number tournament=%s: %w", tournamentID, err)
	}
	return max, nil
}

func (r *PhaseRepository) Create(ctx context.Context, p phase.Phase) error {
	query, args, err := qb.InsertModel("phases", phaseInsertModel{
		PublicID:            p.ID,
		TournamentID:        p.TournamentID,
		PhaseNumber:         p.Number,
		Name:                p.Name,
		PhaseType:           string(p.Type),
		Status:              string(p.Status),
		HomeAway:            p.HomeAway,
		TeamsAdvance:        p.TeamsAdvance,
		GroupsCount:         p.GroupsCount,
		TeamsPerGroup:       p.TeamsPerGroup,
		FixturesGeneratedAt: p.FixturesGeneratedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert phase query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: phase number %d already exists in tournament %s", phase.ErrConfiguration, p.Number, p.TournamentID)
		}
		return fmt.Errorf("insert phase id=%s: %w", p.ID, err)
	}
	return nil
}

func (r *PhaseRepository) Update(ctx context.Context, p phase.Phase) error {
	query, args, err := qb.Update("phases").
		Set("name", p.Name).
		Set("phase_type", string(p.Type)).
		Set("status", string(p.Status)).
		Set("home_away", p.HomeAway).
		Set("teams_advance", p.TeamsAdvance).
		Set("groups_count", p.GroupsCount).
		Set("teams_per_group", p.TeamsPerGroup).
		Set("fixtures_generated_at", p.FixturesGeneratedAt).
		Set("updated_at", p.UpdatedAt).
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update phase query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update phase id=%s: %w", p.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update phase id=%s: phase not found", p.ID)
	}
	return nil
}

func (r *PhaseRepository) Delete(ctx context.Context, phaseID string) error {
	query, args, err := qb.Update("phases").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", phaseID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete phase query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete phase id=%s: %w", phaseID, err)
	}
	return nil
}

func phaseFromRow(row phaseTableModel) phase.Phase {
	return phase.Phase{
		ID:                  row.PublicID,
		TournamentID:        row.TournamentID,
		Number:              row.PhaseNumber,
		Name:                row.Name,
		Type:                phase.Type(row.PhaseType),
		Status:              phase.Status(row.Status),
		HomeAway:            row.HomeAway,
		TeamsAdvance:        row.TeamsAdvance,
		GroupsCount:         row.GroupsCount,
		TeamsPerGroup:       row.TeamsPerGroup,
		FixturesGeneratedAt: nullTimeToTimePtr(row.FixturesGeneratedAt),
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
