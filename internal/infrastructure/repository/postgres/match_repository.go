package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	qb "github.com/riskibarqy/football-tournament/internal/platform/querybuilder"
)

// matchInsertBatchSize keeps multi-row inserts well below the postgres bind parameter limit.
const matchInsertBatchSize = 500

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match id=%s: %w", matchID, err)
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) ListByPhase(ctx context.Context, phaseID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("phase_public_id", phaseID)).
		OrderBy("round_number", "group_number", "bracket_position", "leg", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by phase query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list matches phase="+phaseID)
}

func (r *MatchRepository) ListFinishedByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("status", string(match.StatusFinished)),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list finished matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list finished matches tournament="+tournamentID)
}

func (r *MatchRepository) ReplaceByPhase(ctx context.Context, phaseID string, matches []match.Match) error {
	for _, item := range matches {
		if item.PhaseID != phaseID {
			return fmt.Errorf("replace matches phase=%s: match %s belongs to phase %s", phaseID, item.ID, item.PhaseID)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := deleteMatchesByPhase(ctx, tx, phaseID); err != nil {
		return err
	}

	for start := 0; start < len(matches); start += matchInsertBatchSize {
		end := min(start+matchInsertBatchSize, len(matches))

		models := make([]matchInsertModel, 0, end-start)
		for _, item := range matches[start:end] {
			models = append(models, matchToInsertModel(item))
		}

		query, args, err := qb.InsertModels("matches", models, "")
		if err != nil {
			return fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert matches phase=%s: %w", phaseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace matches tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) DeleteByPhase(ctx context.Context, phaseID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := deleteMatchesByPhase(ctx, tx, phaseID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete matches tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.UpdateModel("matches", matchToInsertModel(m),
		[]string{"public_id", "tournament_public_id", "phase_public_id", "created_at"},
		qb.Eq("public_id", m.ID),
	)
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match id=%s: %w", m.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update match id=%s: match not found", m.ID)
	}
	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func deleteMatchesByPhase(ctx context.Context, tx *sqlx.Tx, phaseID string) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("phase_public_id", phaseID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete matches phase=%s: %w", phaseID, err)
	}
	return nil
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		PublicID:           m.ID,
		TournamentID:       m.TournamentID,
		PhaseID:            m.PhaseID,
		RoundNumber:        m.Round,
		GroupNumber:        m.GroupNumber,
		MatchType:          m.MatchType,
		Leg:                m.Leg,
		BracketPosition:    m.BracketPosition,
		HomeSlotKind:       string(m.Home.Kind),
		HomeSlotRef:        optionalString(slotRef(m.Home)),
		HomeTeamID:         optionalString(m.Home.TeamID),
		AwaySlotKind:       string(m.Away.Kind),
		AwaySlotRef:        optionalString(slotRef(m.Away)),
		AwayTeamID:         optionalString(m.Away.TeamID),
		Status:             string(m.Status),
		HomeScore:          m.HomeScore,
		AwayScore:          m.AwayScore,
		StandingsAppliedAt: m.StandingsAppliedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// slotRef is empty for team slots: their reference is the team column itself.
func slotRef(s match.Slot) string {
	if s.Kind == match.SlotTeam {
		return ""
	}
	return s.Ref()
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	home, err := slotFromColumns(row.HomeSlotKind, nullStringValue(row.HomeSlotRef), nullStringValue(row.HomeTeamID))
	if err != nil {
		return match.Match{}, fmt.Errorf("decode home slot match=%s: %w", row.PublicID, err)
	}
	away, err := slotFromColumns(row.AwaySlotKind, nullStringValue(row.AwaySlotRef), nullStringValue(row.AwayTeamID))
	if err != nil {
		return match.Match{}, fmt.Errorf("decode away slot match=%s: %w", row.PublicID, err)
	}
	status, err := match.ParseStatus(row.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("decode status match=%s: %w", row.PublicID, err)
	}

	return match.Match{
		ID:                 row.PublicID,
		TournamentID:       row.TournamentID,
		PhaseID:            row.PhaseID,
		Round:              row.RoundNumber,
		GroupNumber:        row.GroupNumber,
		MatchType:          row.MatchType,
		Leg:                row.Leg,
		BracketPosition:    row.BracketPosition,
		Home:               home,
		Away:               away,
		Status:             status,
		HomeScore:          row.HomeScore,
		AwayScore:          row.AwayScore,
		StandingsAppliedAt: nullTimeToTimePtr(row.StandingsAppliedAt),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

func slotFromColumns(kind, ref, teamID string) (match.Slot, error) {
	slotKind, err := match.ParseSlotKind(kind)
	if err != nil {
		return match.Slot{}, err
	}

	switch slotKind {
	case match.SlotSeed:
		seed, err := strconv.Atoi(ref)
		if err != nil {
			return match.Slot{}, fmt.Errorf("invalid seed reference %q: %w", ref, err)
		}
		slot := match.SeedSlot(seed)
		slot.TeamID = teamID
		return slot, nil
	case match.SlotWinnerOf:
		slot := match.WinnerOfSlot(ref)
		slot.TeamID = teamID
		return slot, nil
	default:
		return match.TeamSlot(teamID), nil
	}
}
