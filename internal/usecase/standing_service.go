package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type StandingService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	standingRepo   standing.Repository
	logger         *logging.Logger
}

func NewStandingService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	standingRepo standing.Repository,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		logger:         logger,
	}
}

// ApplyFinishedMatch folds one finished match into the standings. It reports false when the
// match had already been applied.
func (s *StandingService) ApplyFinishedMatch(ctx context.Context, m match.Match) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ApplyFinishedMatch",
		attribute.String("match.id", m.ID),
	)
	defer span.End()

	results, err := standing.ResultsFromMatch(m)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	applied, err := s.standingRepo.ApplyMatch(ctx, m.ID, results)
	if err != nil {
		return false, fmt.Errorf("apply match to standings: %w", err)
	}
	if !applied {
		s.logger.DebugContext(ctx, "match already applied to standings", "match_id", m.ID)
	}

	return applied, nil
}

// Recalculate rebuilds the tournament standings from every finished match.
func (s *StandingService) Recalculate(ctx context.Context, tournamentID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Recalculate",
		attribute.String("tournament.id", tournamentID),
	)
	defer span.End()

	tournamentID, err := s.requireTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	applied := 0
	rows, err := s.standingRepo.ReplaceByTournament(ctx, tournamentID, func(ctx context.Context) ([]standing.Standing, []string, error) {
		matches, err := s.matchRepo.ListFinishedByTournament(ctx, tournamentID)
		if err != nil {
			return nil, nil, fmt.Errorf("list finished matches: %w", err)
		}

		applicable := make([]match.Match, 0, len(matches))
		matchIDs := make([]string, 0, len(matches))
		for _, m := range matches {
			if !m.IsFinished() || !m.TeamsResolved() {
				s.logger.WarnContext(ctx, "skip match without resolved teams", "tournament_id", tournamentID, "match_id", m.ID)
				continue
			}
			applicable = append(applicable, m)
			matchIDs = append(matchIDs, m.ID)
		}

		rows, err := standing.Build(applicable)
		if err != nil {
			return nil, nil, fmt.Errorf("build standings: %w", err)
		}
		applied = len(applicable)
		return rows, matchIDs, nil
	})
	if err != nil {
		return nil, fmt.Errorf("replace standings: %w", err)
	}
	rows = standing.Rank(rows)

	s.logger.InfoContext(ctx, "standings recalculated",
		"tournament_id", tournamentID,
		"matches", applied,
		"rows", len(rows),
	)
	return rows, nil
}

// ListStandings returns every table of the tournament ranked per group.
func (s *StandingService) ListStandings(ctx context.Context, tournamentID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListStandings")
	defer span.End()

	tournamentID, err := s.requireTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.standingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	return standing.Rank(rows), nil
}

func (s *StandingService) ListGroupStandings(ctx context.Context, tournamentID string, groupNumber int) ([]standing.Standing, error) {
	if groupNumber < 0 {
		return nil, fmt.Errorf("%w: group number must be >= 0", ErrInvalidInput)
	}

	rows, err := s.ListStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	return standing.FilterGroup(rows, groupNumber), nil
}

func (s *StandingService) requireTournament(ctx context.Context, tournamentID string) (string, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return "", fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return "", fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return tournamentID, nil
}
