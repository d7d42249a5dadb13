package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type MatchService struct {
	matchRepo match.Repository
	standings *StandingService
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, standings *StandingService, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo: matchRepo,
		standings: standings,
		logger:    logger,
		now:       time.Now,
	}
}

type RecordMatchResultInput struct {
	MatchID   string
	HomeScore int
	AwayScore int
	Status    string
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) ListByPhase(ctx context.Context, phaseID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByPhase")
	defer span.End()

	phaseID = strings.TrimSpace(phaseID)
	if phaseID == "" {
		return nil, fmt.Errorf("%w: phase id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByPhase(ctx, phaseID)
	if err != nil {
		return nil, fmt.Errorf("list phase matches: %w", err)
	}

	return items, nil
}

// RecordMatchResult stores a score and status. Finishing a match applies it to the standings once
// and advances the bracket winner when the tie is decided.
func (s *MatchService) RecordMatchResult(ctx context.Context, input RecordMatchResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordMatchResult",
		attribute.String("match.id", input.MatchID),
	)
	defer span.End()

	status, err := match.ParseStatus(input.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}

	item, err := s.GetMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	if item.IsFinished() && status != match.StatusFinished {
		return match.Match{}, fmt.Errorf("%w: finished match %s cannot move back to %s", phase.ErrConfiguration, item.ID, status)
	}
	if status != match.StatusScheduled && !item.TeamsResolved() {
		return match.Match{}, fmt.Errorf("%w: match %s still waits for its teams", phase.ErrConfiguration, item.ID)
	}

	scoreChanged := item.HomeScore != input.HomeScore || item.AwayScore != input.AwayScore
	correction := item.IsFinished() && scoreChanged

	item.HomeScore = input.HomeScore
	item.AwayScore = input.AwayScore
	item.Status = status
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	if !item.IsFinished() {
		return item, nil
	}

	switch {
	case correction:
		s.logger.InfoContext(ctx, "finished match score corrected, rebuilding standings",
			"tournament_id", item.TournamentID,
			"match_id", item.ID,
		)
		if _, err := s.standings.Recalculate(ctx, item.TournamentID); err != nil {
			return item, err
		}
	case item.StandingsAppliedAt == nil:
		if _, err := s.standings.ApplyFinishedMatch(ctx, item); err != nil {
			return item, err
		}
	}
	if item.StandingsAppliedAt == nil {
		appliedAt := item.UpdatedAt
		item.StandingsAppliedAt = &appliedAt
		if err := s.matchRepo.Update(ctx, item); err != nil {
			return item, fmt.Errorf("mark standings applied: %w", err)
		}
	}

	if err := s.advanceWinner(ctx, item); err != nil {
		return item, err
	}

	return item, nil
}

// advanceWinner points the WinnerOf slots fed by the tie at its winner. A tie left level, for example
// after a score correction, puts those slots back to pending.
func (s *MatchService) advanceWinner(ctx context.Context, finished match.Match) error {
	if finished.BracketPosition == 0 {
		return nil
	}

	phaseMatches, err := s.matchRepo.ListByPhase(ctx, finished.PhaseID)
	if err != nil {
		return fmt.Errorf("list phase matches: %w", err)
	}

	legs := make([]match.Match, 0, 2)
	for _, m := range phaseMatches {
		if m.Round == finished.Round && m.BracketPosition == finished.BracketPosition {
			legs = append(legs, m)
		}
	}
	if len(legs) == 0 {
		return nil
	}

	var firstLegID string
	allFinished := true
	for _, leg := range legs {
		if leg.Leg == 1 {
			firstLegID = leg.ID
		}
		if !leg.IsFinished() {
			allFinished = false
		}
	}

	winner, decided := match.TieWinner(legs)
	if !decided {
		winner = ""
		if allFinished {
			s.logger.WarnContext(ctx, "knockout tie is level, winner slot stays pending",
				"phase_id", finished.PhaseID,
				"round", finished.Round,
				"bracket_position", finished.BracketPosition,
			)
		}
	}

	for _, dependent := range phaseMatches {
		changed := false
		if dependent.Home.Kind == match.SlotWinnerOf && dependent.Home.MatchID == firstLegID && dependent.Home.TeamID != winner {
			dependent.Home.TeamID = winner
			changed = true
		}
		if dependent.Away.Kind == match.SlotWinnerOf && dependent.Away.MatchID == firstLegID && dependent.Away.TeamID != winner {
			dependent.Away.TeamID = winner
			changed = true
		}
		if !changed {
			continue
		}
		if dependent.Status != match.StatusScheduled {
			s.logger.WarnContext(ctx, "dependent match already started, winner not propagated",
				"match_id", dependent.ID,
				"winner_team_id", winner,
			)
			continue
		}

		dependent.UpdatedAt = s.now().UTC()
		if err := s.matchRepo.Update(ctx, dependent); err != nil {
			return fmt.Errorf("advance winner to match %s: %w", dependent.ID, err)
		}
		if winner == "" {
			s.logger.InfoContext(ctx, "bracket slot reset to pending",
				"from_match_id", firstLegID,
				"to_match_id", dependent.ID,
			)
			continue
		}
		s.logger.InfoContext(ctx, "bracket winner advanced",
			"from_match_id", firstLegID,
			"to_match_id", dependent.ID,
			"team_id", winner,
		)
	}

	return nil
}
