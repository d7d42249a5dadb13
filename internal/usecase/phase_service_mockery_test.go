package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	matchmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/match"
	phasemock "github.com/riskibarqy/football-tournament/internal/mocks/domain/phase"
	standingmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/football-tournament/internal/mocks/domain/team"
	tournamentmock "github.com/riskibarqy/football-tournament/internal/mocks/domain/tournament"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestPhaseService_GenerateFixtures_ReplaceFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	phaseRepo := phasemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewPhaseService(tournamentRepo, phaseRepo, teamRepo, matchRepo, nil, &sequenceIDGenerator{}, logging.NewNop())
	storeErr := errors.New("connection reset")

	tournamentRepo.
		On("GetByID", mock.Anything, "tour-1").
		Return(tournament.Tournament{ID: "tour-1", Rounds: 1}, true, nil).
		Once()
	phaseRepo.
		On("GetByID", mock.Anything, "phase-1").
		Return(phase.Phase{ID: "phase-1", TournamentID: "tour-1", Type: phase.TypeRoundRobin, Status: phase.StatusPending}, true, nil).
		Once()
	teamRepo.
		On("ListByTournament", mock.Anything, "tour-1").
		Return([]team.Team{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil).
		Once()
	matchRepo.
		On("ReplaceByPhase", mock.Anything, "phase-1", mock.MatchedBy(func(items []match.Match) bool {
			return len(items) == 3
		})).
		Return(storeErr).
		Once()

	_, err := service.GenerateFixtures(ctx, "tour-1", "phase-1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	phaseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPhaseService_StartPhase_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	phaseRepo := phasemock.NewRepository(t)
	service := NewPhaseService(
		tournamentmock.NewRepository(t), phaseRepo, teammock.NewRepository(t), matchmock.NewRepository(t),
		nil, &sequenceIDGenerator{}, nil,
	)

	phaseRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "phase-1").
		Return(phase.Phase{}, false, nil).
		Once()

	_, err := service.StartPhase(ctx, "phase-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_Recalculate_ReadsMatchesInsideRebuildUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(tournamentRepo, matchRepo, standingRepo, logging.NewNop())

	finished := []match.Match{
		{ID: "m1", TournamentID: "tour-1", Round: 1, Home: match.TeamSlot("a"), Away: match.TeamSlot("b"), Status: match.StatusFinished, HomeScore: 2, AwayScore: 1},
		{ID: "m2", TournamentID: "tour-1", Round: 2, Home: match.TeamSlot("b"), Away: match.TeamSlot("a"), Status: match.StatusFinished, HomeScore: 0, AwayScore: 0},
	}

	tournamentRepo.
		On("GetByID", mock.Anything, "tour-1").
		Return(tournament.Tournament{ID: "tour-1"}, true, nil).
		Once()
	matchRepo.
		On("ListFinishedByTournament", mock.Anything, "tour-1").
		Return(finished, nil).
		Once()
	standingRepo.
		On("ReplaceByTournament", mock.Anything, "tour-1", mock.Anything).
		Return(func(ctx context.Context, tournamentID string, build standing.RebuildFunc) ([]standing.Standing, error) {
			rows, matchIDs, err := build(ctx)
			if err != nil {
				return nil, err
			}
			if len(rows) != 2 || rows[0].TeamID != "a" || rows[0].Points != 4 || rows[1].Points != 1 {
				t.Errorf("unexpected rebuilt rows: %+v", rows)
			}
			if len(matchIDs) != 2 || matchIDs[0] != "m1" || matchIDs[1] != "m2" {
				t.Errorf("unexpected applied match ids: %v", matchIDs)
			}
			return rows, nil
		}).
		Once()

	rows, err := service.Recalculate(ctx, "tour-1")
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
}

func TestStandingService_Recalculate_ListErrorKeepsRowsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(tournamentRepo, matchRepo, standingRepo, logging.NewNop())
	storeErr := errors.New("connection reset")

	tournamentRepo.
		On("GetByID", mock.Anything, "tour-1").
		Return(tournament.Tournament{ID: "tour-1"}, true, nil).
		Once()
	matchRepo.
		On("ListFinishedByTournament", mock.Anything, "tour-1").
		Return(nil, storeErr).
		Once()
	standingRepo.
		On("ReplaceByTournament", mock.Anything, "tour-1", mock.Anything).
		Return(func(ctx context.Context, _ string, build standing.RebuildFunc) ([]standing.Standing, error) {
			_, _, err := build(ctx)
			return nil, err
		}).
		Once()

	_, err := service.Recalculate(ctx, "tour-1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
