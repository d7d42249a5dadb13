package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_ReplaceByPhase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository([]match.Match{
		{ID: "old-1", PhaseID: "phase-1", TournamentID: "tour-1", Round: 1},
		{ID: "other-1", PhaseID: "phase-2", TournamentID: "tour-1", Round: 1},
	})

	err := repo.ReplaceByPhase(ctx, "phase-1", []match.Match{
		{ID: "new-2", PhaseID: "phase-1", TournamentID: "tour-1", Round: 2},
		{ID: "new-1b", PhaseID: "phase-1", TournamentID: "tour-1", Round: 1, Leg: 2},
		{ID: "new-1a", PhaseID: "phase-1", TournamentID: "tour-1", Round: 1, Leg: 1},
	})
	require.NoError(t, err)

	items, err := repo.ListByPhase(ctx, "phase-1")
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	require.Equal(t, []string{"new-1a", "new-1b", "new-2"}, ids)

	if _, ok, _ := repo.GetByID(ctx, "old-1"); ok {
		t.Fatalf("old match must be replaced")
	}
	if _, ok, _ := repo.GetByID(ctx, "other-1"); !ok {
		t.Fatalf("match of another phase must survive")
	}
}

func TestMatchRepository_ReplaceByPhaseRejectsForeignMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository([]match.Match{{ID: "old-1", PhaseID: "phase-1", TournamentID: "tour-1", Round: 1}})

	err := repo.ReplaceByPhase(ctx, "phase-1", []match.Match{{ID: "x", PhaseID: "phase-9", Round: 1}})
	require.Error(t, err)

	_, ok, _ := repo.GetByID(ctx, "old-1")
	require.True(t, ok, "failed replace must keep previous matches")
}

func TestMatchRepository_ListFinishedByTournament(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository([]match.Match{
		{ID: "m1", PhaseID: "p1", TournamentID: "tour-1", Round: 1, Status: match.StatusFinished},
		{ID: "m2", PhaseID: "p1", TournamentID: "tour-1", Round: 1, Status: match.StatusLive},
		{ID: "m3", PhaseID: "p9", TournamentID: "tour-2", Round: 1, Status: match.StatusFinished},
	})

	items, err := repo.ListFinishedByTournament(ctx, "tour-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "m1", items[0].ID)

	require.Error(t, repo.Update(ctx, match.Match{ID: "missing"}))
}
