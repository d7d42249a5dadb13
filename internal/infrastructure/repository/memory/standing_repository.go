package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/standing"
)

type StandingRepository struct {
	mu      sync.RWMutex
	rows    map[standing.Key]standing.Standing
	applied map[string]string
	now     func() time.Time
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{
		rows:    make(map[standing.Key]standing.Standing),
		applied: make(map[string]string),
		now:     time.Now,
	}
}

func (r *StandingRepository) ListByTournament(_ context.Context, tournamentID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for key, row := range r.rows {
		if key.TournamentID == tournamentID {
			out = append(out, row)
		}
	}

	return standing.Rank(out), nil
}

func (r *StandingRepository) ApplyMatch(_ context.Context, matchID string, results []standing.Result) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, done := r.applied[matchID]; done {
		return false, nil
	}

	now := r.now().UTC()
	tournamentID := ""
	for _, result := range results {
		row, ok := r.rows[result.Key]
		if !ok {
			row = standing.New(result.Key)
		}
		row.Apply(result)
		row.UpdatedAt = now
		r.rows[result.Key] = row
		tournamentID = result.Key.TournamentID
	}
	r.applied[matchID] = tournamentID

	return true, nil
}

func (r *StandingRepository) ReplaceByTournament(ctx context.Context, tournamentID string, build standing.RebuildFunc) ([]standing.Standing, error) {
	if build == nil {
		return nil, fmt.Errorf("replace standings tournament=%s: build is required", tournamentID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, appliedMatchIDs, err := build(ctx)
	if err != nil {
		return nil, fmt.Errorf("rebuild standings tournament=%s: %w", tournamentID, err)
	}

	r.deleteLocked(tournamentID)
	now := r.now().UTC()
	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		row.TournamentID = tournamentID
		row.UpdatedAt = now
		r.rows[row.Key()] = row
		out = append(out, row)
	}
	for _, matchID := range appliedMatchIDs {
		r.applied[matchID] = tournamentID
	}

	return out, nil
}

func (r *StandingRepository) DeleteByTournament(_ context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteLocked(tournamentID)
	return nil
}

func (r *StandingRepository) deleteLocked(tournamentID string) {
	for key := range r.rows {
		if key.TournamentID == tournamentID {
			delete(r.rows, key)
		}
	}
	for matchID, owner := range r.applied {
		if owner == tournamentID {
			delete(r.applied, matchID)
		}
	}
}
