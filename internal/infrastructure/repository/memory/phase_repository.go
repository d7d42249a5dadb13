package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-tournament/internal/domain/phase"
)

type PhaseRepository struct {
	mu     sync.RWMutex
	phases map[string]phase.Phase
}

func NewPhaseRepository(items []phase.Phase) *PhaseRepository {
	byID := make(map[string]phase.Phase, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &PhaseRepository{phases: byID}
}

func (r *PhaseRepository) GetByID(_ context.Context, phaseID string) (phase.Phase, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.phases[phaseID]
	return item, ok, nil
}

func (r *PhaseRepository) ListByTournament(_ context.Context, tournamentID string) ([]phase.Phase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]phase.Phase, 0)
	for _, item := range r.phases {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PhaseRepository) MaxNumber(_ context.Context, tournamentID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	maxNumber := 0
	for _, item := range r.phases {
		if item.TournamentID == tournamentID && item.Number > maxNumber {
			maxNumber = item.Number
		}
	}

	return maxNumber, nil
}

func (r *PhaseRepository) Create(_ context.Context, item phase.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phases[item.ID]; exists {
		return fmt.Errorf("phase %s already exists", item.ID)
	}
	r.phases[item.ID] = item

	return nil
}

func (r *PhaseRepository) Update(_ context.Context, item phase.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phases[item.ID]; !exists {
		return fmt.Errorf("phase %s not found", item.ID)
	}
	r.phases[item.ID] = item

	return nil
}

func (r *PhaseRepository) Delete(_ context.Context, phaseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.phases, phaseID)
	return nil
}
