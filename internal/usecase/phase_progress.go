package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"go.opentelemetry.io/otel/attribute"
)

const maxProgressWorkers = 4

// ListPhaseProgress reports the progress of every phase of a tournament in phase order.
func (s *PhaseService) ListPhaseProgress(ctx context.Context, tournamentID string) ([]PhaseProgress, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.ListPhaseProgress",
		attribute.String("tournament.id", tournamentID),
	)
	defer span.End()

	phases, err := s.ListPhases(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(phases) == 0 {
		return []PhaseProgress{}, nil
	}

	pool, err := ants.NewPool(min(maxProgressWorkers, len(phases)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]PhaseProgress, len(phases))
	errs := make([]error, len(phases))

	var workers sync.WaitGroup
	for idx, item := range phases {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			matches, err := s.matchRepo.ListByPhase(ctx, item.ID)
			if err != nil {
				errs[idx] = fmt.Errorf("list matches phase=%s: %w", item.ID, err)
				return
			}
			out[idx] = newPhaseProgress(item, phase.NewProgress(matches))
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit progress task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func newPhaseProgress(item phase.Phase, progress phase.Progress) PhaseProgress {
	return PhaseProgress{
		Phase:              item,
		Progress:           progress,
		CanBeStarted:       item.CanBeStarted(),
		CanBeCompleted:     item.CanBeCompleted(),
		CanBeCancelled:     item.CanBeCancelled(),
		ShouldAutoComplete: item.ShouldAutoComplete(progress),
	}
}
