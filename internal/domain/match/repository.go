package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByPhase(ctx context.Context, phaseID string) ([]Match, error)
	ListFinishedByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	// ReplaceByPhase deletes every match of the phase and inserts matches in one transaction.
	ReplaceByPhase(ctx context.Context, phaseID string, matches []Match) error
	DeleteByPhase(ctx context.Context, phaseID string) error
	Update(ctx context.Context, m Match) error
}
