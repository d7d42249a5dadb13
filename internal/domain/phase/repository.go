package phase

import "context"

// Repository describes phase persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, phaseID string) (Phase, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Phase, error)
	MaxNumber(ctx context.Context, tournamentID string) (int, error)
	Create(ctx context.Context, p Phase) error
	Update(ctx context.Context, p Phase) error
	Delete(ctx context.Context, phaseID string) error
}
