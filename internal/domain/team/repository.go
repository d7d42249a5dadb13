package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ListByTournament returns the tournament members ordered by position, join time, then id.
	// The order drives fixture generation.
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
}
