package standing

import "context"

// RebuildFunc computes a full table and the ids of the matches it covers.
type RebuildFunc func(ctx context.Context) (rows []Standing, appliedMatchIDs []string, err error)

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Standing, error)
	// ApplyMatch records the results of a finished match exactly once. It reports false when the
	// match was already applied. Applies of one tournament are serialized.
	ApplyMatch(ctx context.Context, matchID string, results []Result) (bool, error)
	// ReplaceByTournament runs build and swaps every row and processed match marker of the tournament
	// for its output. No apply of the tournament runs between build starting and the swap landing.
	ReplaceByTournament(ctx context.Context, tournamentID string, build RebuildFunc) ([]Standing, error)
	DeleteByTournament(ctx context.Context, tournamentID string) error
}
