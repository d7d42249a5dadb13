package cache

import (
	"context"

	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	basecache "github.com/riskibarqy/football-tournament/internal/platform/cache"
)

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

type cachedTournament struct {
	value  tournament.Tournament
	exists bool
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "tournament:id:"+tournamentID, func(ctx context.Context) (cachedTournament, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return cachedTournament{}, err
		}
		return cachedTournament{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	return cached.value, cached.exists, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "team:list:"+tournamentID, func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

// StandingRepository caches table reads and drops the tournament entry on every write.
type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func standingKey(tournamentID string) string {
	return "standing:list:" + tournamentID
}

func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID string) ([]standing.Standing, error) {
	items, err := basecache.Load(ctx, r.cache, standingKey(tournamentID), func(ctx context.Context) ([]standing.Standing, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]standing.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]standing.Standing(nil), items...), nil
}

func (r *StandingRepository) ApplyMatch(ctx context.Context, matchID string, results []standing.Result) (bool, error) {
	applied, err := r.next.ApplyMatch(ctx, matchID, results)
	if len(results) > 0 {
		r.cache.DeletePrefix(ctx, standingKey(results[0].Key.TournamentID))
	}
	return applied, err
}

func (r *StandingRepository) ReplaceByTournament(ctx context.Context, tournamentID string, build standing.RebuildFunc) ([]standing.Standing, error) {
	rows, err := r.next.ReplaceByTournament(ctx, tournamentID, build)
	r.cache.DeletePrefix(ctx, standingKey(tournamentID))
	return rows, err
}

func (r *StandingRepository) DeleteByTournament(ctx context.Context, tournamentID string) error {
	err := r.next.DeleteByTournament(ctx, tournamentID)
	r.cache.DeletePrefix(ctx, standingKey(tournamentID))
	return err
}
