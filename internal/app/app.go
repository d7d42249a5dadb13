package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-tournament/internal/config"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/football-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-tournament/internal/platform/cache"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	phases      phase.Repository
	matches     match.Repository
	standings   standing.Repository
	close       func() error
}

// NewHTTPServer wires the configured store, services and router. The returned
// cleanup releases the store and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.tournaments = cacherepo.NewTournamentRepository(repos.tournaments, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.standings = cacherepo.NewStandingRepository(repos.standings, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	standingSvc := usecase.NewStandingService(repos.tournaments, repos.matches, repos.standings, logger)
	phaseSvc := usecase.NewPhaseService(repos.tournaments, repos.phases, repos.teams, repos.matches, standingSvc, idgen.NewUUIDGenerator(), logger)
	matchSvc := usecase.NewMatchService(repos.matches, standingSvc, logger)

	handler := httpapi.NewHandler(phaseSvc, matchSvc, standingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.SeedDemoData {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("seed demo data: %w", err)
			}
		}

		logger.Info("store ready", "driver", config.StorePostgres, "db_name", dbNameFromURL(cfg.DBURL))
		return repositories{
			tournaments: postgres.NewTournamentRepository(db),
			teams:       postgres.NewTeamRepository(db),
			phases:      postgres.NewPhaseRepository(db),
			matches:     postgres.NewMatchRepository(db),
			standings:   postgres.NewStandingRepository(db),
			close:       db.Close,
		}, nil
	default:
		repos := repositories{
			tournaments: memory.NewTournamentRepository(nil),
			teams:       memory.NewTeamRepository(nil, nil),
			phases:      memory.NewPhaseRepository(nil),
			matches:     memory.NewMatchRepository(nil),
			standings:   memory.NewStandingRepository(),
			close:       func() error { return nil },
		}
		if cfg.SeedDemoData {
			repos.tournaments = memory.NewTournamentRepository(memory.SeedTournaments())
			repos.teams = memory.NewTeamRepository(memory.SeedTeams(), memory.SeedMemberships())
			repos.phases = memory.NewPhaseRepository(memory.SeedPhases())
		}

		logger.Info("store ready", "driver", config.StoreMemory, "seeded", cfg.SeedDemoData)
		return repos, nil
	}
}
