package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

const testTournamentID = "tour-1"

type sequenceIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("id-%03d", g.next), nil
}

type testEnv struct {
	tournaments *memory.TournamentRepository
	teams       *memory.TeamRepository
	phases      *memory.PhaseRepository
	matches     *memory.MatchRepository
	standingsDB *memory.StandingRepository

	phaseService    *PhaseService
	matchService    *MatchService
	standingService *StandingService
}

func fixedClock() time.Time {
	return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T, teamCount, cycles int, phases ...phase.Phase) *testEnv {
	t.Helper()

	teams := make([]team.Team, 0, teamCount)
	members := make([]team.Membership, 0, teamCount)
	for i := 1; i <= teamCount; i++ {
		teamID := fmt.Sprintf("t%02d", i)
		teams = append(teams, team.Team{ID: teamID, Name: "Team " + teamID})
		members = append(members, team.Membership{TournamentID: testTournamentID, TeamID: teamID, Position: i})
	}

	env := &testEnv{
		tournaments: memory.NewTournamentRepository([]tournament.Tournament{{ID: testTournamentID, Name: "Test Cup", Rounds: cycles}}),
		teams:       memory.NewTeamRepository(teams, members),
		phases:      memory.NewPhaseRepository(phases),
		matches:     memory.NewMatchRepository(nil),
		standingsDB: memory.NewStandingRepository(),
	}

	logger := logging.NewNop()
	env.standingService = NewStandingService(env.tournaments, env.matches, env.standingsDB, logger)
	env.phaseService = NewPhaseService(env.tournaments, env.phases, env.teams, env.matches, env.standingService, &sequenceIDGenerator{}, logger)
	env.phaseService.now = fixedClock
	env.matchService = NewMatchService(env.matches, env.standingService, logger)
	env.matchService.now = fixedClock

	return env
}

func testPhase(phaseID string, phaseType phase.Type, mutate func(*phase.Phase)) phase.Phase {
	p := phase.Phase{
		ID:           phaseID,
		TournamentID: testTournamentID,
		Number:       1,
		Name:         string(phaseType),
		Type:         phaseType,
		Status:       phase.StatusPending,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}
