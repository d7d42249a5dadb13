package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/fixture"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	"github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type PhaseService struct {
	tournamentRepo tournament.Repository
	phaseRepo      phase.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	standings      *StandingService
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewPhaseService(
	tournamentRepo tournament.Repository,
	phaseRepo phase.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	standings *StandingService,
	idGen id.Generator,
	logger *logging.Logger,
) *PhaseService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PhaseService{
		tournamentRepo: tournamentRepo,
		phaseRepo:      phaseRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		standings:      standings,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

type CreatePhaseInput struct {
	TournamentID  string
	Name          string
	Type          string
	HomeAway      bool
	TeamsAdvance  int
	GroupsCount   int
	TeamsPerGroup int
}

// UpdatePhaseInput carries optional changes; nil fields are left untouched.
type UpdatePhaseInput struct {
	Name          *string
	Type          *string
	HomeAway      *bool
	TeamsAdvance  *int
	GroupsCount   *int
	TeamsPerGroup *int
}

type GenerateFixturesResult struct {
	PhaseID        string
	MatchesCreated int
	TotalRounds    int
}

type PhaseProgress struct {
	Phase              phase.Phase
	Progress           phase.Progress
	CanBeStarted       bool
	CanBeCompleted     bool
	CanBeCancelled     bool
	ShouldAutoComplete bool
}

type PhaseTypeInfo struct {
	Type             phase.Type
	Label            string
	SupportsHomeAway bool
}

type PhaseStatusInfo struct {
	Status      phase.Status
	Transitions []phase.Status
	Terminal    bool
}

type PhaseCatalog struct {
	Types    []PhaseTypeInfo
	Statuses []PhaseStatusInfo
}

func (s *PhaseService) CreatePhase(ctx context.Context, input CreatePhaseInput) (phase.Phase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.CreatePhase")
	defer span.End()

	tournamentID := strings.TrimSpace(input.TournamentID)
	if tournamentID == "" {
		return phase.Phase{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if _, err := s.getTournament(ctx, tournamentID); err != nil {
		return phase.Phase{}, err
	}

	phaseType, err := phase.ParseType(input.Type)
	if err != nil {
		return phase.Phase{}, err
	}

	item := phase.Phase{
		TournamentID:  tournamentID,
		Name:          strings.TrimSpace(input.Name),
		Type:          phaseType,
		Status:        phase.StatusPending,
		HomeAway:      input.HomeAway,
		TeamsAdvance:  input.TeamsAdvance,
		GroupsCount:   input.GroupsCount,
		TeamsPerGroup: input.TeamsPerGroup,
	}
	if err := item.ValidateForCreate(); err != nil {
		return phase.Phase{}, err
	}

	maxNumber, err := s.phaseRepo.MaxNumber(ctx, tournamentID)
	if err != nil {
		return phase.Phase{}, fmt.Errorf("get max phase number: %w", err)
	}
	phaseID, err := s.idGen.NewID()
	if err != nil {
		return phase.Phase{}, fmt.Errorf("generate phase id: %w", err)
	}

	now := s.now().UTC()
	item.ID = phaseID
	item.Number = maxNumber + 1
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.phaseRepo.Create(ctx, item); err != nil {
		return phase.Phase{}, fmt.Errorf("create phase: %w", err)
	}

	s.logger.InfoContext(ctx, "phase created",
		"tournament_id", tournamentID,
		"phase_id", item.ID,
		"phase_number", item.Number,
		"phase_type", item.Type,
	)
	return item, nil
}

func (s *PhaseService) UpdatePhase(ctx context.Context, phaseID string, input UpdatePhaseInput) (phase.Phase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.UpdatePhase")
	defer span.End()

	item, err := s.GetPhase(ctx, phaseID)
	if err != nil {
		return phase.Phase{}, err
	}

	if input.Type != nil {
		phaseType, err := phase.ParseType(*input.Type)
		if err != nil {
			return phase.Phase{}, err
		}
		if item, err = item.WithType(phaseType); err != nil {
			return phase.Phase{}, err
		}
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.HomeAway != nil {
		item.HomeAway = *input.HomeAway
	}
	if input.TeamsAdvance != nil {
		item.TeamsAdvance = *input.TeamsAdvance
	}
	if input.GroupsCount != nil {
		item.GroupsCount = *input.GroupsCount
	}
	if input.TeamsPerGroup != nil {
		item.TeamsPerGroup = *input.TeamsPerGroup
	}
	if err := item.ValidateConfig(); err != nil {
		return phase.Phase{}, err
	}

	item.UpdatedAt = s.now().UTC()
	if err := s.phaseRepo.Update(ctx, item); err != nil {
		return phase.Phase{}, fmt.Errorf("update phase: %w", err)
	}
	return item, nil
}

func (s *PhaseService) GetPhase(ctx context.Context, phaseID string) (phase.Phase, error) {
	phaseID = strings.TrimSpace(phaseID)
	if phaseID == "" {
		return phase.Phase{}, fmt.Errorf("%w: phase id is required", ErrInvalidInput)
	}

	item, exists, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return phase.Phase{}, fmt.Errorf("get phase: %w", err)
	}
	if !exists {
		return phase.Phase{}, fmt.Errorf("%w: phase=%s", ErrNotFound, phaseID)
	}

	return item, nil
}

func (s *PhaseService) ListPhases(ctx context.Context, tournamentID string) ([]phase.Phase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.ListPhases")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if _, err := s.getTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	items, err := s.phaseRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}

	return items, nil
}

// DeletePhase removes the phase together with its matches. Standings are rebuilt when any of
// those matches had been counted.
func (s *PhaseService) DeletePhase(ctx context.Context, phaseID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.DeletePhase")
	defer span.End()

	item, err := s.GetPhase(ctx, phaseID)
	if err != nil {
		return err
	}

	counted, err := s.hasCountedMatches(ctx, item.ID)
	if err != nil {
		return err
	}
	if err := s.matchRepo.DeleteByPhase(ctx, item.ID); err != nil {
		return fmt.Errorf("delete phase matches: %w", err)
	}
	if err := s.phaseRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete phase: %w", err)
	}
	if counted {
		if err := s.rebuildStandings(ctx, item, "phase deleted"); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "phase deleted", "tournament_id", item.TournamentID, "phase_id", item.ID)
	return nil
}

func (s *PhaseService) hasCountedMatches(ctx context.Context, phaseID string) (bool, error) {
	if s.standings == nil {
		return false, nil
	}

	items, err := s.matchRepo.ListByPhase(ctx, phaseID)
	if err != nil {
		return false, fmt.Errorf("list phase matches: %w", err)
	}
	for _, m := range items {
		if m.IsFinished() {
			return true, nil
		}
	}
	return false, nil
}

func (s *PhaseService) rebuildStandings(ctx context.Context, item phase.Phase, reason string) error {
	s.logger.InfoContext(ctx, "phase matches with results removed, rebuilding standings",
		"tournament_id", item.TournamentID,
		"phase_id", item.ID,
		"reason", reason,
	)
	if _, err := s.standings.Recalculate(ctx, item.TournamentID); err != nil {
		return fmt.Errorf("rebuild standings: %w", err)
	}
	return nil
}

func (s *PhaseService) ListPhaseTypes() PhaseCatalog {
	out := PhaseCatalog{
		Types:    make([]PhaseTypeInfo, 0, len(phase.Types)),
		Statuses: make([]PhaseStatusInfo, 0, len(phase.Statuses)),
	}
	for _, t := range phase.Types {
		out.Types = append(out.Types, PhaseTypeInfo{Type: t, Label: t.Label(), SupportsHomeAway: t.SupportsHomeAway()})
	}
	for _, st := range phase.Statuses {
		out.Statuses = append(out.Statuses, PhaseStatusInfo{
			Status:      st,
			Transitions: st.AllowedTransitions(),
			Terminal:    st.IsTerminal(),
		})
	}
	return out
}

// GenerateFixtures replaces every match of the phase with a freshly generated schedule.
func (s *PhaseService) GenerateFixtures(ctx context.Context, tournamentID, phaseID string) (GenerateFixturesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.GenerateFixtures",
		attribute.String("tournament.id", tournamentID),
		attribute.String("phase.id", phaseID),
	)
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return GenerateFixturesResult{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	tour, err := s.getTournament(ctx, tournamentID)
	if err != nil {
		return GenerateFixturesResult{}, err
	}
	item, err := s.GetPhase(ctx, phaseID)
	if err != nil {
		return GenerateFixturesResult{}, err
	}
	if item.TournamentID != tour.ID {
		return GenerateFixturesResult{}, fmt.Errorf("%w: phase=%s tournament=%s", ErrNotFound, item.ID, tour.ID)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tour.ID)
	if err != nil {
		return GenerateFixturesResult{}, fmt.Errorf("list tournament teams: %w", err)
	}
	if len(teams) < 2 {
		return GenerateFixturesResult{}, fmt.Errorf("%w: tournament=%s has %d", phase.ErrNotEnoughTeams, tour.ID, len(teams))
	}
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	builder := matchBuilder{phase: item, idGen: s.idGen, now: s.now().UTC()}
	var totalRounds int
	switch item.Type {
	case phase.TypeRoundRobin:
		totalRounds, err = builder.roundRobin(teamIDs, tour.Cycles())
	case phase.TypeSingleElimination:
		totalRounds, err = builder.singleElimination(teamIDs)
	case phase.TypeGroups:
		totalRounds, err = builder.groups(teamIDs)
	default:
		err = fmt.Errorf("%w: %q", phase.ErrUnsupportedType, item.Type)
	}
	if err != nil {
		return GenerateFixturesResult{}, err
	}

	counted, err := s.hasCountedMatches(ctx, item.ID)
	if err != nil {
		return GenerateFixturesResult{}, err
	}
	if err := s.matchRepo.ReplaceByPhase(ctx, item.ID, builder.matches); err != nil {
		return GenerateFixturesResult{}, fmt.Errorf("replace phase matches: %w", err)
	}
	if counted {
		if err := s.rebuildStandings(ctx, item, "fixtures regenerated"); err != nil {
			return GenerateFixturesResult{}, err
		}
	}

	generatedAt := builder.now
	item.FixturesGeneratedAt = &generatedAt
	item.UpdatedAt = generatedAt
	if err := s.phaseRepo.Update(ctx, item); err != nil {
		return GenerateFixturesResult{}, fmt.Errorf("mark fixtures generated: %w", err)
	}

	s.logger.InfoContext(ctx, "phase fixtures generated",
		"tournament_id", tour.ID,
		"phase_id", item.ID,
		"phase_type", item.Type,
		"matches_created", len(builder.matches),
		"total_rounds", totalRounds,
	)

	return GenerateFixturesResult{
		PhaseID:        item.ID,
		MatchesCreated: len(builder.matches),
		TotalRounds:    totalRounds,
	}, nil
}

func (s *PhaseService) StartPhase(ctx context.Context, phaseID string) (phase.Phase, error) {
	return s.transition(ctx, phaseID, phase.StatusActive)
}

func (s *PhaseService) CompletePhase(ctx context.Context, phaseID string) (phase.Phase, error) {
	return s.transition(ctx, phaseID, phase.StatusCompleted)
}

func (s *PhaseService) CancelPhase(ctx context.Context, phaseID string) (phase.Phase, error) {
	return s.transition(ctx, phaseID, phase.StatusCancelled)
}

// ChangeStatus applies a status received from outside after parsing it.
func (s *PhaseService) ChangeStatus(ctx context.Context, phaseID, status string) (phase.Phase, error) {
	to, err := phase.ParseStatus(status)
	if err != nil {
		return phase.Phase{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.transition(ctx, phaseID, to)
}

func (s *PhaseService) transition(ctx context.Context, phaseID string, to phase.Status) (phase.Phase, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.ChangeStatus",
		attribute.String("phase.id", phaseID),
		attribute.String("phase.status", string(to)),
	)
	defer span.End()

	item, err := s.GetPhase(ctx, phaseID)
	if err != nil {
		return phase.Phase{}, err
	}

	from := item.Status
	next, err := item.TransitionTo(to)
	if err != nil {
		return item, err
	}
	next.UpdatedAt = s.now().UTC()
	if err := s.phaseRepo.Update(ctx, next); err != nil {
		return item, fmt.Errorf("update phase status: %w", err)
	}

	s.logger.InfoContext(ctx, "phase status changed",
		"tournament_id", next.TournamentID,
		"phase_id", next.ID,
		"from", from,
		"to", next.Status,
	)
	return next, nil
}

func (s *PhaseService) GetPhaseProgress(ctx context.Context, phaseID string) (PhaseProgress, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhaseService.GetPhaseProgress")
	defer span.End()

	item, err := s.GetPhase(ctx, phaseID)
	if err != nil {
		return PhaseProgress{}, err
	}

	matches, err := s.matchRepo.ListByPhase(ctx, item.ID)
	if err != nil {
		return PhaseProgress{}, fmt.Errorf("list phase matches: %w", err)
	}

	return newPhaseProgress(item, phase.NewProgress(matches)), nil
}

func (s *PhaseService) getTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}

// matchBuilder turns scheduler output into persisted matches for one phase.
type matchBuilder struct {
	phase   phase.Phase
	idGen   id.Generator
	now     time.Time
	matches []match.Match
}

func (b *matchBuilder) add(m match.Match) (string, error) {
	matchID, err := b.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate match id: %w", err)
	}

	m.ID = matchID
	m.TournamentID = b.phase.TournamentID
	m.PhaseID = b.phase.ID
	m.Status = match.StatusScheduled
	m.CreatedAt = b.now
	m.UpdatedAt = b.now
	if m.Leg == 0 {
		m.Leg = 1
	}
	b.matches = append(b.matches, m)
	return matchID, nil
}

func (b *matchBuilder) roundRobin(teamIDs []string, cycles int) (int, error) {
	rounds := fixture.GenerateRoundRobinCycles(teamIDs, b.phase.HomeAway, cycles)
	cycleLen := len(rounds) / max(cycles, 1)

	for _, round := range rounds {
		leg := 1
		if b.phase.HomeAway && cycleLen > 0 && (round.Number-1)%cycleLen >= cycleLen/2 {
			leg = 2
		}
		for _, p := range round.Pairings {
			if _, err := b.add(match.Match{
				Round:     round.Number,
				MatchType: fixture.MatchTypeRegular,
				Leg:       leg,
				Home:      match.TeamSlot(p.Home),
				Away:      match.TeamSlot(p.Away),
			}); err != nil {
				return 0, err
			}
		}
	}

	return len(rounds), nil
}

func (b *matchBuilder) singleElimination(teamIDs []string) (int, error) {
	size := b.phase.BracketSize()
	bracket, err := fixture.GenerateSingleElimination(size, b.phase.HomeAway)
	if err != nil {
		return 0, err
	}
	if len(teamIDs) < size {
		return 0, fmt.Errorf("%w: bracket of %d needs %d teams, tournament has %d",
			phase.ErrConfiguration, size, size, len(teamIDs))
	}

	firstLegs := make(map[[2]int]string)
	slot := func(ref fixture.BracketSlot) match.Slot {
		if ref.Kind == fixture.BracketSlotSeed {
			resolved := match.SeedSlot(ref.Seed)
			resolved.TeamID = teamIDs[ref.Seed-1]
			return resolved
		}
		return match.WinnerOfSlot(firstLegs[[2]int{ref.Round, ref.Position}])
	}

	for _, round := range bracket {
		for _, tie := range round.Ties {
			matchID, err := b.add(match.Match{
				Round:           tie.Round,
				MatchType:       tie.MatchType,
				Leg:             tie.Leg,
				BracketPosition: tie.Position,
				Home:            slot(tie.Home),
				Away:            slot(tie.Away),
			})
			if err != nil {
				return 0, err
			}
			if tie.Leg == 1 {
				firstLegs[[2]int{tie.Round, tie.Position}] = matchID
			}
		}
	}

	return len(bracket), nil
}

func (b *matchBuilder) groups(teamIDs []string) (int, error) {
	groupsCount, teamsPerGroup := b.phase.GroupsConfig()
	groups, err := fixture.GenerateGroups(teamIDs, groupsCount, teamsPerGroup, b.phase.HomeAway)
	if err != nil {
		return 0, err
	}

	totalRounds := 0
	for _, group := range groups {
		totalRounds = max(totalRounds, len(group.Rounds))
		for _, round := range group.Rounds {
			for _, p := range round.Pairings {
				if _, err := b.add(match.Match{
					Round:       round.Number,
					GroupNumber: group.Number,
					MatchType:   fixture.MatchTypeGroup,
					Leg:         round.Number,
					Home:        match.TeamSlot(p.Home),
					Away:        match.TeamSlot(p.Away),
				}); err != nil {
					return 0, err
				}
			}
		}
	}

	return totalRounds, nil
}
