package phase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/fixture"
)

var (
	ErrUnknownStatus     = errors.New("unknown phase status")
	ErrUnsupportedType   = errors.New("unsupported phase type")
	ErrInvalidTransition = errors.New("invalid phase status transition")
	ErrTypeLocked        = errors.New("phase type cannot change once fixtures exist")
	ErrConfiguration     = fixture.ErrConfiguration
	ErrNotEnoughTeams    = fmt.Errorf("%w: at least 2 teams are required", fixture.ErrConfiguration)
)

const (
	DefaultBracketSize   = 8
	DefaultGroupsCount   = 4
	DefaultTeamsPerGroup = 4
)

type Type string

const (
	TypeRoundRobin        Type = "round_robin"
	TypeSingleElimination Type = "single_elimination"
	TypeGroups            Type = "groups"
)

// Types lists every supported phase type in display order.
var Types = []Type{TypeRoundRobin, TypeSingleElimination, TypeGroups}

func ParseType(value string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(value))) {
	case TypeRoundRobin:
		return TypeRoundRobin, nil
	case TypeSingleElimination:
		return TypeSingleElimination, nil
	case TypeGroups:
		return TypeGroups, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, value)
	}
}

func (t Type) Label() string {
	switch t {
	case TypeRoundRobin:
		return "Round robin"
	case TypeSingleElimination:
		return "Single elimination"
	case TypeGroups:
		return "Groups"
	default:
		return string(t)
	}
}

// SupportsHomeAway reports whether the type can schedule return legs at creation time.
func (t Type) SupportsHomeAway() bool {
	return t == TypeRoundRobin || t == TypeSingleElimination
}

// Phase is one stage of a tournament with its own fixture schedule.
type Phase struct {
	ID                  string
	TournamentID        string
	Number              int
	Name                string
	Type                Type
	Status              Status
	HomeAway            bool
	TeamsAdvance        int
	GroupsCount         int
	TeamsPerGroup       int
	FixturesGeneratedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// BracketSize is the number of entrants of an elimination bracket.
func (p Phase) BracketSize() int {
	if p.TeamsAdvance > 0 {
		return p.TeamsAdvance
	}
	return DefaultBracketSize
}

func (p Phase) GroupsConfig() (groupsCount, teamsPerGroup int) {
	groupsCount, teamsPerGroup = p.GroupsCount, p.TeamsPerGroup
	if groupsCount <= 0 {
		groupsCount = DefaultGroupsCount
	}
	if teamsPerGroup <= 0 {
		teamsPerGroup = DefaultTeamsPerGroup
	}
	return groupsCount, teamsPerGroup
}

// ValidateConfig checks the type specific settings accepted when a phase is created.
func (p Phase) ValidateConfig() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: phase name is required", ErrConfiguration)
	}
	if _, err := ParseType(string(p.Type)); err != nil {
		return err
	}
	if p.TeamsAdvance < 0 {
		return fmt.Errorf("%w: teams advance must be >= 0", ErrConfiguration)
	}
	if p.Type == TypeGroups {
		if p.GroupsCount < 2 {
			return fmt.Errorf("%w: groups phase needs at least 2 groups", ErrConfiguration)
		}
		if p.TeamsPerGroup < 2 {
			return fmt.Errorf("%w: groups phase needs at least 2 teams per group", ErrConfiguration)
		}
	}

	return nil
}

// ValidateForCreate adds the creation only rules on top of ValidateConfig.
func (p Phase) ValidateForCreate() error {
	if err := p.ValidateConfig(); err != nil {
		return err
	}
	if p.HomeAway && !p.Type.SupportsHomeAway() {
		return fmt.Errorf("%w: home and away is only available for round robin and single elimination", ErrConfiguration)
	}
	return nil
}

// WithType changes the phase type unless fixtures were already generated.
func (p Phase) WithType(t Type) (Phase, error) {
	if p.Type == t {
		return p, nil
	}
	if p.FixturesGeneratedAt != nil {
		return p, fmt.Errorf("%w: %w", ErrConfiguration, ErrTypeLocked)
	}
	p.Type = t
	return p, nil
}
