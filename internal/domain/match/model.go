package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownStatus   = errors.New("unknown match status")
	ErrUnknownSlotKind = errors.New("unknown slot kind")
	ErrInvalidScore    = errors.New("invalid match score")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusLive:
		return StatusLive, nil
	case StatusFinished:
		return StatusFinished, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
	}
}

type SlotKind string

const (
	SlotTeam     SlotKind = "team"
	SlotSeed     SlotKind = "seed"
	SlotWinnerOf SlotKind = "winner_of"
)

func ParseSlotKind(value string) (SlotKind, error) {
	switch SlotKind(value) {
	case SlotTeam, SlotSeed, SlotWinnerOf:
		return SlotKind(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSlotKind, value)
	}
}

// Slot is one side of a match: a known team, a bracket seed, or the winner of another match.
type Slot struct {
	Kind    SlotKind
	TeamID  string
	Seed    int
	MatchID string
}

func TeamSlot(teamID string) Slot {
	return Slot{Kind: SlotTeam, TeamID: teamID}
}

func SeedSlot(seed int) Slot {
	return Slot{Kind: SlotSeed, Seed: seed}
}

func WinnerOfSlot(matchID string) Slot {
	return Slot{Kind: SlotWinnerOf, MatchID: matchID}
}

// Resolved reports whether the slot already names a team.
func (s Slot) Resolved() bool {
	return s.TeamID != ""
}

// Ref is the persisted reference of a pending slot.
func (s Slot) Ref() string {
	switch s.Kind {
	case SlotSeed:
		return fmt.Sprintf("%d", s.Seed)
	case SlotWinnerOf:
		return s.MatchID
	default:
		return s.TeamID
	}
}

// Match is one fixture inside a tournament phase.
type Match struct {
	ID                 string
	TournamentID       string
	PhaseID            string
	Round              int
	GroupNumber        int
	MatchType          string
	Leg                int
	BracketPosition    int
	Home               Slot
	Away               Slot
	Status             Status
	HomeScore          int
	AwayScore          int
	StandingsAppliedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (m Match) TeamsResolved() bool {
	return m.Home.Resolved() && m.Away.Resolved()
}

func (m Match) IsFinished() bool {
	return m.Status == StatusFinished
}

// WinnerTeamID returns the single-leg winner. Level scores have no winner.
func (m Match) WinnerTeamID() (string, bool) {
	if !m.IsFinished() || !m.TeamsResolved() {
		return "", false
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return m.Home.TeamID, true
	case m.AwayScore > m.HomeScore:
		return m.Away.TeamID, true
	default:
		return "", false
	}
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.PhaseID == "" {
		return fmt.Errorf("match phase id is required")
	}
	if m.TournamentID == "" {
		return fmt.Errorf("match tournament id is required")
	}
	if m.Round < 1 {
		return fmt.Errorf("match round must be >= 1")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("%w: scores must be >= 0", ErrInvalidScore)
	}
	if m.TeamsResolved() && m.Home.TeamID == m.Away.TeamID {
		return fmt.Errorf("match teams must differ")
	}

	return nil
}
