package match

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus(" Finished ")
	if err != nil {
		t.Fatalf("parse status: %v", err)
	}
	if got != StatusFinished {
		t.Fatalf("unexpected status: got=%s want=%s", got, StatusFinished)
	}

	if _, err := ParseStatus("postponed"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestMatchWinnerTeamID(t *testing.T) {
	t.Parallel()

	m := Match{Home: TeamSlot("a"), Away: TeamSlot("b"), Status: StatusFinished, HomeScore: 1, AwayScore: 3}
	winner, ok := m.WinnerTeamID()
	if !ok || winner != "b" {
		t.Fatalf("unexpected winner: got=%s ok=%v", winner, ok)
	}

	m.AwayScore = 1
	if _, ok := m.WinnerTeamID(); ok {
		t.Fatalf("draw must not produce a winner")
	}

	pending := Match{Home: WinnerOfSlot("m1"), Away: TeamSlot("b"), Status: StatusFinished, HomeScore: 2}
	if _, ok := pending.WinnerTeamID(); ok {
		t.Fatalf("unresolved match must not produce a winner")
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	base := Match{ID: "m1", PhaseID: "p1", TournamentID: "t1", Round: 1, Home: TeamSlot("a"), Away: TeamSlot("b")}
	if err := base.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	same := base
	same.Away = TeamSlot("a")
	if err := same.Validate(); err == nil {
		t.Fatalf("expected error for identical teams")
	}

	negative := base
	negative.HomeScore = -1
	if err := negative.Validate(); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}
