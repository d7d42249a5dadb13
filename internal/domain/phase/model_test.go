package phase

import (
	"errors"
	"testing"
	"time"
)

func TestValidateForCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phase   Phase
		wantErr error
	}{
		{name: "round robin home away", phase: Phase{Name: "League", Type: TypeRoundRobin, HomeAway: true}},
		{name: "groups", phase: Phase{Name: "Groups", Type: TypeGroups, GroupsCount: 2, TeamsPerGroup: 4}},
		{name: "missing name", phase: Phase{Type: TypeRoundRobin}, wantErr: ErrConfiguration},
		{name: "unknown type", phase: Phase{Name: "X", Type: "swiss"}, wantErr: ErrUnsupportedType},
		{name: "groups home away", phase: Phase{Name: "G", Type: TypeGroups, HomeAway: true, GroupsCount: 2, TeamsPerGroup: 2}, wantErr: ErrConfiguration},
		{name: "one group", phase: Phase{Name: "G", Type: TypeGroups, GroupsCount: 1, TeamsPerGroup: 4}, wantErr: ErrConfiguration},
		{name: "one team per group", phase: Phase{Name: "G", Type: TypeGroups, GroupsCount: 2, TeamsPerGroup: 1}, wantErr: ErrConfiguration},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.phase.ValidateForCreate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateConfig_AllowsGroupsHomeAwayOnUpdate(t *testing.T) {
	t.Parallel()

	p := Phase{Name: "G", Type: TypeGroups, HomeAway: true, GroupsCount: 2, TeamsPerGroup: 2}
	if err := p.ValidateConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithTypeLockedAfterFixtures(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := Phase{Type: TypeRoundRobin, FixturesGeneratedAt: &generatedAt}
	if _, err := p.WithType(TypeGroups); !errors.Is(err, ErrTypeLocked) || !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected locked configuration error, got %v", err)
	}

	p.FixturesGeneratedAt = nil
	got, err := p.WithType(TypeGroups)
	if err != nil || got.Type != TypeGroups {
		t.Fatalf("unexpected result: type=%s err=%v", got.Type, err)
	}
}

func TestBracketSizeAndGroupsDefaults(t *testing.T) {
	t.Parallel()

	if got := (Phase{}).BracketSize(); got != DefaultBracketSize {
		t.Fatalf("unexpected bracket size: got=%d want=%d", got, DefaultBracketSize)
	}
	if got := (Phase{TeamsAdvance: 4}).BracketSize(); got != 4 {
		t.Fatalf("unexpected bracket size: got=%d want=4", got)
	}
	groups, perGroup := (Phase{}).GroupsConfig()
	if groups != DefaultGroupsCount || perGroup != DefaultTeamsPerGroup {
		t.Fatalf("unexpected groups defaults: %d/%d", groups, perGroup)
	}
}
