package match

import "testing"

func leg(home, away string, homeScore, awayScore int, status Status) Match {
	return Match{Home: TeamSlot(home), Away: TeamSlot(away), HomeScore: homeScore, AwayScore: awayScore, Status: status}
}

func TestTieWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		legs    []Match
		want    string
		decided bool
	}{
		{name: "no legs"},
		{name: "single leg", legs: []Match{leg("a", "b", 2, 0, StatusFinished)}, want: "a", decided: true},
		{name: "single leg draw", legs: []Match{leg("a", "b", 1, 1, StatusFinished)}},
		{
			name:    "aggregate away winner",
			legs:    []Match{leg("a", "b", 2, 1, StatusFinished), leg("b", "a", 3, 0, StatusFinished)},
			want:    "b",
			decided: true,
		},
		{
			name: "aggregate level",
			legs: []Match{leg("a", "b", 2, 1, StatusFinished), leg("b", "a", 1, 0, StatusFinished)},
		},
		{
			name: "second leg pending",
			legs: []Match{leg("a", "b", 4, 0, StatusFinished), leg("b", "a", 0, 0, StatusScheduled)},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, decided := TieWinner(tc.legs)
			if got != tc.want || decided != tc.decided {
				t.Fatalf("unexpected tie winner: got=%q/%v want=%q/%v", got, decided, tc.want, tc.decided)
			}
		})
	}
}
