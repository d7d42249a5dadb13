package fixture

import (
	"math/bits"

	crerr "github.com/cockroachdb/errors"
)

const (
	MatchTypeRegular      = "regular"
	MatchTypeGroup        = "group"
	MatchTypeElimination  = "elimination"
	MatchTypeQuarterfinal = "quarterfinal"
	MatchTypeSemifinal    = "semifinal"
	MatchTypeFinal        = "final"

	ReturnLegSuffix = "_return"
)

type BracketSlotKind string

const (
	BracketSlotSeed   BracketSlotKind = "seed"
	BracketSlotWinner BracketSlotKind = "winner"
)

// BracketSlot is one side of a knockout tie before teams are known.
// Seed slots carry a 1-based seed; winner slots point at a feeder tie of the previous round.
type BracketSlot struct {
	Kind     BracketSlotKind
	Seed     int
	Round    int
	Position int
}

func SeedSlot(seed int) BracketSlot {
	return BracketSlot{Kind: BracketSlotSeed, Seed: seed}
}

func WinnerSlot(round, position int) BracketSlot {
	return BracketSlot{Kind: BracketSlotWinner, Round: round, Position: position}
}

// Tie is one knockout match. Second legs share round and position with their first leg.
type Tie struct {
	Round     int
	Position  int
	Leg       int
	MatchType string
	Home      BracketSlot
	Away      BracketSlot
}

type BracketRound struct {
	Number int
	Ties   []Tie
}

// GenerateSingleElimination builds the full bracket for entrants teams. The bracket is padded to the
// next power of two; seeds without an opponent skip the first round and enter round 2 as seed slots.
func GenerateSingleElimination(entrants int, homeAway bool) ([]BracketRound, error) {
	if entrants < 2 {
		return nil, crerr.Wrapf(ErrConfiguration, "bracket needs at least 2 entrants, got %d", entrants)
	}

	bracketSize := BracketSize(entrants)
	totalRounds := bits.TrailingZeros(uint(bracketSize))
	legs := 1
	if homeAway {
		legs = 2
	}

	rounds := make([]BracketRound, 0, totalRounds)
	byes := make(map[int]BracketSlot)
	ties := bracketSize / 2
	for r := 1; r <= totalRounds; r++ {
		label := EliminationMatchType(r, totalRounds)
		round := BracketRound{Number: r, Ties: make([]Tie, 0, ties*legs)}
		for k := 1; k <= ties; k++ {
			var home, away BracketSlot
			switch {
			case r == 1 && bracketSize+1-k > entrants:
				byes[k] = SeedSlot(k)
				continue
			case r == 1:
				home, away = SeedSlot(k), SeedSlot(bracketSize+1-k)
			case r == 2:
				home, away = feederSlot(byes, 2*k-1), feederSlot(byes, 2*k)
			default:
				home, away = WinnerSlot(r-1, 2*k-1), WinnerSlot(r-1, 2*k)
			}

			round.Ties = append(round.Ties, Tie{
				Round: r, Position: k, Leg: 1, MatchType: label, Home: home, Away: away,
			})
			if homeAway {
				round.Ties = append(round.Ties, Tie{
					Round: r, Position: k, Leg: 2, MatchType: label + ReturnLegSuffix, Home: away, Away: home,
				})
			}
		}
		rounds = append(rounds, round)
		ties /= 2
	}

	return rounds, nil
}

// BracketSize rounds entrants up to the next power of two.
func BracketSize(entrants int) int {
	if entrants <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(entrants-1))
}

func feederSlot(byes map[int]BracketSlot, position int) BracketSlot {
	if seed, ok := byes[position]; ok {
		return seed
	}
	return WinnerSlot(1, position)
}

// EliminationMatchType labels a knockout round counted from the first round.
func EliminationMatchType(round, totalRounds int) string {
	switch totalRounds - round {
	case 0:
		return MatchTypeFinal
	case 1:
		return MatchTypeSemifinal
	case 2:
		return MatchTypeQuarterfinal
	default:
		return MatchTypeElimination
	}
}
