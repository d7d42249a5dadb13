package fixture

// Pairing is one scheduled meeting between two teams.
type Pairing struct {
	Home string
	Away string
}

// Round is a numbered set of pairings. No team appears twice in the same round.
type Round struct {
	Number   int
	Pairings []Pairing
}

const byeSlot = -1

// GenerateRoundRobin builds a circle-method schedule where every team meets every other team once,
// or twice with swapped venues when homeAway is set. Odd team counts get a bye each round.
func GenerateRoundRobin(teamIDs []string, homeAway bool) []Round {
	if len(teamIDs) < 2 {
		return nil
	}

	slots := make([]int, 0, len(teamIDs)+1)
	for i := range teamIDs {
		slots = append(slots, i)
	}
	if len(slots)%2 == 1 {
		slots = append(slots, byeSlot)
	}

	n := len(slots)
	totalRounds := n - 1
	matchesPerRound := n / 2

	capacity := totalRounds
	if homeAway {
		capacity *= 2
	}
	rounds := make([]Round, 0, capacity)
	for r := 0; r < totalRounds; r++ {
		pairings := make([]Pairing, 0, matchesPerRound)
		for i := 0; i < matchesPerRound; i++ {
			home, away := slots[i], slots[n-1-i]
			if home == byeSlot || away == byeSlot {
				continue
			}
			pairings = append(pairings, Pairing{Home: teamIDs[home], Away: teamIDs[away]})
		}
		rounds = append(rounds, Round{Number: r + 1, Pairings: pairings})
		rotate(slots)
	}

	if homeAway {
		for r := 0; r < totalRounds; r++ {
			rounds = append(rounds, Round{
				Number:   r + 1 + totalRounds,
				Pairings: mirror(rounds[r].Pairings),
			})
		}
	}

	return rounds
}

// GenerateRoundRobinCycles repeats the round-robin schedule cycles times, numbering rounds
// contiguously across cycles.
func GenerateRoundRobinCycles(teamIDs []string, homeAway bool, cycles int) []Round {
	if cycles < 1 {
		cycles = 1
	}

	base := GenerateRoundRobin(teamIDs, homeAway)
	if len(base) == 0 {
		return nil
	}

	out := make([]Round, 0, len(base)*cycles)
	for c := 0; c < cycles; c++ {
		offset := c * len(base)
		for _, round := range base {
			pairings := make([]Pairing, len(round.Pairings))
			copy(pairings, round.Pairings)
			out = append(out, Round{Number: round.Number + offset, Pairings: pairings})
		}
	}

	return out
}

// CountPairings returns the total number of pairings across rounds.
func CountPairings(rounds []Round) int {
	total := 0
	for _, round := range rounds {
		total += len(round.Pairings)
	}
	return total
}

// rotate keeps index 0 fixed, moves the last slot to index 1 and shifts the rest right.
func rotate(slots []int) {
	if len(slots) < 3 {
		return
	}
	last := slots[len(slots)-1]
	copy(slots[2:], slots[1:len(slots)-1])
	slots[1] = last
}

func mirror(pairings []Pairing) []Pairing {
	out := make([]Pairing, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, Pairing{Home: p.Away, Away: p.Home})
	}
	return out
}
