package tournament

import (
	"fmt"
	"time"
)

// Tournament groups teams, phases and standings.
type Tournament struct {
	ID        string
	Name      string
	Rounds    int
	CreatedAt time.Time
}

// Cycles returns how many times a round-robin schedule is repeated.
func (t Tournament) Cycles() int {
	if t.Rounds < 1 {
		return 1
	}
	return t.Rounds
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Rounds < 0 {
		return fmt.Errorf("tournament rounds must be >= 0")
	}

	return nil
}
