package team

import (
	"fmt"
	"time"
)

// Team is a club registered in one or more tournaments.
type Team struct {
	ID        string
	Name      string
	ShieldURL string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Membership places a team inside a tournament. Position drives fixture order.
type Membership struct {
	TournamentID string
	TeamID       string
	Position     int
	JoinedAt     time.Time
}
