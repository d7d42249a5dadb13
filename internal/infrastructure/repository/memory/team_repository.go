package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-tournament/internal/domain/team"
)

type TeamRepository struct {
	mu                  sync.RWMutex
	teams               map[string]team.Team
	membersByTournament map[string][]team.Membership
}

func NewTeamRepository(teams []team.Team, memberships []team.Membership) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	members := make(map[string][]team.Membership)
	for _, item := range memberships {
		members[item.TournamentID] = append(members[item.TournamentID], item)
	}

	return &TeamRepository{teams: byID, membersByTournament: members}
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]team.Membership, len(r.membersByTournament[tournamentID]))
	copy(members, r.membersByTournament[tournamentID])
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.TeamID < b.TeamID
	})

	out := make([]team.Team, 0, len(members))
	for _, member := range members {
		if item, ok := r.teams[member.TeamID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}
