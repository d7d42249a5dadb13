package memory

import (
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
)

const (
	TournamentIDCopaBarrio  = "copa-barrio-2026"
	TournamentIDLigaVecinal = "liga-vecinal-2026"

	PhaseIDCopaBarrioGroups   = "copa-barrio-2026-groups"
	PhaseIDCopaBarrioKnockout = "copa-barrio-2026-knockout"
	PhaseIDLigaVecinalLeague  = "liga-vecinal-2026-league"
)

var seedCreatedAt = time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{ID: TournamentIDCopaBarrio, Name: "Copa Barrio 2026", Rounds: 1, CreatedAt: seedCreatedAt},
		{ID: TournamentIDLigaVecinal, Name: "Liga Vecinal 2026", Rounds: 2, CreatedAt: seedCreatedAt},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-atletico-norte", Name: "Atletico Norte"},
		{ID: "team-deportivo-sur", Name: "Deportivo Sur"},
		{ID: "team-real-plaza", Name: "Real Plaza"},
		{ID: "team-union-centro", Name: "Union Centro"},
		{ID: "team-sporting-rio", Name: "Sporting Rio"},
		{ID: "team-estrella-roja", Name: "Estrella Roja"},
		{ID: "team-juventud-alta", Name: "Juventud Alta"},
		{ID: "team-racing-puerto", Name: "Racing Puerto"},
	}
}

// SeedMemberships registers all eight teams in the cup and the first five in the league.
func SeedMemberships() []team.Membership {
	teams := SeedTeams()
	out := make([]team.Membership, 0, len(teams)+5)
	for idx, item := range teams {
		out = append(out, team.Membership{
			TournamentID: TournamentIDCopaBarrio,
			TeamID:       item.ID,
			Position:     idx + 1,
			JoinedAt:     seedCreatedAt,
		})
	}
	for idx, item := range teams[:5] {
		out = append(out, team.Membership{
			TournamentID: TournamentIDLigaVecinal,
			TeamID:       item.ID,
			Position:     idx + 1,
			JoinedAt:     seedCreatedAt,
		})
	}

	return out
}

func SeedPhases() []phase.Phase {
	return []phase.Phase{
		{
			ID:            PhaseIDCopaBarrioGroups,
			TournamentID:  TournamentIDCopaBarrio,
			Number:        1,
			Name:          "Group stage",
			Type:          phase.TypeGroups,
			Status:        phase.StatusPending,
			GroupsCount:   2,
			TeamsPerGroup: 4,
			CreatedAt:     seedCreatedAt,
			UpdatedAt:     seedCreatedAt,
		},
		{
			ID:           PhaseIDCopaBarrioKnockout,
			TournamentID: TournamentIDCopaBarrio,
			Number:       2,
			Name:         "Knockout",
			Type:         phase.TypeSingleElimination,
			Status:       phase.StatusPending,
			HomeAway:     true,
			TeamsAdvance: 4,
			CreatedAt:    seedCreatedAt,
			UpdatedAt:    seedCreatedAt,
		},
		{
			ID:           PhaseIDLigaVecinalLeague,
			TournamentID: TournamentIDLigaVecinal,
			Number:       1,
			Name:         "Regular season",
			Type:         phase.TypeRoundRobin,
			Status:       phase.StatusPending,
			HomeAway:     true,
			CreatedAt:    seedCreatedAt,
			UpdatedAt:    seedCreatedAt,
		},
	}
}
