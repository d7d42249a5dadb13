package httpapi

import (
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/phase"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type createPhaseRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Type          string `json:"type" validate:"required"`
	HomeAway      bool   `json:"home_away"`
	TeamsAdvance  int    `json:"teams_advance" validate:"gte=0"`
	GroupsCount   int    `json:"groups_count" validate:"gte=0"`
	TeamsPerGroup int    `json:"teams_per_group" validate:"gte=0"`
}

type updatePhaseRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type          *string `json:"type" validate:"omitempty,min=1"`
	HomeAway      *bool   `json:"home_away"`
	TeamsAdvance  *int    `json:"teams_advance" validate:"omitempty,gte=0"`
	GroupsCount   *int    `json:"groups_count" validate:"omitempty,gte=0"`
	TeamsPerGroup *int    `json:"teams_per_group" validate:"omitempty,gte=0"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type recordResultRequest struct {
	HomeScore *int   `json:"home_score" validate:"required,gte=0"`
	AwayScore *int   `json:"away_score" validate:"required,gte=0"`
	Status    string `json:"status" validate:"required"`
}

type phaseDTO struct {
	ID                  string  `json:"id"`
	TournamentID        string  `json:"tournament_id"`
	Number              int     `json:"number"`
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	HomeAway            bool    `json:"home_away"`
	TeamsAdvance        int     `json:"teams_advance"`
	GroupsCount         int     `json:"groups_count"`
	TeamsPerGroup       int     `json:"teams_per_group"`
	FixturesGeneratedAt *string `json:"fixtures_generated_at"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type slotDTO struct {
	Kind    string `json:"kind"`
	TeamID  string `json:"team_id,omitempty"`
	Seed    int    `json:"seed,omitempty"`
	MatchID string `json:"match_id,omitempty"`
}

type matchDTO struct {
	ID              string  `json:"id"`
	TournamentID    string  `json:"tournament_id"`
	PhaseID         string  `json:"phase_id"`
	Round           int     `json:"round"`
	GroupNumber     int     `json:"group_number,omitempty"`
	MatchType       string  `json:"match_type"`
	Leg             int     `json:"leg"`
	BracketPosition int     `json:"bracket_position,omitempty"`
	Home            slotDTO `json:"home"`
	Away            slotDTO `json:"away"`
	Status          string  `json:"status"`
	HomeScore       int     `json:"home_score"`
	AwayScore       int     `json:"away_score"`
	UpdatedAt       string  `json:"updated_at"`
}

type standingDTO struct {
	TeamID         string `json:"team_id"`
	GroupNumber    int    `json:"group_number"`
	Position       int    `json:"position"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type generateFixturesDTO struct {
	PhaseID        string `json:"phase_id"`
	MatchesCreated int    `json:"matches_created"`
	TotalRounds    int    `json:"total_rounds"`
}

type progressDTO struct {
	Phase                phaseDTO `json:"phase"`
	Total                int      `json:"total"`
	Scheduled            int      `json:"scheduled"`
	Live                 int      `json:"live"`
	Finished             int      `json:"finished"`
	CompletionPercentage float64  `json:"completion_percentage"`
	CanBeStarted         bool     `json:"can_be_started"`
	CanBeCompleted       bool     `json:"can_be_completed"`
	CanBeCancelled       bool     `json:"can_be_cancelled"`
	ShouldAutoComplete   bool     `json:"should_auto_complete"`
}

type phaseTypeDTO struct {
	Type             string `json:"type"`
	Label            string `json:"label"`
	SupportsHomeAway bool   `json:"supports_home_away"`
}

type phaseStatusDTO struct {
	Status      string   `json:"status"`
	Transitions []string `json:"transitions"`
	Terminal    bool     `json:"terminal"`
}

type phaseCatalogDTO struct {
	Types    []phaseTypeDTO   `json:"types"`
	Statuses []phaseStatusDTO `json:"statuses"`
}

func phaseToDTO(v phase.Phase) phaseDTO {
	return phaseDTO{
		ID:                  v.ID,
		TournamentID:        v.TournamentID,
		Number:              v.Number,
		Name:                v.Name,
		Type:                string(v.Type),
		Status:              string(v.Status),
		HomeAway:            v.HomeAway,
		TeamsAdvance:        v.TeamsAdvance,
		GroupsCount:         v.GroupsCount,
		TeamsPerGroup:       v.TeamsPerGroup,
		FixturesGeneratedAt: formatOptionalTime(v.FixturesGeneratedAt),
		CreatedAt:           formatTime(v.CreatedAt),
		UpdatedAt:           formatTime(v.UpdatedAt),
	}
}

func slotToDTO(v match.Slot) slotDTO {
	out := slotDTO{Kind: string(v.Kind), TeamID: v.TeamID}
	switch v.Kind {
	case match.SlotSeed:
		out.Seed = v.Seed
	case match.SlotWinnerOf:
		out.MatchID = v.MatchID
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:              v.ID,
		TournamentID:    v.TournamentID,
		PhaseID:         v.PhaseID,
		Round:           v.Round,
		GroupNumber:     v.GroupNumber,
		MatchType:       v.MatchType,
		Leg:             v.Leg,
		BracketPosition: v.BracketPosition,
		Home:            slotToDTO(v.Home),
		Away:            slotToDTO(v.Away),
		Status:          string(v.Status),
		HomeScore:       v.HomeScore,
		AwayScore:       v.AwayScore,
		UpdatedAt:       formatTime(v.UpdatedAt),
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		TeamID:         v.TeamID,
		GroupNumber:    v.GroupNumber,
		Position:       v.Position,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
	}
}

func standingsToDTO(rows []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	return out
}

func progressToDTO(v usecase.PhaseProgress) progressDTO {
	return progressDTO{
		Phase:                phaseToDTO(v.Phase),
		Total:                v.Progress.Total,
		Scheduled:            v.Progress.Scheduled,
		Live:                 v.Progress.Live,
		Finished:             v.Progress.Finished,
		CompletionPercentage: v.Progress.CompletionPercentage,
		CanBeStarted:         v.CanBeStarted,
		CanBeCompleted:       v.CanBeCompleted,
		CanBeCancelled:       v.CanBeCancelled,
		ShouldAutoComplete:   v.ShouldAutoComplete,
	}
}

func catalogToDTO(v usecase.PhaseCatalog) phaseCatalogDTO {
	out := phaseCatalogDTO{
		Types:    make([]phaseTypeDTO, 0, len(v.Types)),
		Statuses: make([]phaseStatusDTO, 0, len(v.Statuses)),
	}
	for _, item := range v.Types {
		out.Types = append(out.Types, phaseTypeDTO{
			Type:             string(item.Type),
			Label:            item.Label,
			SupportsHomeAway: item.SupportsHomeAway,
		})
	}
	for _, item := range v.Statuses {
		transitions := make([]string, 0, len(item.Transitions))
		for _, to := range item.Transitions {
			transitions = append(transitions, string(to))
		}
		out.Statuses = append(out.Statuses, phaseStatusDTO{
			Status:      string(item.Status),
			Transitions: transitions,
			Terminal:    item.Terminal,
		})
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalTime(v *time.Time) *string {
	if v == nil {
		return nil
	}
	out := formatTime(*v)
	return &out
}
