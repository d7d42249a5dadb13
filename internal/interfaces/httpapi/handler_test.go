package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/domain/tournament"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/usecase"
	"github.com/stretchr/testify/require"
)

type testEnvelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, teamCount int) http.Handler {
	t.Helper()

	teams := make([]team.Team, 0, teamCount)
	members := make([]team.Membership, 0, teamCount)
	for i := 1; i <= teamCount; i++ {
		teamID := fmt.Sprintf("t%02d", i)
		teams = append(teams, team.Team{ID: teamID, Name: "Team " + teamID})
		members = append(members, team.Membership{TournamentID: "tour-1", TeamID: teamID, Position: i})
	}

	tournaments := memory.NewTournamentRepository([]tournament.Tournament{{ID: "tour-1", Name: "Test Cup", Rounds: 1}})
	teamRepo := memory.NewTeamRepository(teams, members)
	phases := memory.NewPhaseRepository(nil)
	matches := memory.NewMatchRepository(nil)
	standings := memory.NewStandingRepository()

	logger := logging.NewNop()
	standingService := usecase.NewStandingService(tournaments, matches, standings, logger)
	phaseService := usecase.NewPhaseService(tournaments, phases, teamRepo, matches, standingService, id.NewUUIDGenerator(), logger)
	matchService := usecase.NewMatchService(matches, standingService, logger)

	return NewRouter(NewHandler(phaseService, matchService, standingService, logger), logger, []string{"*"})
}

func doJSON[T any](t *testing.T, router http.Handler, method, path, body string) (int, testEnvelope[T]) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out testEnvelope[T]
	if rec.Body.Len() > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func TestHandler_RoundRobinFlow(t *testing.T) {
	router := newTestRouter(t, 4)

	code, created := doJSON[phaseDTO](t, router, http.MethodPost, "/v1/tournaments/tour-1/phases",
		`{"name":"League","type":"round_robin"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, 1, created.Data.Number)
	require.Equal(t, "pending", created.Data.Status)
	phaseID := created.Data.ID

	code, generated := doJSON[generateFixturesDTO](t, router, http.MethodPost, "/v1/phases/"+phaseID+"/generate-fixtures", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 6, generated.Data.MatchesCreated)
	require.Equal(t, 3, generated.Data.TotalRounds)

	code, listed := doJSON[[]matchDTO](t, router, http.MethodGet, "/v1/phases/"+phaseID+"/matches", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, listed.Data, 6)
	first := listed.Data[0]
	require.Equal(t, "team", first.Home.Kind)

	code, started := doJSON[phaseDTO](t, router, http.MethodPost, "/v1/phases/"+phaseID+"/start", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "active", started.Data.Status)

	code, recorded := doJSON[matchDTO](t, router, http.MethodPut, "/v1/matches/"+first.ID+"/result",
		`{"home_score":2,"away_score":1,"status":"finished"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "finished", recorded.Data.Status)

	code, table := doJSON[[]standingDTO](t, router, http.MethodGet, "/v1/tournaments/tour-1/standings", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, table.Data, 2)
	require.Equal(t, first.Home.TeamID, table.Data[0].TeamID)
	require.Equal(t, 3, table.Data[0].Points)
	require.Equal(t, 1, table.Data[0].Position)

	code, rebuilt := doJSON[[]standingDTO](t, router, http.MethodPost, "/v1/tournaments/tour-1/standings/recalculate", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, table.Data, rebuilt.Data)

	code, progress := doJSON[progressDTO](t, router, http.MethodGet, "/v1/phases/"+phaseID+"/progress", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 6, progress.Data.Total)
	require.Equal(t, 1, progress.Data.Finished)
	require.InDelta(t, 16.67, progress.Data.CompletionPercentage, 0.001)
	require.True(t, progress.Data.CanBeCompleted)

	code, all := doJSON[[]progressDTO](t, router, http.MethodGet, "/v1/tournaments/tour-1/progress", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, all.Data, 1)
}

func TestHandler_ErrorMapping(t *testing.T) {
	router := newTestRouter(t, 4)

	code, created := doJSON[phaseDTO](t, router, http.MethodPost, "/v1/tournaments/tour-1/phases",
		`{"name":"Cup","type":"single_elimination","teams_advance":4}`)
	require.Equal(t, http.StatusCreated, code)
	phaseID := created.Data.ID

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantCode   int
		wantReason string
	}{
		{name: "unknown phase", method: http.MethodGet, path: "/v1/phases/missing", wantCode: http.StatusNotFound, wantReason: "notFound"},
		{name: "unknown tournament", method: http.MethodGet, path: "/v1/tournaments/missing/standings", wantCode: http.StatusNotFound, wantReason: "notFound"},
		{name: "pending cannot complete", method: http.MethodPost, path: "/v1/phases/" + phaseID + "/complete", wantCode: http.StatusConflict, wantReason: "invalidTransition"},
		{name: "unknown phase type", method: http.MethodPost, path: "/v1/tournaments/tour-1/phases", body: `{"name":"X","type":"swiss"}`, wantCode: http.StatusBadRequest, wantReason: "unsupportedPhaseType"},
		{name: "missing name", method: http.MethodPost, path: "/v1/tournaments/tour-1/phases", body: `{"type":"groups"}`, wantCode: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "unknown field", method: http.MethodPost, path: "/v1/tournaments/tour-1/phases", body: `{"name":"X","type":"groups","colour":"red"}`, wantCode: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "unknown status", method: http.MethodPut, path: "/v1/phases/" + phaseID + "/status", body: `{"status":"paused"}`, wantCode: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "bad group filter", method: http.MethodGet, path: "/v1/tournaments/tour-1/standings?group=abc", wantCode: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "missing score", method: http.MethodPut, path: "/v1/matches/missing/result", body: `{"away_score":1,"status":"live"}`, wantCode: http.StatusBadRequest, wantReason: "invalidInput"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := doJSON[any](t, router, tc.method, tc.path, tc.body)
			require.Equal(t, tc.wantCode, code)
			require.NotNil(t, body.Error)
			require.Len(t, body.Error.Errors, 1)
			require.Equal(t, tc.wantReason, body.Error.Errors[0].Reason)
		})
	}
}

func TestHandler_PhaseLifecycle(t *testing.T) {
	router := newTestRouter(t, 8)

	code, created := doJSON[phaseDTO](t, router, http.MethodPost, "/v1/tournaments/tour-1/phases",
		`{"name":"Groups","type":"groups","groups_count":2,"teams_per_group":4}`)
	require.Equal(t, http.StatusCreated, code)
	phaseID := created.Data.ID

	code, updated := doJSON[phaseDTO](t, router, http.MethodPatch, "/v1/phases/"+phaseID, `{"name":"Group stage"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Group stage", updated.Data.Name)
	require.Equal(t, 2, updated.Data.GroupsCount)

	code, generated := doJSON[generateFixturesDTO](t, router, http.MethodPost, "/v1/phases/"+phaseID+"/generate-fixtures", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 12, generated.Data.MatchesCreated)

	code, changed := doJSON[phaseDTO](t, router, http.MethodPut, "/v1/phases/"+phaseID+"/status", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "cancelled", changed.Data.Status)

	code, _ = doJSON[any](t, router, http.MethodPost, "/v1/phases/"+phaseID+"/start", "")
	require.Equal(t, http.StatusConflict, code)

	code, _ = doJSON[any](t, router, http.MethodDelete, "/v1/phases/"+phaseID, "")
	require.Equal(t, http.StatusNoContent, code)

	code, listed := doJSON[[]phaseDTO](t, router, http.MethodGet, "/v1/tournaments/tour-1/phases", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, listed.Data)
}

func TestHandler_ListPhaseTypes(t *testing.T) {
	router := newTestRouter(t, 2)

	code, catalog := doJSON[phaseCatalogDTO](t, router, http.MethodGet, "/v1/phase-types", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, catalog.Data.Types, 3)
	require.Len(t, catalog.Data.Statuses, 4)

	code, health := doJSON[map[string]string](t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", health.Data["status"])
}
