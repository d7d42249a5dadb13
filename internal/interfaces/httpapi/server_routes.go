package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/phase-types", handler.ListPhaseTypes)
}

func registerPhaseRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/phases", handler.ListPhasesByTournament)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/phases", handler.CreatePhase)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/progress", handler.ListTournamentProgress)
	mux.HandleFunc("GET /v1/phases/{phaseID}", handler.GetPhase)
	mux.HandleFunc("PATCH /v1/phases/{phaseID}", handler.UpdatePhase)
	mux.HandleFunc("DELETE /v1/phases/{phaseID}", handler.DeletePhase)
	mux.HandleFunc("POST /v1/phases/{phaseID}/generate-fixtures", handler.GenerateFixtures)
	mux.HandleFunc("POST /v1/phases/{phaseID}/start", handler.StartPhase)
	mux.HandleFunc("POST /v1/phases/{phaseID}/complete", handler.CompletePhase)
	mux.HandleFunc("POST /v1/phases/{phaseID}/cancel", handler.CancelPhase)
	mux.HandleFunc("PUT /v1/phases/{phaseID}/status", handler.ChangePhaseStatus)
	mux.HandleFunc("GET /v1/phases/{phaseID}/progress", handler.GetPhaseProgress)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/phases/{phaseID}/matches", handler.ListMatchesByPhase)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/result", handler.RecordMatchResult)
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.ListStandings)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/standings/recalculate", handler.RecalculateStandings)
}
