package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-tournament/internal/usecase"
)

func (h *Handler) ListPhaseTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPhaseTypes")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, catalogToDTO(h.phaseService.ListPhaseTypes()))
}

func (h *Handler) ListPhasesByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPhasesByTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.phaseService.ListPhases(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list phases failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]phaseDTO, 0, len(items))
	for _, item := range items {
		out = append(out, phaseToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreatePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePhase")
	defer span.End()

	var req createPhaseRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	item, err := h.phaseService.CreatePhase(ctx, usecase.CreatePhaseInput{
		TournamentID:  tournamentID,
		Name:          req.Name,
		Type:          req.Type,
		HomeAway:      req.HomeAway,
		TeamsAdvance:  req.TeamsAdvance,
		GroupsCount:   req.GroupsCount,
		TeamsPerGroup: req.TeamsPerGroup,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create phase failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, phaseToDTO(item))
}

func (h *Handler) GetPhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPhase")
	defer span.End()

	item, err := h.phaseService.GetPhase(ctx, r.PathValue("phaseID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) UpdatePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePhase")
	defer span.End()

	var req updatePhaseRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.UpdatePhase(ctx, phaseID, usecase.UpdatePhaseInput{
		Name:          req.Name,
		Type:          req.Type,
		HomeAway:      req.HomeAway,
		TeamsAdvance:  req.TeamsAdvance,
		GroupsCount:   req.GroupsCount,
		TeamsPerGroup: req.TeamsPerGroup,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update phase failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) DeletePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePhase")
	defer span.End()

	phaseID := r.PathValue("phaseID")
	if err := h.phaseService.DeletePhase(ctx, phaseID); err != nil {
		h.logger.WarnContext(ctx, "delete phase failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateFixtures")
	defer span.End()

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.GetPhase(ctx, phaseID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.phaseService.GenerateFixtures(ctx, item.TournamentID, phaseID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate fixtures failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, generateFixturesDTO{
		PhaseID:        result.PhaseID,
		MatchesCreated: result.MatchesCreated,
		TotalRounds:    result.TotalRounds,
	})
}

func (h *Handler) StartPhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartPhase")
	defer span.End()

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.StartPhase(ctx, phaseID)
	if err != nil {
		h.logger.WarnContext(ctx, "start phase failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) CompletePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompletePhase")
	defer span.End()

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.CompletePhase(ctx, phaseID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete phase failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) CancelPhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelPhase")
	defer span.End()

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.CancelPhase(ctx, phaseID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel phase failed", "phase_id", phaseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) ChangePhaseStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangePhaseStatus")
	defer span.End()

	var req changeStatusRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	phaseID := r.PathValue("phaseID")
	item, err := h.phaseService.ChangeStatus(ctx, phaseID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "change phase status failed", "phase_id", phaseID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseToDTO(item))
}

func (h *Handler) GetPhaseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPhaseProgress")
	defer span.End()

	item, err := h.phaseService.GetPhaseProgress(ctx, r.PathValue("phaseID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(item))
}

func (h *Handler) ListTournamentProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentProgress")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.phaseService.ListPhaseProgress(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list phase progress failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]progressDTO, 0, len(items))
	for _, item := range items {
		out = append(out, progressToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
