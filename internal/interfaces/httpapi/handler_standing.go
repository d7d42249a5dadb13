package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

// ListStandings returns the whole table, or a single group when ?group= is set.
func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	var (
		rows []standing.Standing
		err  error
	)
	if raw := strings.TrimSpace(r.URL.Query().Get("group")); raw != "" {
		groupNumber, convErr := strconv.Atoi(raw)
		if convErr != nil {
			writeError(ctx, w, fmt.Errorf("%w: group must be a number", usecase.ErrInvalidInput))
			return
		}
		rows, err = h.standingService.ListGroupStandings(ctx, tournamentID, groupNumber)
	} else {
		rows, err = h.standingService.ListStandings(ctx, tournamentID)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) RecalculateStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateStandings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	rows, err := h.standingService.Recalculate(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}
