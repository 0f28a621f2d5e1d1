package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/services"
)

type CompetitorHandler struct {
	competitorService services.CompetitorService
}

func NewCompetitorHandler(cs services.CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{competitorService: cs}
}

// RegisterHandler godoc
// @Summary  Register a competitor
// @Tags     competitors
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    input body services.RegisterCompetitorInput true "Competitor"
// @Success  201 {object} map[string]models.Competitor
// @Router   /tournaments/{tournamentID}/competitors [post]
func (h *CompetitorHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RegisterCompetitorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.competitorService.RegisterCompetitor(r.Context(), currentUserID, tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateHandler godoc
// @Summary  Rename a competitor or toggle its active flag
// @Tags     competitors
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    competitorID path int true "Competitor ID"
// @Param    input body services.UpdateCompetitorInput true "Changes"
// @Success  200 {object} map[string]models.Competitor
// @Router   /tournaments/{tournamentID}/competitors/{competitorID} [patch]
func (h *CompetitorHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	competitorID, err := getIDFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateCompetitorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitor, err := h.competitorService.UpdateCompetitor(r.Context(), currentUserID, tournamentID, competitorID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitor": competitor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler godoc
// @Summary  Remove a competitor together with its pairings
// @Tags     competitors
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    competitorID path int true "Competitor ID"
// @Success  204
// @Router   /tournaments/{tournamentID}/competitors/{competitorID} [delete]
func (h *CompetitorHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	competitorID, err := getIDFromURL(r, "competitorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competitorService.DeleteCompetitor(r.Context(), currentUserID, tournamentID, competitorID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
