package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(rs services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: rs}
}

// RecordResultInput carries the new result; null clears the board.
type RecordResultInput struct {
	Result *models.PairingResult `json:"result"`
}

// ListHandler godoc
// @Summary  Rounds with their pairings
// @Tags     rounds
// @Produce  json
// @Param    tournamentID path int true "Tournament ID"
// @Success  200 {object} map[string][]models.Round
// @Router   /tournaments/{tournamentID}/rounds [get]
func (h *RoundHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rounds, err := h.roundService.ListRounds(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateHandler godoc
// @Summary  Pair the next round
// @Tags     rounds
// @Produce  json
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Success  201 {object} map[string]models.Round
// @Failure  409,422 {object} map[string]string
// @Router   /tournaments/{tournamentID}/rounds [post]
func (h *RoundHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
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

	round, err := h.roundService.GenerateNextRound(r.Context(), currentUserID, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": round}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler godoc
// @Summary  Delete the latest round
// @Tags     rounds
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    roundNumber path int true "Round number"
// @Success  204
// @Router   /tournaments/{tournamentID}/rounds/{roundNumber} [delete]
func (h *RoundHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
	number, err := getIDFromURL(r, "roundNumber")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.roundService.DeleteRound(r.Context(), currentUserID, tournamentID, number); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordResultHandler godoc
// @Summary  Record, overwrite or clear a result
// @Tags     pairings
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    pairingID path string true "Pairing ID"
// @Param    input body RecordResultInput true "Result: 1-0, 0.5-0.5, 0-1 or null"
// @Success  200 {object} map[string]models.Pairing
// @Router   /tournaments/{tournamentID}/pairings/{pairingID}/result [put]
func (h *RoundHandler) RecordResultHandler(w http.ResponseWriter, r *http.Request) {
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
	pairingID, err := getPairingID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pairing, err := h.roundService.RecordResult(r.Context(), currentUserID, tournamentID, pairingID, input.Result)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairing": pairing}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePairingHandler godoc
// @Summary  Delete a single pairing
// @Tags     pairings
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Param    pairingID path string true "Pairing ID"
// @Success  204
// @Router   /tournaments/{tournamentID}/pairings/{pairingID} [delete]
func (h *RoundHandler) DeletePairingHandler(w http.ResponseWriter, r *http.Request) {
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
	pairingID, err := getPairingID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.roundService.DeletePairing(r.Context(), currentUserID, tournamentID, pairingID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func getPairingID(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "pairingID"))
	if err != nil {
		return "", errors.New("invalid pairingID format")
	}
	return id.String(), nil
}
