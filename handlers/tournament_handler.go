package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/services"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// CreateHandler godoc
// @Summary  Create a tournament
// @Tags     tournaments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body services.CreateTournamentInput true "Tournament"
// @Success  201 {object} map[string]models.Tournament
// @Router   /tournaments [post]
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to create tournament")
		return
	}

	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), currentUserID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler godoc
// @Summary  Tournament with competitors and rounds
// @Tags     tournaments
// @Produce  json
// @Param    tournamentID path int true "Tournament ID"
// @Success  200 {object} map[string]models.Tournament
// @Failure  404 {object} map[string]string
// @Router   /tournaments/{tournamentID} [get]
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler godoc
// @Summary  List tournaments
// @Tags     tournaments
// @Produce  json
// @Param    organizer_id query int false "Organizer filter"
// @Param    limit query int false "Page size"
// @Param    offset query int false "Offset"
// @Success  200 {object} map[string][]models.Tournament
// @Router   /tournaments [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ListTournamentsFilter{Limit: defaultListLimit}

	organizerID, err := queryInt(r, "organizer_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter.OrganizerID = organizerID

	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if limit != nil && *limit > 0 {
		filter.Limit = min(*limit, maxListLimit)
	}

	offset, err := queryInt(r, "offset")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if offset != nil {
		filter.Offset = *offset
	}

	tournaments, err := h.tournamentService.ListTournaments(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler godoc
// @Summary  Delete a tournament
// @Tags     tournaments
// @Security BearerAuth
// @Param    tournamentID path int true "Tournament ID"
// @Success  204
// @Router   /tournaments/{tournamentID} [delete]
func (h *TournamentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(r.Context(), currentUserID, id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StandingsHandler godoc
// @Summary  Current standings, inactive competitors included
// @Tags     tournaments
// @Produce  json
// @Param    tournamentID path int true "Tournament ID"
// @Success  200 {object} map[string][]models.StandingRow
// @Router   /tournaments/{tournamentID}/standings [get]
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.tournamentService.GetStandings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
