package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type SpotHandler struct {
	spotSvc service.SpotService
}

func NewSpotHandler(spotSvc service.SpotService) *SpotHandler {
	return &SpotHandler{spotSvc: spotSvc}
}

func (h *SpotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var spot domain.Spot
	if !decodeBody(w, r, &spot) {
		return
	}
	if spot.Estado == "" {
		spot.Estado = domain.SpotEstadoDisponible
	}
	if err := h.spotSvc.Create(r.Context(), &spot); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, spot)
}

func (h *SpotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	spot, err := h.spotSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, spot)
}

// List supports the id_rv_park and estado query filters.
func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	rvParkID := queryID(r, "id_rv_park")
	estado := r.URL.Query().Get("estado")

	spots, err := h.spotSvc.List(r.Context(), rvParkID, estado)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, spots, len(spots))
}

func (h *SpotHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var spot domain.Spot
	if !decodeBody(w, r, &spot) {
		return
	}
	spot.ID = id
	if err := h.spotSvc.Update(r.Context(), &spot); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, spot)
}

func (h *SpotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.spotSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "spot eliminado")
}
