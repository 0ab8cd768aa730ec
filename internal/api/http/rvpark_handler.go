package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type RvParkHandler struct {
	parkSvc service.RvParkService
}

func NewRvParkHandler(parkSvc service.RvParkService) *RvParkHandler {
	return &RvParkHandler{parkSvc: parkSvc}
}

type rvParkRequest struct {
	domain.RvPark
	GenerarSpots  bool   `json:"generar_spots"`
	CantidadSpots int32  `json:"cantidad_spots"`
	Zona          string `json:"zona"`
	TarifaDia     int64  `json:"tarifa_dia"`
	TarifaSemana  int64  `json:"tarifa_semana"`
	TarifaMes     int64  `json:"tarifa_mes"`
}

func (h *RvParkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rvParkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var generar *service.GenerarSpotsOptions
	if req.GenerarSpots {
		generar = &service.GenerarSpotsOptions{
			Cantidad:          req.CantidadSpots,
			Zona:              req.Zona,
			TarifaDiaCents:    req.TarifaDia,
			TarifaSemanaCents: req.TarifaSemana,
			TarifaMesCents:    req.TarifaMes,
		}
	}

	if err := h.parkSvc.Create(r.Context(), &req.RvPark, generar); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req.RvPark)
}

func (h *RvParkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	park, err := h.parkSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, park)
}

func (h *RvParkHandler) List(w http.ResponseWriter, r *http.Request) {
	parks, err := h.parkSvc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, parks, len(parks))
}

func (h *RvParkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var park domain.RvPark
	if !decodeBody(w, r, &park) {
		return
	}
	park.ID = id
	if err := h.parkSvc.Update(r.Context(), &park); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, park)
}

func (h *RvParkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.parkSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "rv park eliminado")
}
