package http

import (
	"database/sql"
	"errors"
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type RentaHandler struct {
	rentaSvc service.RentaService
}

func NewRentaHandler(rentaSvc service.RentaService) *RentaHandler {
	return &RentaHandler{rentaSvc: rentaSvc}
}

func (h *RentaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var renta domain.Renta
	if !decodeBody(w, r, &renta) {
		return
	}
	if err := h.rentaSvc.Create(r.Context(), &renta); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, renta)
}

func (h *RentaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	renta, err := h.rentaSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renta)
}

func (h *RentaHandler) List(w http.ResponseWriter, r *http.Request) {
	rentas, err := h.rentaSvc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, rentas, len(rentas))
}

func (h *RentaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var renta domain.Renta
	if !decodeBody(w, r, &renta) {
		return
	}
	renta.ID = id
	if err := h.rentaSvc.Update(r.Context(), &renta); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renta)
}

func (h *RentaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.rentaSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "renta eliminada")
}

type cancelarRequest struct {
	MotivoCancelacion string `json:"motivo_cancelacion"`
}

func (h *RentaHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req cancelarRequest
	if !decodeBody(w, r, &req) {
		return
	}
	renta, err := h.rentaSvc.Cancelar(r.Context(), id, req.MotivoCancelacion)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renta)
}

func (h *RentaHandler) Finalizar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	renta, err := h.rentaSvc.Finalizar(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renta)
}

type calcularRequest struct {
	SpotID      int32  `json:"id_spot"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// Calcular estimates the first payment for a spot and date range without
// creating a renta. Bad dates are the caller's problem, not a server fault.
func (h *RentaHandler) Calcular(w http.ResponseWriter, r *http.Request) {
	var req calcularRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.SpotID <= 0 {
		respondMessage(w, http.StatusBadRequest, "seleccione un spot")
		return
	}

	calculo, err := h.rentaSvc.Calcular(r.Context(), req.SpotID, req.FechaInicio, req.FechaFin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, err)
			return
		}
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, calculo)
}
