package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type PagoHandler struct {
	pagoSvc service.PagoService
}

func NewPagoHandler(pagoSvc service.PagoService) *PagoHandler {
	return &PagoHandler{pagoSvc: pagoSvc}
}

func (h *PagoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pago domain.Pago
	if !decodeBody(w, r, &pago) {
		return
	}
	if err := h.pagoSvc.Create(r.Context(), &pago); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, pago)
}

func (h *PagoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	pago, err := h.pagoSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pago)
}

// List supports the id_renta and periodo query filters.
func (h *PagoHandler) List(w http.ResponseWriter, r *http.Request) {
	rentaID := queryID(r, "id_renta")
	periodo := r.URL.Query().Get("periodo")

	pagos, err := h.pagoSvc.List(r.Context(), rentaID, periodo)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, pagos, len(pagos))
}

func (h *PagoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var pago domain.Pago
	if !decodeBody(w, r, &pago) {
		return
	}
	pago.ID = id
	if err := h.pagoSvc.Update(r.Context(), &pago); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pago)
}

func (h *PagoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.pagoSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "pago eliminado")
}
