package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type EventoHandler struct {
	eventoSvc service.EventoService
}

func NewEventoHandler(eventoSvc service.EventoService) *EventoHandler {
	return &EventoHandler{eventoSvc: eventoSvc}
}

func (h *EventoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var evento domain.Evento
	if !decodeBody(w, r, &evento) {
		return
	}
	if err := h.eventoSvc.Create(r.Context(), &evento); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, evento)
}

func (h *EventoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	evento, err := h.eventoSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, evento)
}

// List supports id_rv_park, tipo_evento and fecha range filters.
func (h *EventoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.EventoFilter{
		RvParkID:    queryID(r, "id_rv_park"),
		TipoEvento:  r.URL.Query().Get("tipo_evento"),
		FechaInicio: r.URL.Query().Get("fecha_inicio"),
		FechaFin:    r.URL.Query().Get("fecha_fin"),
	}

	eventos, err := h.eventoSvc.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, eventos, len(eventos))
}

func (h *EventoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var evento domain.Evento
	if !decodeBody(w, r, &evento) {
		return
	}
	evento.ID = id
	if err := h.eventoSvc.Update(r.Context(), &evento); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, evento)
}

func (h *EventoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.eventoSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "evento eliminado")
}
