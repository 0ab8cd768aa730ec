package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type ClienteHandler struct {
	clienteSvc service.ClienteService
}

func NewClienteHandler(clienteSvc service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteSvc: clienteSvc}
}

type clienteRequest struct {
	domain.Cliente
	Password string `json:"password"`
}

func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.clienteSvc.Create(r.Context(), &req.Cliente, req.Password); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req.Cliente)
}

func (h *ClienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cliente, err := h.clienteSvc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteSvc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, clientes, len(clientes))
}

func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cliente domain.Cliente
	if !decodeBody(w, r, &cliente) {
		return
	}
	cliente.ID = id
	if err := h.clienteSvc.Update(r.Context(), &cliente); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.clienteSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "cliente eliminado")
}
