package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"rvpark-backend/internal/logger"
	"rvpark-backend/internal/service"
	"rvpark-backend/internal/validate"
)

// response is the envelope every endpoint speaks.
type response struct {
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  validate.Errors `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondList adds the count field for collection endpoints.
func respondList(w http.ResponseWriter, data any, count int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data, Count: &count}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{Success: status < 400, Message: message})
}

// respondError maps service errors onto HTTP statuses. Validation failures
// carry the field map; unknown errors are logged and hidden behind a generic
// message.
func respondError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response{Success: false, Message: "validación fallida", Errors: vErr.Fields})
	case errors.Is(err, sql.ErrNoRows):
		respondMessage(w, http.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, service.ErrCredencialesInvalidas):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrRentaCancelada),
		errors.Is(err, service.ErrRentaConPagos),
		errors.Is(err, service.ErrSpotNoDisponible):
		respondMessage(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return false
	}
	return true
}
