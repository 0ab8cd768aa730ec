package http

import (
	"net/http"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Password      string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Usuario *domain.Usuario `json:"usuario"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, usuario, err := h.authSvc.Login(r.Context(), req.NombreUsuario, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Token: token, Usuario: usuario})
}
