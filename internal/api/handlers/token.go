package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hkust/smart-buddy/internal/service"
)

type TokenHandler struct {
	tokenService *service.TokenService
}

func NewTokenHandler(tokenService *service.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type CreateTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *TokenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	signed, err := h.tokenService.CreateToken(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "login successfully", TokenResponse{Token: signed})
}
