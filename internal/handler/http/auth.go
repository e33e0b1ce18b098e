package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lengolf/lengolf-backend-go/internal/domain/auth"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	LoginWithPIN(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// LoginWithPIN implements AuthHandler.
func (h *authHandlerImpl) LoginWithPIN(w http.ResponseWriter, r *http.Request) {
	var req auth.PINLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.LoginWithPIN(r.Context(), req)
	if err != nil {
		// The PIN itself is never logged.
		slog.Warn("PIN login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
