package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/auth"
)

type AuthHandler struct {
	responder
	auth *auth.Authenticator
}

func NewAuthHandler(authn *auth.Authenticator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		auth:      authn,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileRequestDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		h.logger.Info("login failed", zap.String("email", req.Email), zap.Error(err))
		h.handleError(w, err)
		return
	}

	h.logger.Info("user logged in", zap.String("user_id", session.User.ID))
	h.respondJSON(w, http.StatusOK, session)
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("user registered", zap.String("user_id", session.User.ID))
	h.respondJSON(w, http.StatusCreated, session)
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(tokenFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// PUT /api/v1/auth/me
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.auth.UpdateProfile(tokenFromContext(r.Context()), req.Name, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}
