package admin_auth

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/api/validation"
	"github.com/inovalogics-art/booking-service/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid email or password"
	msgNotAuthenticated   = "not authenticated"
	msgLoggedOut          = "logged out"
)

type Handler struct {
	authService AuthService
	sessions    SessionManager
	logger      Logger
}

func NewHandler(authService AuthService, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Login POST /api/admin/auth
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/auth - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /admin/auth - Validation failed: %v", err)
		handlers.HandleValidationError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/auth - Login failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.IssueCookie(w, *session); err != nil {
		h.logger.Error("POST /admin/auth - Failed to issue session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// Probe GET /api/admin/auth
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Verify(r)
	if err != nil {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// Logout DELETE /api/admin/auth
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	handlers.RespondMessage(w, http.StatusOK, msgLoggedOut)
}
