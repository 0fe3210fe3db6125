package auth

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	user, err := sess.Store.Auth.Login(r.Context(), req.ToAPIRequest())
	if err != nil {
		h.logger.Warn("POST /auth/login - Login failed: email=%s, error=%v", req.Email, err)
		handlers.RespondState(w, err, SessionResponse{Auth: sess.Store.Auth.View()})
		return
	}

	h.logger.Info("POST /auth/login - Logged in: email=%s, role=%s", req.Email, user.Role)
	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		Auth:     sess.Store.Auth.View(),
		Redirect: homeFor(user.Role),
	})
}

// Logout POST /api/v1/auth/logout
// Локальная сессия очищается, даже если backend ответил ошибкой.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	if err := sess.Store.Auth.Logout(r.Context()); err != nil {
		h.logger.Warn("POST /auth/logout - Backend logout failed: %v", err)
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		Auth:     sess.Store.Auth.View(),
		Redirect: middleware.LoginPath,
	})
}

// Session GET /api/v1/auth/session
// Для вошедшего пользователя обновляет профиль; 401 от backend'а сбрасывает вход.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	if sess.Store.Auth.IsAuthenticated() {
		if _, err := sess.Store.Auth.FetchCurrentUser(r.Context()); err != nil {
			h.logger.Warn("GET /auth/session - Failed to refresh current user: %v", err)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{Auth: sess.Store.Auth.View()})
}
