package accounts

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

const (
	msgInvalidAccountID   = "invalid account id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingStatus      = "isActive is required"
)

// Handler учетные записи сотрудников, только для администратора
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/admin/accounts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Admins.FetchAccounts(r.Context())
	if err != nil {
		h.logger.Warn("GET /admin/accounts - Failed to fetch accounts: %v", err)
	}
	handlers.RespondState(w, err, sess.Store.Admins.Snapshot())
}

// Create POST /api/v1/admin/accounts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/accounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	created, err := sess.Store.Admins.CreateAccount(r.Context(), req.ToAPIRequest())
	if err != nil {
		h.logger.Warn("POST /admin/accounts - Failed to create account: email=%s, error=%v", req.Email, err)
		handlers.RespondState(w, err, sess.Store.Admins.Snapshot())
		return
	}

	h.logger.Info("POST /admin/accounts - Account created: account_id=%d, role=%s", created.ID, created.Role)
	handlers.RespondJSON(w, http.StatusCreated, sess.Store.Admins.Snapshot())
}

// SetStatus PATCH /api/v1/admin/accounts/{accountId}/status
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "accountId")
	if err != nil {
		h.logger.Warn("PATCH /admin/accounts/{id}/status - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	var req StatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/accounts/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsActive == nil {
		handlers.RespondBadRequest(w, msgMissingStatus)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Admins.SetAccountStatus(r.Context(), id, *req.IsActive)
	if err != nil {
		h.logger.Warn("PATCH /admin/accounts/{id}/status - Failed: account_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Admins.Snapshot())
}
