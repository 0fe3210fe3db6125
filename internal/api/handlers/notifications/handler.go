package notifications

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/session"
)

const msgInvalidNotificationID = "invalid notification id"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/{admin|reception}/notifications
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Notifications.FetchAll(r.Context())
	if err != nil {
		h.logger.Warn("GET /notifications - Failed to fetch notifications: %v", err)
	}
	handlers.RespondState(w, err, view(sess))
}

// MarkRead POST /api/v1/{admin|reception}/notifications/{notificationId}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "notificationId")
	if err != nil {
		h.logger.Warn("POST /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Notifications.MarkRead(r.Context(), id)
	if err != nil {
		h.logger.Warn("POST /notifications/{id}/read - Failed: notification_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, view(sess))
}

// MarkAllRead POST /api/v1/{admin|reception}/notifications/read-all
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	err := sess.Store.Notifications.MarkAllRead(r.Context())
	if err != nil {
		h.logger.Warn("POST /notifications/read-all - Failed: %v", err)
	}
	handlers.RespondState(w, err, view(sess))
}

func view(sess *session.Session) NotificationsView {
	return NotificationsView{
		State:       sess.Store.Notifications.Snapshot(),
		UnreadCount: sess.Store.Notifications.UnreadCount(),
	}
}
