package slots

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

const (
	msgInvalidServiceID   = "invalid or missing serviceId"
	msgInvalidDate        = "invalid or missing date, expected YYYY-MM-DD"
	msgInvalidSlotID      = "invalid slot id"
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/admin/time-slots?serviceId=&date=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.QueryID(r, "serviceId")
	if err != nil || serviceID == 0 {
		h.logger.Warn("GET /admin/time-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == "" {
		h.logger.Warn("GET /admin/time-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Slots.FetchAvailable(r.Context(), serviceID, date)
	if err != nil {
		h.logger.Warn("GET /admin/time-slots - Failed to fetch slots: service_id=%d, date=%s, error=%v", serviceID, date, err)
	}
	handlers.RespondState(w, err, sess.Store.Slots.View())
}

// Create POST /api/v1/admin/time-slots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	created, err := sess.Store.Slots.Create(r.Context(), req.ToAPIInput())
	if err != nil {
		h.logger.Warn("POST /admin/time-slots - Failed to create slot: service_id=%d, error=%v", req.ServiceID, err)
		handlers.RespondState(w, err, sess.Store.Slots.View())
		return
	}

	h.logger.Info("POST /admin/time-slots - Slot created: slot_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, sess.Store.Slots.View())
}

// Update PUT /api/v1/admin/time-slots/{slotId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "slotId")
	if err != nil {
		h.logger.Warn("PUT /admin/time-slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Slots.Update(r.Context(), id, req.ToAPIInput())
	if err != nil {
		h.logger.Warn("PUT /admin/time-slots/{id} - Failed to update slot: slot_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Slots.View())
}
