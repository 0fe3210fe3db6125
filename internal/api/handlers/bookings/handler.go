package bookings

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidParams      = "invalid query parameters"
	msgInvalidRequestBody = "invalid request body"
)

// Handler бронирования на дашбордах администратора и ресепшна
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/{admin|reception}/bookings?date=&status=&serviceId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := ToFilter(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	list, err := sess.Store.Bookings.FetchAll(r.Context(), filter)
	if err != nil {
		h.logger.Warn("GET /bookings - Failed to fetch bookings: %v", err)
	} else {
		h.logger.Info("GET /bookings - Bookings retrieved: count=%d", len(list))
	}
	handlers.RespondState(w, err, sess.Store.Bookings.Snapshot())
}

// Get GET /api/v1/{admin|reception}/bookings/{bookingId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Bookings.FetchByID(r.Context(), id)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Failed to fetch booking: booking_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Bookings.Snapshot())
}

// Confirm POST /api/v1/reception/bookings/{bookingId}/confirm
// PIN передается backend'у как есть.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Bookings.Confirm(r.Context(), id, req.PIN)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Confirmation failed: booking_id=%d, error=%v", id, err)
	} else {
		h.logger.Info("POST /bookings/{id}/confirm - Booking confirmed: booking_id=%d", id)
	}
	handlers.RespondState(w, err, sess.Store.Bookings.Snapshot())
}

// Cancel POST /api/v1/{admin|reception}/bookings/{bookingId}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Bookings.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Cancellation failed: booking_id=%d, error=%v", id, err)
	} else {
		h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking_id=%d", id)
	}
	handlers.RespondState(w, err, sess.Store.Bookings.Snapshot())
}
