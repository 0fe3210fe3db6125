package booking_wizard

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/session"
	"github.com/m04kA/SMC-SalonWeb/internal/wizard"
)

const (
	msgInvalidServiceID   = "invalid service id"
	msgInvalidRequestBody = "invalid request body"
	msgNoWizard           = "booking wizard is not open"
	msgServiceUnavailable = "service is not available for booking"
)

// Handler мастер бронирования: одна сессия мастера на браузерную сессию
type Handler struct {
	gauge  WizardGauge
	clock  func() time.Time
	logger Logger
}

func NewHandler(gauge WizardGauge, clock func() time.Time, logger Logger) *Handler {
	if clock == nil {
		clock = time.Now
	}
	return &Handler{gauge: gauge, clock: clock, logger: logger}
}

// Mount POST /api/v1/booking/{serviceId}/wizard
// Открывает мастер с ценой услуги на момент открытия; прежний мастер отбрасывается.
func (h *Handler) Mount(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathID(r, "serviceId")
	if err != nil {
		h.logger.Warn("POST /booking/{id}/wizard - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	service, err := sess.Store.Services.FetchByID(r.Context(), serviceID)
	if err != nil {
		h.logger.Warn("POST /booking/{id}/wizard - Failed to load service: service_id=%d, error=%v", serviceID, err)
		handlers.RespondJSON(w, handlers.StatusFor(err), Response{Error: err.Error()})
		return
	}
	if !service.IsActive {
		h.logger.Warn("POST /booking/{id}/wizard - Service is inactive: service_id=%d", serviceID)
		handlers.RespondError(w, http.StatusConflict, msgServiceUnavailable)
		return
	}

	flow := wizard.NewFlow(wizard.New(*service, h.clock), sess.Store.Slots, sess.Store.Bookings, h.logger)
	sess.MountWizard(flow)
	h.gauge.Report()

	h.logger.Info("POST /booking/{id}/wizard - Wizard mounted: service_id=%d, session=%s", serviceID, sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, h.response(sess, flow))
}

// Get GET /api/v1/booking/wizard
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.response(sess, flow))
}

// Discard DELETE /api/v1/booking/wizard
func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	sess.DiscardWizard()
	h.gauge.Report()
	w.WriteHeader(http.StatusNoContent)
}

// SetDate POST /api/v1/booking/wizard/date
func (h *Handler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	h.edit(w, r, "date", &req, func(flow *wizard.Flow) error {
		return flow.SetDate(req.Date)
	})
}

// SelectSlot POST /api/v1/booking/wizard/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	h.edit(w, r, "slot", &req, func(flow *wizard.Flow) error {
		return flow.SelectSlot(req.SlotID)
	})
}

// SetEmail POST /api/v1/booking/wizard/email
func (h *Handler) SetEmail(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	h.edit(w, r, "email", &req, func(flow *wizard.Flow) error {
		return flow.SetEmail(req.Email)
	})
}

// SetConfirmation POST /api/v1/booking/wizard/confirmation
func (h *Handler) SetConfirmation(w http.ResponseWriter, r *http.Request) {
	var req ConfirmationRequest
	h.edit(w, r, "confirmation", &req, func(flow *wizard.Flow) error {
		return flow.SetConfirmed(req.Confirmed)
	})
}

// SetPayment POST /api/v1/booking/wizard/payment
func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	h.edit(w, r, "payment", &req, func(flow *wizard.Flow) error {
		return flow.SetPaymentMethod(req.PaymentMethod)
	})
}

// DismissAlert POST /api/v1/booking/wizard/alert/dismiss
func (h *Handler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}
	flow.DismissAlert()
	handlers.RespondJSON(w, http.StatusOK, h.response(sess, flow))
}

// Next POST /api/v1/booking/wizard/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}

	if _, err := flow.Next(r.Context()); err != nil {
		h.logger.Warn("POST /booking/wizard/next - Transition rejected: step=%d, error=%v", flow.View().Step, err)
		resp := h.response(sess, flow)
		resp.Error = message(err)
		handlers.RespondJSON(w, statusFor(err), resp)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.response(sess, flow))
}

// Back POST /api/v1/booking/wizard/back
// С первого шага мастер закрывается и клиент уходит к списку услуг.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}

	effect := flow.Back(r.Context())
	if effect.Kind == wizard.EffectNavigate {
		sess.DiscardWizard()
		h.gauge.Report()
		handlers.RespondJSON(w, http.StatusOK, Response{Slots: sess.Store.Slots.View(), Redirect: effect.Path})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.response(sess, flow))
}

// Submit POST /api/v1/booking/wizard/submit
// Ровно один запрос на создание. После успеха мастер закрывается,
// при конфликте или ошибке остается на шаге оплаты с введенными данными.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}

	out, err := flow.Submit(r.Context())
	if err != nil {
		h.logger.Warn("POST /booking/wizard/submit - Submission rejected: %v", err)
		resp := h.response(sess, flow)
		resp.Error = message(err)
		handlers.RespondJSON(w, statusFor(err), resp)
		return
	}

	resp := h.response(sess, flow)
	resp.Outcome = &out

	switch out.Kind {
	case wizard.OutcomeSuccess:
		sess.DiscardWizard()
		h.gauge.Report()
		h.logger.Info("POST /booking/wizard/submit - Booking created: session=%s", sess.ID)
		handlers.RespondJSON(w, http.StatusCreated, resp)
	case wizard.OutcomeConflict, wizard.OutcomeSlotFull:
		h.logger.Warn("POST /booking/wizard/submit - Slot rejected: kind=%s, message=%s", out.Kind, out.Message)
		handlers.RespondJSON(w, http.StatusConflict, resp)
	default:
		h.logger.Error("POST /booking/wizard/submit - Booking failed: status=%d, message=%s", out.StatusCode, out.Message)
		handlers.RespondJSON(w, outcomeStatus(out), resp)
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) (*session.Session, *wizard.Flow, bool) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return nil, nil, false
	}
	flow := sess.Wizard()
	if flow == nil {
		handlers.RespondNotFound(w, msgNoWizard)
		return nil, nil, false
	}
	return sess, flow, true
}

// edit общий путь правки поля: декодировать тело, применить, вернуть состояние
func (h *Handler) edit(w http.ResponseWriter, r *http.Request, field string, req interface{}, apply func(flow *wizard.Flow) error) {
	if err := handlers.DecodeJSON(r, req); err != nil {
		h.logger.Warn("POST /booking/wizard/%s - Invalid request body: %v", field, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, flow, ok := h.current(w, r)
	if !ok {
		return
	}

	if err := apply(flow); err != nil {
		h.logger.Warn("POST /booking/wizard/%s - Edit rejected: %v", field, err)
		resp := h.response(sess, flow)
		resp.Error = message(err)
		handlers.RespondJSON(w, statusFor(err), resp)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.response(sess, flow))
}

func (h *Handler) response(sess *session.Session, flow *wizard.Flow) Response {
	view := flow.View()
	return Response{Wizard: &view, Slots: sess.Store.Slots.View()}
}

// statusFor правка не на своем шаге и закрытый мастер - конфликт состояния,
// остальное - невалидный ввод
func statusFor(err error) int {
	switch {
	case errors.Is(err, wizard.ErrWrongStep), errors.Is(err, wizard.ErrSubmitted), errors.Is(err, wizard.ErrNotAtPayment):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func outcomeStatus(out wizard.Outcome) int {
	if out.StatusCode >= 400 && out.StatusCode < 500 {
		return out.StatusCode
	}
	return http.StatusBadGateway
}

// message текст ошибки мастера без префикса пакета
func message(err error) string {
	const prefix = "wizard: "
	msg := err.Error()
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
