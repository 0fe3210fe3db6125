package wizard

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// OutcomeKind результат отправки бронирования
type OutcomeKind string

const (
	OutcomeSuccess  OutcomeKind = "success"
	OutcomeConflict OutcomeKind = "conflict"
	OutcomeSlotFull OutcomeKind = "slotFull"
	OutcomeFailure  OutcomeKind = "error"
)

const (
	conflictNotice = "This time slot is already booked. Please choose another time."
	slotFullNotice = "This time slot is fully booked. Please choose another time."
	submitFallback = "Failed to create booking"
	successDefault = "Booking created successfully"
)

// Outcome классифицированный ответ на создание бронирования
type Outcome struct {
	Kind    OutcomeKind     `json:"kind"`
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking,omitempty"`

	// StatusCode HTTP статус ответа backend'а при ошибке, 0 при успехе
	StatusCode int `json:"-"`
}

// Alert модальное окно поверх шага
type Alert struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
}

// Classify разбирает ответ create-booking.
// Порядок: code, затем подстроки в message, и только потом голый 409.
// Backend может отвечать 409 и на занятый, и на заполненный слот.
func Classify(resp *salonapi.Response[domain.Booking], err error) Outcome {
	if err != nil {
		message := salonapi.ErrorMessage(err, submitFallback)
		status := salonapi.StatusCode(err)
		if kind, ok := byCode(salonapi.ErrorCode(err)); ok {
			return Outcome{Kind: kind, Message: notice(kind, message), StatusCode: status}
		}
		if kind, ok := byMessage(message); ok {
			return Outcome{Kind: kind, Message: message, StatusCode: status}
		}
		if status == http.StatusConflict {
			return Outcome{Kind: OutcomeConflict, Message: notice(OutcomeConflict, message), StatusCode: status}
		}
		return Outcome{Kind: OutcomeFailure, Message: message, StatusCode: status}
	}

	if resp == nil {
		return Outcome{Kind: OutcomeSuccess, Message: successDefault}
	}
	if kind, ok := byCode(resp.Code); ok {
		return Outcome{Kind: kind, Message: notice(kind, resp.Message)}
	}
	if kind, ok := byMessage(resp.Message); ok {
		return Outcome{Kind: kind, Message: resp.Message}
	}

	message := resp.Message
	if message == "" {
		message = successDefault
	}
	out := Outcome{Kind: OutcomeSuccess, Message: message}
	if resp.Data.ID != 0 {
		booking := resp.Data
		out.Booking = &booking
	}
	return out
}

func byCode(code string) (OutcomeKind, bool) {
	switch code {
	case salonapi.CodeAlreadyBooked:
		return OutcomeConflict, true
	case salonapi.CodeSlotFull:
		return OutcomeSlotFull, true
	}
	return "", false
}

func byMessage(message string) (OutcomeKind, bool) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "already booked"):
		return OutcomeConflict, true
	case strings.Contains(lower, "fully booked"):
		return OutcomeSlotFull, true
	}
	return "", false
}

func notice(kind OutcomeKind, message string) string {
	if message != "" && message != submitFallback {
		return message
	}
	if kind == OutcomeSlotFull {
		return slotFullNotice
	}
	return conflictNotice
}

// Apply записывает результат в сессию. Успех закрывает мастер,
// иначе сессия остается на шаге оплаты со всеми данными.
func (s *Session) Apply(out Outcome) {
	s.Alert = &Alert{Kind: out.Kind, Message: out.Message}
	if out.Kind == OutcomeSuccess {
		s.Submitted = true
	}
}
