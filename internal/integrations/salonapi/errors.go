package salonapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrTransport возвращается, когда API недоступен (сеть, таймаут)
	ErrTransport = errors.New("salonapi client: transport error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrUnauthorized сессия недействительна (401)
	ErrUnauthorized = errors.New("salonapi: unauthorized")

	// ErrForbidden недостаточно прав (403)
	ErrForbidden = errors.New("salonapi: forbidden")

	// ErrNotFound ресурс не найден (404)
	ErrNotFound = errors.New("salonapi: not found")

	// ErrConflict конфликт бизнес-правил (409)
	ErrConflict = errors.New("salonapi: conflict")

	// ErrRejected прочие 4xx/5xx ответы
	ErrRejected = errors.New("salonapi: request rejected")
)

// Коды ошибок, которые backend может передавать в поле code
const (
	CodeAlreadyBooked = "ALREADY_BOOKED"
	CodeSlotFull      = "SLOT_FULL"
)

// APIError не-2xx ответ backend'а
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func newAPIError(status int, env envelope) *APIError {
	return &APIError{
		StatusCode: status,
		Message:    firstNonEmpty(env.Message, env.Error),
		Code:       env.Code,
	}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("salonapi: status %d", e.StatusCode)
	}
	return fmt.Sprintf("salonapi: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap позволяет сравнивать APIError с сентинелами через errors.Is
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrRejected
	}
}

// ErrorMessage приводит любую ошибку к строке для показа пользователю:
// поле message из ответа backend'а либо fallback
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusCode возвращает HTTP статус из ошибки API или 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// ErrorCode возвращает структурированный код ошибки из ответа API
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
