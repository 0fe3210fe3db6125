package store

import "errors"

var (
	// ErrValidation локальная проверка формы не пройдена, запрос не отправлялся
	ErrValidation = errors.New("store: validation failed")

	// ErrNotAuthenticated операция требует входа
	ErrNotAuthenticated = errors.New("store: not authenticated")
)

// RejectedError значение отклонения операции слайса.
// Message - нормализованный текст для показа пользователю.
type RejectedError struct {
	Op      string
	Message string
	Err     error
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// ValidationError ошибка локальной проверки формы
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
