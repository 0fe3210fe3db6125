package salonapi

import "time"

// Credentials источник bearer токена сессии.
// Invalidate вызывается, когда API отвечает 401.
type Credentials interface {
	Token() string
	Invalidate()
}

// Metrics учет вызовов API
type Metrics interface {
	ObserveAPICall(endpoint, method string, status int, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
