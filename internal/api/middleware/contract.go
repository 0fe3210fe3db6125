package middleware

import "time"

// HTTPMetrics учет входящих запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
