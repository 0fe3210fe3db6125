package session

import "time"

// Metrics учет вызовов API и активных сессий
type Metrics interface {
	ObserveAPICall(endpoint, method string, status int, d time.Duration)
	SetActiveSessions(n int)
	SetActiveWizards(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
