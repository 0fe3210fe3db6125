package booking_wizard

// WizardGauge пересчет метрики активных мастеров
type WizardGauge interface {
	Report()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
