package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллектор метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	apiCallsTotal   *prometheus.CounterVec
	apiCallDuration *prometheus.HistogramVec

	activeSessions prometheus.Gauge
	activeWizards  prometheus.Gauge
}

// New создает и регистрирует метрики с константной меткой service
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of inbound HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Inbound HTTP request duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "salon_api_calls_total",
			Help:        "Total number of calls to the salon backend API",
			ConstLabels: labels,
		}, []string{"endpoint", "method", "status"}),
		apiCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "salon_api_call_duration_seconds",
			Help:        "Salon backend API call duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "browser_sessions_active",
			Help:        "Number of live browser sessions",
			ConstLabels: labels,
		}),
		activeWizards: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_wizards_active",
			Help:        "Number of mounted booking wizards",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.apiCallsTotal,
		m.apiCallDuration,
		m.activeSessions,
		m.activeWizards,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveAPICall status=0 означает ошибку транспорта
func (m *Metrics) ObserveAPICall(endpoint, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.apiCallsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	m.apiCallDuration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *Metrics) SetActiveWizards(n int) {
	if m == nil {
		return
	}
	m.activeWizards.Set(float64(n))
}
