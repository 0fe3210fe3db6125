package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveAPICall(t *testing.T) {
	m := New("salon-web")

	m.ObserveAPICall("/api/time-slots", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveAPICall("/api/time-slots", http.MethodGet, http.StatusOK, 30*time.Millisecond)
	m.ObserveAPICall("/api/bookings", http.MethodPost, http.StatusConflict, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("/api/time-slots", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("/api/bookings", "POST", "409")))
}

func TestMetrics_Gauges(t *testing.T) {
	m := New("salon-web")

	m.SetActiveSessions(3)
	m.SetActiveWizards(1)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeWizards))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/pages/home", 200, time.Millisecond)
		m.ObserveAPICall("/api/rooms", "GET", 200, time.Millisecond)
		m.SetActiveSessions(1)
		m.SetActiveWizards(1)
	})
	assert.Nil(t, m.Registry())
}
