package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		New("salon")
		New("salon")
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("salon")

	m.IncBooking("created")
	m.IncBooking("created")
	m.IncBooking("conflict")
	m.ObserveDBQuery("select", 5*time.Millisecond, errors.New("boom"))
	m.SetDBPoolStats(10, 3, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnections.WithLabelValues("in_use")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("salon")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/services", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}
