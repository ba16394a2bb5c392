package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/racha-stats-service/internal/metrics"
)

func TestObserveComputation(t *testing.T) {
	m := metrics.New()
	m.ObserveComputation("year", 20*time.Millisecond, 12, 30, 4, 2)
	m.ObserveComputation("all-time", time.Millisecond, 40, 31, 5, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.DegradedRosters))
	assert.Equal(t, float64(31), testutil.ToFloat64(m.StandingsSize.WithLabelValues("athletes")))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.StandingsSize.WithLabelValues("teams")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ComputeDuration))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.ObserveComputation("quadrimester", time.Millisecond, 3, 10, 2, 1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "racha_stats_degraded_rosters_total 1"), body)
	assert.Contains(t, body, `racha_stats_standings_compute_duration_seconds_count{period="quadrimester"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
