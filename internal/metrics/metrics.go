// Package metrics exposes Prometheus collectors for the standings computation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "racha_stats"

// Metrics groups the collectors. Use New to register them on a registry you own.
type Metrics struct {
	registry *prometheus.Registry

	ComputeDuration *prometheus.HistogramVec
	MatchesScanned  prometheus.Histogram
	DegradedRosters prometheus.Counter
	StandingsSize   *prometheus.GaugeVec
}

// New builds a private registry with the service collectors plus the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ComputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "standings_compute_duration_seconds",
			Help:      "Time spent computing standings, including the match history fetch",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"period"}),
		MatchesScanned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "standings_matches_scanned",
			Help:      "Number of matches in the requested period per computation",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		DegradedRosters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_rosters_total",
			Help:      "Roster blobs that were present but could not be decoded",
		}),
		StandingsSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "standings_last_size",
			Help:      "Number of entries in the last computed leaderboard",
		}, []string{"board"}),
	}
	m.registry.MustRegister(
		m.ComputeDuration,
		m.MatchesScanned,
		m.DegradedRosters,
		m.StandingsSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveComputation records one finished standings computation.
func (m *Metrics) ObserveComputation(period string, took time.Duration, matches, athletes, teams, degraded int) {
	m.ComputeDuration.WithLabelValues(period).Observe(took.Seconds())
	m.MatchesScanned.Observe(float64(matches))
	m.StandingsSize.WithLabelValues("athletes").Set(float64(athletes))
	m.StandingsSize.WithLabelValues("teams").Set(float64(teams))
	if degraded > 0 {
		m.DegradedRosters.Add(float64(degraded))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests and for collectors added by other packages.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
