package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Fetch outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

// Metrics holds the Prometheus collectors for one survey run. The tool is a
// batch job, so metrics live on a private registry and are delivered by a
// Pushgateway push at the end of the run instead of a scrape endpoint.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // label: outcome
	FetchDuration prometheus.Histogram
	EventsFetched prometheus.Gauge
	StrongestMag  prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates all run metrics on a fresh registry. A private registry
// keeps repeated construction (one per test) free of duplicate-registration
// panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_survey",
			Name:      "fetch_requests_total",
			Help:      "Catalog fetch attempts by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_survey",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the catalog HTTP request.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		EventsFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_survey",
			Name:      "events_fetched",
			Help:      "Number of events returned by the last fetch.",
		}),
		StrongestMag: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_survey",
			Name:      "strongest_magnitude",
			Help:      "Magnitude of the strongest event found, 0 when none.",
		}),
		registry: reg,
	}

	reg.MustRegister(m.FetchRequests, m.FetchDuration, m.EventsFetched, m.StrongestMag)
	return m
}

// Push delivers the run's metrics to a Pushgateway. Failures are logged and
// swallowed: metrics delivery never fails the survey.
func (m *Metrics) Push(url string, logger *slog.Logger) {
	if url == "" {
		return
	}
	if err := push.New(url, "quake_survey").Gatherer(m.registry).Push(); err != nil {
		logger.Warn("metrics push failed", "url", url, "error", err)
		return
	}
	logger.Debug("metrics pushed", "url", url)
}
