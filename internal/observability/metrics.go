package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	// Upstream metrics cover calls against the market-data backend.
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// PredictionFailuresTotal is the side channel for the predict path:
	// failures there are swallowed at the API boundary, so this counter is
	// the only place they stay visible.
	PredictionFailuresTotal *prometheus.CounterVec

	// HTTP metrics cover the service's own endpoints.
	HTTPRequestsTotal *prometheus.CounterVec
}

// defaultBuckets are the histogram buckets for duration metrics (seconds).
var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// NewMetrics creates and registers all collectors against the given
// registerer. Passing nil registers against the Prometheus default.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "marketdash",
				Subsystem: "upstream",
				Name:      "requests_total",
				Help:      "Total requests issued to the market-data backend",
			},
			[]string{"operation", "status"},
		),
		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "marketdash",
				Subsystem: "upstream",
				Name:      "request_duration_seconds",
				Help:      "Duration of market-data backend requests in seconds",
				Buckets:   defaultBuckets,
			},
			[]string{"operation"},
		),
		PredictionFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "marketdash",
				Subsystem: "predict",
				Name:      "failures_total",
				Help:      "Prediction requests absorbed as empty results",
			},
			[]string{"reason"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "marketdash",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests served, by path and status",
			},
			[]string{"path", "status"},
		),
	}
}

// Default returns the process-wide metrics instance, registering it on
// first use.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewMetrics(nil)
	})
	return defaultMetrics
}
