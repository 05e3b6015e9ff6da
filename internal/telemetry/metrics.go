package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/templui/foldervault/internal/service"
)

const namespace = "foldervault"

// Metrics holds the Prometheus collectors for one process. Each Metrics has
// its own registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	sweepRunsTotal    *prometheus.CounterVec
	sweepDeletedTotal *prometheus.CounterVec
	sweepDuration     prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency. Includes password hashing.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		sweepRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Sweep runs by result.",
		}, []string{"result"}),
		sweepDeletedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_deleted_total",
			Help:      "Rows removed by the sweeper.",
		}, []string{"kind"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of sweep runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.sweepRunsTotal,
		m.sweepDeletedTotal,
		m.sweepDuration,
	)

	return m
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument wraps next with request counting and latency tracking.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.requestDuration,
		promhttp.InstrumentHandlerCounter(m.requestsTotal, next),
	)
}

func (m *Metrics) RecordSweep(result service.SweepResult, duration time.Duration, err error) {
	m.sweepDuration.Observe(duration.Seconds())

	if err != nil {
		m.sweepRunsTotal.WithLabelValues("error").Inc()
		return
	}

	m.sweepRunsTotal.WithLabelValues("ok").Inc()
	m.sweepDeletedTotal.WithLabelValues("messages").Add(float64(result.DeletedMessages))
	m.sweepDeletedTotal.WithLabelValues("share_tokens").Add(float64(result.DeletedShareTokens))
	m.sweepDeletedTotal.WithLabelValues("folders").Add(float64(result.DeletedFolders))
}
