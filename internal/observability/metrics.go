// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Ingest metrics
	ParticlesParsed *prometheus.CounterVec
	ParticlesCut    prometheus.Counter
	EventsAssembled prometheus.Counter
	ParseErrors     *prometheus.CounterVec
	FilesOpened     *prometheus.CounterVec

	// Analysis metrics
	FlowsComputed      prometheus.Counter
	EventsBelowMinimum prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "ebe_flow"
	}

	return &Metrics{
		ParticlesParsed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "particles_parsed_total",
			Help:      "Total number of particles parsed by input format",
		}, []string{"format"}),
		ParticlesCut: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "particles_cut_total",
			Help:      "Total number of particles dropped by kinematic cuts",
		}),
		EventsAssembled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "events_assembled_total",
			Help:      "Total number of events assembled from input streams",
		}),
		ParseErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "parse_errors_total",
			Help:      "Total number of parse errors by format and kind",
		}, []string{"format", "kind"}),
		FilesOpened: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "files_opened_total",
			Help:      "Total number of input files opened by detected format",
		}, []string{"format"}),

		FlowsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "flows_computed_total",
			Help:      "Total number of per-event flow results computed",
		}),
		EventsBelowMinimum: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "events_below_minimum_total",
			Help:      "Total number of events with too few particles for flow",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordParticleParsed increments the parsed-particle counter for a format.
func RecordParticleParsed(format string) {
	DefaultMetrics.ParticlesParsed.WithLabelValues(format).Inc()
}

// RecordParticleCut increments the cut-particle counter.
func RecordParticleCut() {
	DefaultMetrics.ParticlesCut.Inc()
}

// RecordEventAssembled increments the assembled-event counter.
func RecordEventAssembled() {
	DefaultMetrics.EventsAssembled.Inc()
}

// RecordParseError records a parse error by format and kind.
func RecordParseError(format, kind string) {
	DefaultMetrics.ParseErrors.WithLabelValues(format, kind).Inc()
}

// RecordFileOpened increments the opened-file counter for a format.
func RecordFileOpened(format string) {
	DefaultMetrics.FilesOpened.WithLabelValues(format).Inc()
}

// RecordFlowComputed records one per-event flow result.
func RecordFlowComputed(multiplicity int) {
	DefaultMetrics.FlowsComputed.Inc()
	if multiplicity < 2 {
		DefaultMetrics.EventsBelowMinimum.Inc()
	}
}
