package telemetry

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/morphed"
	merrors "github.com/vango-dev/morphed/internal/errors"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "morphed").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for update duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "morphed",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a morphed.Observer that records Prometheus metrics.
type Metrics struct {
	updatesTotal   *prometheus.CounterVec
	updateDuration *prometheus.HistogramVec
	updateErrors   *prometheus.CounterVec
	patchesTotal   *prometheus.CounterVec
	skippedTotal   prometheus.Counter
}

// NewMetrics registers the update metrics and returns an observer that
// feeds them. It panics if the metrics are already registered on the
// registry, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		updatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of view update passes",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "status"}),

		updateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "update_duration_seconds",
			Help:        "View update pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"mode"}),

		updateErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "update_errors_total",
			Help:        "Total number of failed view update passes",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "code"}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of patches applied to live trees",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		skippedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ignored_skipped_total",
			Help:        "Total number of element pairs left untouched by reconciliation",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveUpdate implements morphed.Observer.
func (m *Metrics) ObserveUpdate(_ context.Context, report morphed.UpdateReport) {
	mode := string(report.Mode)
	m.updateDuration.WithLabelValues(mode).Observe(report.Duration.Seconds())

	if report.Err != nil {
		m.updatesTotal.WithLabelValues(mode, "error").Inc()
		m.updateErrors.WithLabelValues(mode, errorCode(report.Err)).Inc()
		return
	}
	m.updatesTotal.WithLabelValues(mode, "success").Inc()

	for _, p := range report.Patches {
		m.patchesTotal.WithLabelValues(p.Op.String()).Inc()
	}
	if report.Skipped > 0 {
		m.skippedTotal.Add(float64(report.Skipped))
	}
}

// errorCode keeps the error label low-cardinality: coded errors report
// their code, anything else is "external".
func errorCode(err error) string {
	var coded *merrors.Error
	if errors.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return "external"
}
