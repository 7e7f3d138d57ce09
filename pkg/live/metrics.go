package live

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lumen").
	Namespace string

	// Subsystem is the metrics subsystem (default: "live").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event dispatch duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the dispatch duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "lumen",
		Subsystem: "live",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus instruments for the live server.
type Metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	eventErrors    *prometheus.CounterVec
	swapsSent      prometheus.Counter
	focusSent      prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetrics registers and returns the live server metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "events_total",
			Help:        "Total client events dispatched.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event dispatch duration, including re-render.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"event"}),
		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "event_errors_total",
			Help:        "Client events rejected or failed.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"code"}),
		swapsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "swaps_sent_total",
			Help:        "Swap frames sent to clients.",
			ConstLabels: cfg.ConstLabels,
		}),
		focusSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "focus_sent_total",
			Help:        "Focus frames sent to clients.",
			ConstLabels: cfg.ConstLabels,
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "active_sessions",
			Help:        "Currently connected sessions.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

func (m *Metrics) observeEvent(event string, d time.Duration) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(event).Inc()
	m.eventDuration.WithLabelValues(event).Observe(d.Seconds())
}

func (m *Metrics) observeError(code string) {
	if m == nil {
		return
	}
	m.eventErrors.WithLabelValues(code).Inc()
}

func (m *Metrics) observeSwap() {
	if m == nil {
		return
	}
	m.swapsSent.Inc()
}

func (m *Metrics) observeFocus() {
	if m == nil {
		return
	}
	m.focusSent.Inc()
}

func (m *Metrics) sessionStarted() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) sessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
