package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Formatting metrics
	FormatsTotal *prometheus.CounterVec
	FormatErrors *prometheus.CounterVec

	// Settings metrics
	SettingsUpdatesTotal  *prometheus.CounterVec
	SettingsLoadsTotal    prometheus.Counter
	ValidationFailures    prometheus.Counter
	CountryChangesTotal   prometheus.Counter
	ActiveContexts        prometheus.Gauge

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		FormatsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locale_formats_total",
				Help: "Total number of formatting calls by kind",
			},
			[]string{"kind"},
		),

		FormatErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locale_format_errors_total",
				Help: "Total number of failed formatting calls by kind",
			},
			[]string{"kind"},
		),

		SettingsUpdatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locale_settings_updates_total",
				Help: "Total number of settings update attempts by outcome",
			},
			[]string{"outcome"},
		),

		SettingsLoadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "locale_settings_loads_total",
				Help: "Total number of settings records loaded from the store",
			},
		),

		ValidationFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "locale_settings_validation_failures_total",
				Help: "Total number of candidate settings rejected by validation",
			},
		),

		CountryChangesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "locale_settings_country_changes_total",
				Help: "Total number of applied settings that moved a tenant between countries",
			},
		),

		ActiveContexts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "locale_active_contexts",
				Help: "Number of tenant formatting contexts currently resident",
			},
		),

		CacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "locale_settings_cache_hits_total",
				Help: "Total number of settings cache hits",
			},
		),

		CacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "locale_settings_cache_misses_total",
				Help: "Total number of settings cache misses",
			},
		),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locale_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),

		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "locale_http_request_duration_seconds",
				Help:    "Duration of HTTP request processing",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
