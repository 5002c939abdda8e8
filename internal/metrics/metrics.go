package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Palco
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	AccessDecisionsTotal prometheus.CounterVec
	StreamsLive          prometheus.Gauge
	DonationsTotal       prometheus.Counter
	DonationAmountCents  prometheus.Counter
	ChatMessagesTotal    prometheus.Counter
	LoginsTotal          prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "palco_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "palco_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "palco_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		AccessDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_access_decisions_total",
				Help: "Stream access decisions by outcome and reason",
			},
			[]string{"decision", "reason"},
		),
		StreamsLive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "palco_streams_live",
				Help: "Number of streams currently flagged live",
			},
		),
		DonationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "palco_donations_total",
				Help: "Total donation records created",
			},
		),
		DonationAmountCents: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "palco_donation_amount_cents_total",
				Help: "Cumulative donated amount in cents",
			},
		),
		ChatMessagesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "palco_chat_messages_total",
				Help: "Total chat messages posted",
			},
		),
		LoginsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palco_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}
