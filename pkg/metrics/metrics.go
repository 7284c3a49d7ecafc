package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated     prometheus.Counter
	LeadsConverted   *prometheus.CounterVec
	TimelineRequests prometheus.Counter
	ExportsCreated   *prometheus.CounterVec
	LeadsImported    prometheus.Counter
	EmailsSent       *prometheus.CounterVec
	LoginAttempts    *prometheus.CounterVec

	// Pipeline metrics
	OpportunitiesByStage *prometheus.GaugeVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   prometheus.Gauge

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LeadsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		}),
		LeadsConverted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_converted_total",
				Help: "Total number of lead conversions",
			},
			[]string{"status"}, // success, conflict, failed
		),
		TimelineRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "timeline_requests_total",
			Help: "Total number of timeline fetches",
		}),
		ExportsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_created_total",
				Help: "Total number of exports created",
			},
			[]string{"entity", "format"},
		),
		LeadsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_imported_total",
			Help: "Total number of leads imported from CSV",
		}),
		EmailsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_sent_total",
				Help: "Total number of notification emails sent",
			},
			[]string{"kind", "status"},
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),

		OpportunitiesByStage: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opportunities_by_stage",
				Help: "Open opportunities per pipeline stage",
			},
			[]string{"stage"},
		),

		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"operation"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			// Route pattern, not the actual path, keeps cardinality bounded
			path := c.Path()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordLeadCreated increments the leads created counter
func (m *Metrics) RecordLeadCreated() {
	m.LeadsCreated.Inc()
}

// RecordLeadConverted records the outcome of a conversion attempt
func (m *Metrics) RecordLeadConverted(status string) {
	m.LeadsConverted.WithLabelValues(status).Inc()
}

// RecordTimelineRequest increments the timeline fetch counter
func (m *Metrics) RecordTimelineRequest() {
	m.TimelineRequests.Inc()
}

// RecordExportCreated increments the exports counter
func (m *Metrics) RecordExportCreated(entity, format string) {
	m.ExportsCreated.WithLabelValues(entity, format).Inc()
}

// RecordLeadsImported adds to the imported leads counter
func (m *Metrics) RecordLeadsImported(count int) {
	m.LeadsImported.Add(float64(count))
}

// RecordEmailSent records a notification email attempt
func (m *Metrics) RecordEmailSent(kind string, success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.EmailsSent.WithLabelValues(kind, status).Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// SetOpportunitiesByStage updates the pipeline stage gauge
func (m *Metrics) SetOpportunitiesByStage(stage string, count float64) {
	m.OpportunitiesByStage.WithLabelValues(stage).Set(count)
}

// RecordDBQuery records database query duration
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
