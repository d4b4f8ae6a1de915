package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPLatency         *prometheus.HistogramVec
	WorkOrdersCreated   *prometheus.CounterVec
	WorkOrdersEscalated prometheus.Counter
	LLMCalls            *prometheus.CounterVec
	LLMLatency          prometheus.Histogram
	DashboardCache      *prometheus.CounterVec
	RateLimitHits       prometheus.Counter
}

// NewMetrics creates and registers the Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cre_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cre_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		WorkOrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cre_work_orders_created_total",
				Help: "Total number of work orders created.",
			},
			[]string{"priority", "category"},
		),
		WorkOrdersEscalated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cre_work_orders_escalated_total",
				Help: "Total number of work orders escalated past their SLA.",
			},
		),
		LLMCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cre_llm_calls_total",
				Help: "Total number of language model calls.",
			},
			[]string{"operation", "result"},
		),
		LLMLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cre_llm_call_duration_seconds",
				Help:    "Latency of language model calls.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
		DashboardCache: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cre_dashboard_cache_total",
				Help: "Dashboard cache lookups by outcome.",
			},
			[]string{"outcome"},
		),
		RateLimitHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cre_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter.",
			},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordWorkOrderCreated records a new work order.
func (m *Metrics) RecordWorkOrderCreated(priority, category string) {
	m.WorkOrdersCreated.WithLabelValues(priority, category).Inc()
}

// RecordLLMCall records one model call with its outcome.
func (m *Metrics) RecordLLMCall(operation, result string, duration time.Duration) {
	m.LLMCalls.WithLabelValues(operation, result).Inc()
	m.LLMLatency.Observe(duration.Seconds())
}
