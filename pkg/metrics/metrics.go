package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики сервиса (Prometheus)
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	integrationRequests   *prometheus.CounterVec
	integrationDuration   *prometheus.HistogramVec
	activeDrafts          prometheus.Gauge
	draftSubmissionsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		integrationRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of outgoing integration requests",
			ConstLabels: labels,
		}, []string{"target", "operation", "outcome"}),

		integrationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Outgoing integration request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "operation"}),

		activeDrafts: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_drafts_active",
			Help:        "Number of booking drafts currently held in the session store",
			ConstLabels: labels,
		}),

		draftSubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_draft_submissions_total",
			Help:        "Total number of draft submission attempts",
			ConstLabels: labels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveIntegrationRequest фиксирует исходящий запрос к внешнему сервису
func (m *Metrics) ObserveIntegrationRequest(target, operation, outcome string, duration time.Duration) {
	m.integrationRequests.WithLabelValues(target, operation, outcome).Inc()
	m.integrationDuration.WithLabelValues(target, operation).Observe(duration.Seconds())
}

// DraftCreated увеличивает счетчик активных черновиков
func (m *Metrics) DraftCreated() {
	m.activeDrafts.Inc()
}

// DraftClosed уменьшает счетчик активных черновиков
func (m *Metrics) DraftClosed() {
	m.activeDrafts.Dec()
}

// DraftSubmission фиксирует попытку отправки черновика (outcome: success | failure | rejected)
func (m *Metrics) DraftSubmission(outcome string) {
	m.draftSubmissionsTotal.WithLabelValues(outcome).Inc()
}
