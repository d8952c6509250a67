package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер прометеевских метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     prometheus.Gauge
	dbConnsInUse    prometheus.Gauge
	dbConnsIdle     prometheus.Gauge
}

// New регистрирует метрики в default registry и возвращает контейнер
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency distribution.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		httpRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served.",
			ConstLabels: constLabels,
		}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency distribution.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open database connections.",
			ConstLabels: constLabels,
		}),

		dbConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Database connections currently in use.",
			ConstLabels: constLabels,
		}),

		dbConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle database connections.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncInFlight увеличивает счётчик запросов в обработке
func (m *Metrics) IncInFlight() {
	m.httpRequestsInFlight.Inc()
}

// DecInFlight уменьшает счётчик запросов в обработке
func (m *Metrics) DecInFlight() {
	m.httpRequestsInFlight.Dec()
}

// ObserveDBQuery фиксирует длительность SQL-запроса
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats публикует состояние connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnsOpen.Set(float64(stats.OpenConnections))
	m.dbConnsInUse.Set(float64(stats.InUse))
	m.dbConnsIdle.Set(float64(stats.Idle))
}
