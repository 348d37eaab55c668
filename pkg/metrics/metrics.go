package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса для Prometheus
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	dbQueriesTotal       *prometheus.CounterVec
	dbQueryDuration      *prometheus.HistogramVec
	dbConnectionsOpen    *prometheus.GaugeVec
	dbConnectionsInUse   *prometheus.GaugeVec
	dbConnectionsIdle    *prometheus.GaugeVec
	bookingsCommitted    *prometheus.CounterVec
	bookingConflictsHit  *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		bookingsCommitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_committed_total",
			Help:        "Total number of bookings committed to the ledger",
			ConstLabels: constLabels,
		}, []string{"payment_status"}),

		bookingConflictsHit: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_commit_conflicts_total",
			Help:        "Total number of commit attempts rejected due to slot conflicts",
			ConstLabels: constLabels,
		}, []string{"turf_id"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет gauge-метрики connection pool
func (m *Metrics) SetDBConnections(db string, open, inUse, idle int) {
	m.dbConnectionsOpen.WithLabelValues(db).Set(float64(open))
	m.dbConnectionsInUse.WithLabelValues(db).Set(float64(inUse))
	m.dbConnectionsIdle.WithLabelValues(db).Set(float64(idle))
}

// IncBookingCommitted фиксирует успешно закоммиченное бронирование
func (m *Metrics) IncBookingCommitted(paymentStatus string) {
	m.bookingsCommitted.WithLabelValues(paymentStatus).Inc()
}

// IncBookingConflict фиксирует конфликт слотов при коммите
func (m *Metrics) IncBookingConflict(turfID string) {
	m.bookingConflictsHit.WithLabelValues(turfID).Inc()
}
