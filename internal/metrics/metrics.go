package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors used to monitor the employee service:
// HTTP traffic by route, database query latency, created records and
// which step of the date parser accepted incoming dates.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	EmployeesCreated    *prometheus.CounterVec
	EmployeesDeleted    prometheus.Counter
	DatesParsed         *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers every collector with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_http_requests_total",
			Help: "Total number of HTTP requests handled by the API.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee_by_id', 'save_employees'
		EmployeesCreated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_created_total",
			Help: "Total number of employee records created.",
		}, []string{"mode"}),
		EmployeesDeleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employees_deleted_total",
			Help: "Total number of employee records deleted.",
		}),
		DatesParsed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_date_parse_total",
			Help: "Dates accepted on the create path, by the parser stage that matched.",
		}, []string{"stage"}),
	}

	metrics.EmployeesCreated.WithLabelValues("single")
	metrics.EmployeesCreated.WithLabelValues("bulk")

	return metrics
}
