package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	TransportsImported prometheus.Counter
	EntriesSynced      prometheus.Counter
	SchedulesCreated   prometheus.Counter
	ReportsGenerated   *prometheus.CounterVec
	ImportTime         prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TransportsImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transports_imported_total",
			Help:      "The total number of imported transport records",
		}),
		EntriesSynced: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_entries_synced_total",
			Help:      "The total number of worksheet rows created by import sync",
		}),
		SchedulesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedules_created_total",
			Help:      "The total number of daily schedules created",
		}),
		ReportsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "The total number of generated reports",
		}, []string{"kind"}),
		ImportTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_processing_time_seconds",
			Help:      "Time taken to run an import batch",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
