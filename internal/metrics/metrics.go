package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics.
type Metrics struct {
	LoginsTotal   prometheus.Counter
	AuthFailures  prometheus.Counter
	UploadsStored prometheus.Counter
	ErrorsCount   *prometheus.CounterVec
	ContentWrites *prometheus.CounterVec
}

// New creates new prometheus metrics registered on the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		LoginsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "The total number of successful admin logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "The total number of rejected login attempts",
		}),
		UploadsStored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_stored_total",
			Help:      "The total number of image files written to the upload directory",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		ContentWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_writes_total",
			Help:      "The total number of admin create/update/delete operations",
		}, []string{"entity", "operation"}),
	}
}
