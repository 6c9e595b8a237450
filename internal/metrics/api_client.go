// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chainviz"

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of backend API operations.",
	}, []string{"operation", "backend", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of backend API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "backend", "status"})
)

// APIClient tracks metrics for calls to the explorer backend.
type APIClient struct {
	backend string
}

// NewAPIClient constructs a metrics collector for backend calls. backend is usually the host.
func NewAPIClient(backend string) *APIClient {
	if backend == "" {
		backend = "unknown"
	}
	return &APIClient{backend: backend}
}

// Observe records a single backend call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	if operation == "" {
		operation = "unknown"
	}

	apiRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	apiRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
