// Package metrics provides Prometheus metrics collection for the allocation service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AllocationRunsTotal tracks total allocation runs.
	AllocationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_runs_total",
			Help: "Total number of allocation runs",
		},
		[]string{"status"},
	)

	// AllocationRunDuration tracks allocation run duration.
	AllocationRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "allocation_run_duration_seconds",
			Help:    "Allocation run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// AllocationRowsGenerated tracks the number of result rows per run.
	AllocationRowsGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "allocation_rows_generated",
			Help:    "Number of result rows produced per allocation run",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)

	// UploadBytesTotal tracks bytes read from uploaded files by kind.
	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_bytes_total",
			Help: "Total bytes read from uploaded files",
		},
		[]string{"kind"},
	)

	// ExportsTotal tracks result exports by format.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Total number of result exports",
		},
		[]string{"format"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAllocationRun records metrics for an allocation run.
func RecordAllocationRun(duration time.Duration, status string, rows int) {
	AllocationRunDuration.Observe(duration.Seconds())
	AllocationRunsTotal.WithLabelValues(status).Inc()
	AllocationRowsGenerated.Observe(float64(rows))
}

// RecordUpload records the size of an uploaded file.
func RecordUpload(kind string, bytes int64) {
	UploadBytesTotal.WithLabelValues(kind).Add(float64(bytes))
}

// RecordExport records a result export.
func RecordExport(format string) {
	ExportsTotal.WithLabelValues(format).Inc()
}
