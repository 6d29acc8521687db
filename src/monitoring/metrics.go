package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FallbackOps counts primary-store failures that were served from the
	// in-memory fallback. This is the observability hook for the silent
	// fallback policy; ops alerting watches it instead of grepping logs.
	FallbackOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_fallback_operations_total",
			Help: "Primary store operations served by the in-memory fallback",
		},
		[]string{"entity", "operation"},
	)

	WorkspaceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workspace_cache_hits_total",
			Help: "Workspace lookups answered from the redis cache",
		},
	)

	WorkspaceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workspace_cache_misses_total",
			Help: "Workspace lookups that fell through to the store",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StatsSnapshots = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_snapshots_total",
			Help: "Dashboard statistic snapshots written to the cache",
		},
	)
)

// Middleware records per-route request counts and latency.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		httpRequests.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
