package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the store's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "alexika",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alexika",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "alexika",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	ordersExpired = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alexika",
			Subsystem: "orders",
			Name:      "expired_total",
			Help:      "Pending orders expired and returned to the cart, by trigger.",
		},
		[]string{"trigger"},
	)

	ordersPaid = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alexika",
			Subsystem: "orders",
			Name:      "payments_total",
			Help:      "Simulated payment attempts by outcome.",
		},
		[]string{"outcome"},
	)

	facetCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alexika",
			Subsystem: "facets",
			Name:      "summary_cache_total",
			Help:      "Facet summary lookups by cache result.",
		},
		[]string{"result"},
	)

	catalogReloads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alexika",
			Subsystem: "catalog",
			Name:      "snapshot_reloads_total",
			Help:      "Times the in-memory catalog snapshot was rebuilt from the database.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ordersExpired,
		ordersPaid,
		facetCache,
		catalogReloads,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry for /metrics.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware records request count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// OrderExpired counts an expiration; trigger is "timer", "sweep" or "client".
func OrderExpired(trigger string) {
	ordersExpired.WithLabelValues(trigger).Inc()
}

// PaymentAttempt counts a simulated payment ("approved", "declined", "rejected").
func PaymentAttempt(outcome string) {
	ordersPaid.WithLabelValues(outcome).Inc()
}

// FacetCacheLookup counts a facet summary cache hit or miss.
func FacetCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	facetCache.WithLabelValues(result).Inc()
}

// CatalogReloaded counts a snapshot rebuild.
func CatalogReloaded() {
	catalogReloads.Inc()
}
