// Package metrics defines the Prometheus collectors a basecamp app exports on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xy-planning-network/basecamp/route"
)

const namespace = "basecamp"

var (
	// Resolutions counts page requests by how they resolved and to which route.
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_resolutions_total",
			Help:      "Page requests by resolution status and route id",
		},
		[]string{"status", "route"},
	)

	// MarkdownRenderSeconds times rendering a Markdown document.
	MarkdownRenderSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "markdown_render_seconds",
			Help:      "Time spent rendering Markdown into HTML",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
	)

	// ContentReloads counts content cache invalidations triggered by file changes.
	ContentReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Content cache invalidations caused by file changes",
		},
	)

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_exceeded_total",
			Help:      "Requests rejected for exceeding the rate limit",
		},
	)

	// RequestSeconds times HTTP requests by method and status code.
	RequestSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "HTTP request latency by method and status code",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)
)

// ObserveResolution counts res in Resolutions.
func ObserveResolution(res route.Result) {
	Resolutions.WithLabelValues(res.Status.String(), res.Definition.ID).Inc()
}

// ObserveRender records how long rendering Markdown took since start.
func ObserveRender(start time.Time) {
	MarkdownRenderSeconds.Observe(time.Since(start).Seconds())
}

// ObserveRequest records how long an HTTP request took since start.
func ObserveRequest(method string, code int, start time.Time) {
	RequestSeconds.WithLabelValues(method, strconv.Itoa(code)).Observe(time.Since(start).Seconds())
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler { return promhttp.Handler() }
