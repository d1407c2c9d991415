// Package metrics exposes Prometheus counters and histograms for searches
// and HTTP traffic. Every Collector owns a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/search"
)

// Namespace prefixes every metric name.
const Namespace = "pathgrid"

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	Searches       *prometheus.CounterVec
	SearchDuration *prometheus.HistogramVec
	ExploredNodes  *prometheus.HistogramVec
	PathLength     *prometheus.HistogramVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector creates a collector registered on a fresh registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	labels := []string{"algorithm", "heuristic"}

	c := &Collector{
		registry: registry,
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "searches_total",
				Help:      "Total number of path searches",
			},
			[]string{"algorithm", "heuristic", "outcome"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_duration_seconds",
				Help:      "Search duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			labels,
		),
		ExploredNodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_explored_nodes",
				Help:      "Number of nodes settled per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
			},
			labels,
		),
		PathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_path_length",
				Help:      "Number of nodes on found paths",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
			labels,
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		c.Searches,
		c.SearchDuration,
		c.ExploredNodes,
		c.PathLength,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveSearch records a completed search.
func (c *Collector) ObserveSearch(alg search.Algorithm, kind heuristic.Kind, res search.Result, d time.Duration) {
	a, h := alg.String(), kind.String()
	outcome := OutcomeNoPath
	if res.Found() {
		outcome = OutcomeFound
		c.PathLength.WithLabelValues(a, h).Observe(float64(len(res.Path)))
	}
	c.Searches.WithLabelValues(a, h, outcome).Inc()
	c.ExploredNodes.WithLabelValues(a, h).Observe(float64(len(res.Explored)))
	c.SearchDuration.WithLabelValues(a, h).Observe(d.Seconds())
}

// ObserveSearchError records a search rejected before it ran.
func (c *Collector) ObserveSearchError(alg search.Algorithm, kind heuristic.Kind) {
	c.Searches.WithLabelValues(alg.String(), kind.String(), OutcomeError).Inc()
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
