package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes settlement metrics on a private Prometheus registry.
type Collector struct {
	registry             *prometheus.Registry
	settlementsProcessed *prometheus.CounterVec
	settlementsFailed    *prometheus.CounterVec
	settlementDuration   *prometheus.HistogramVec
}

// NewCollector creates a new Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		settlementsProcessed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_processed_total",
			Help: "Total number of successful settlement operations",
		}, []string{"operation"}),
		settlementsFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_failed_total",
			Help: "Total number of failed settlement operations",
		}, []string{"operation"}),
		settlementDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "settlement_duration_seconds",
			Help:    "Time taken by settlement operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// RecordSettlement records one settlement operation outcome.
func (c *Collector) RecordSettlement(operation string, duration time.Duration, success bool) {
	if success {
		c.settlementsProcessed.WithLabelValues(operation).Inc()
	} else {
		c.settlementsFailed.WithLabelValues(operation).Inc()
	}
	c.settlementDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Handler returns the scrape handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
