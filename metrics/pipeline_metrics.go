// Package metrics exposes Prometheus instrumentation for the weather pipeline
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	weatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Weather provider requests by outcome",
		},
		[]string{"outcome"},
	)
	forecastEmails = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forecast_emails_sent_total",
			Help: "Forecast report emails sent to subscribers",
		},
	)
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_hits_total",
			Help: "Weather cache hits by backend",
		},
		[]string{"backend"},
	)
	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_misses_total",
			Help: "Weather cache misses by backend",
		},
		[]string{"backend"},
	)
)

// RecordFetch counts one weather provider request with the given outcome
// ("success" or "error")
func RecordFetch(outcome string) {
	weatherFetches.WithLabelValues(outcome).Inc()
}

// RecordEmailSent counts one delivered forecast email
func RecordEmailSent() {
	forecastEmails.Inc()
}

// RecordCacheHit counts a cache hit for the given backend
func RecordCacheHit(backend string) {
	cacheHits.WithLabelValues(backend).Inc()
}

// RecordCacheMiss counts a cache miss for the given backend
func RecordCacheMiss(backend string) {
	cacheMisses.WithLabelValues(backend).Inc()
}
