// Package metrics holds the Prometheus collectors of the gateway.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	backendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Outbound requests to the rewards backend.",
		},
		[]string{"endpoint", "outcome"},
	)

	backendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Rewards backend latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	currencyCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_cache_lookups_total",
			Help: "Currency delta cache lookups by result.",
		},
		[]string{"result"},
	)

	mediationEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediation_events_total",
			Help: "Interstitial and video events by provider.",
		},
		[]string{"provider", "event"},
	)

	callbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advertiser_callbacks_total",
			Help: "Advertiser callbacks by kind and status.",
		},
		[]string{"kind", "status"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			backendRequestsTotal, backendRequestDuration,
			currencyCacheTotal, mediationEventsTotal, callbacksTotal,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPStarted marks a request as in flight and returns its completion hook.
func HTTPStarted() func(method, route, status string) {
	httpInFlight.Inc()
	start := time.Now()
	return func(method, route, status string) {
		httpInFlight.Dec()
		httpRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	}
}

// ObserveBackend records one backend exchange.
func ObserveBackend(endpoint, outcome string, d time.Duration) {
	backendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	backendRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// CurrencyCache records a cache lookup: "hit", "miss" or "error".
func CurrencyCache(result string) {
	currencyCacheTotal.WithLabelValues(result).Inc()
}

// MediationEvent records an ad lifecycle event.
func MediationEvent(provider, event string) {
	mediationEventsTotal.WithLabelValues(provider, event).Inc()
}

// Callback records an advertiser callback outcome.
func Callback(kind, status string) {
	callbacksTotal.WithLabelValues(kind, status).Inc()
}
