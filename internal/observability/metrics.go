package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	requestsTotal     *prometheus.CounterVec
	latencySeconds    *prometheus.HistogramVec
	errorsTotal       *prometheus.CounterVec
	cacheLookupsTotal *prometheus.CounterVec
	simulatedWrites   *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "school_api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "school_api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "school_api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		cacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "school_api_cache_lookups_total",
			Help: "Aggregate cache lookups by cache name and result (hit, miss, error).",
		}, []string{"cache", "result"})

		simulatedWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "school_api_simulated_writes_total",
			Help: "Write actions acknowledged without changing the demo data.",
		}, []string{"action"})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, cacheLookupsTotal, simulatedWrites)
	})
}

// Requests exposes the request counter.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the request latency histogram.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the error response counter.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// CacheLookups exposes the cache lookup counter.
func CacheLookups() *prometheus.CounterVec {
	RegisterMetrics()
	return cacheLookupsTotal
}

// SimulatedWrites exposes the counter of acknowledged-but-not-persisted writes.
func SimulatedWrites() *prometheus.CounterVec {
	RegisterMetrics()
	return simulatedWrites
}
