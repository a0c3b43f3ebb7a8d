package nodeclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the client core.
type Metrics struct {
	// Request pipeline metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Response cache metrics
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheInvalidations prometheus.Counter

	// Worker dispatcher metrics
	JobsActive prometheus.Gauge
	JobsTotal  *prometheus.CounterVec

	// Gate metrics
	GateRejections *prometheus.CounterVec
}

// NewMetrics initializes and registers Prometheus metrics
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers Prometheus metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iriswallet_node_requests_total",
			Help: "The total number of node API requests, by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iriswallet_node_request_duration_seconds",
			Help:    "Time spent performing node API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "iriswallet_response_cache_hits_total",
			Help: "The total number of response cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "iriswallet_response_cache_misses_total",
			Help: "The total number of response cache misses",
		}),
		CacheInvalidations: factory.NewCounter(prometheus.CounterOpts{
			Name: "iriswallet_response_cache_invalidations_total",
			Help: "The total number of cache invalidations after mutating calls",
		}),
		JobsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iriswallet_dispatcher_jobs_active",
			Help: "The current number of running dispatcher jobs",
		}),
		JobsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iriswallet_dispatcher_jobs_total",
			Help: "The total number of dispatched jobs, by terminal state",
		}, []string{"state"}),
		GateRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iriswallet_gate_rejections_total",
			Help: "The total number of operations short-circuited by a gate",
		}, []string{"gate"}),
	}
}
