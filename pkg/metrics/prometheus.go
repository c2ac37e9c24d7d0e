package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics of the service
type Metrics struct {
	SearchesTotal     prometheus.Counter
	SearchResults     prometheus.Histogram
	ChatReplies       *prometheus.CounterVec
	AssistantFailures prometheus.Counter
	FacadeFallbacks   *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	ErrorsCount       *prometheus.CounterVec
}

var (
	once     sync.Once
	instance *Metrics
)

// NewMetrics registers the service metrics under the namespace.
// Registration happens once per process; later calls return the same set.
func NewMetrics(namespace string) *Metrics {
	once.Do(func() {
		instance = newMetrics(namespace, prometheus.DefaultRegisterer)
	})
	return instance
}

// NewMetricsWithRegistry registers the metrics on a dedicated registry, mainly for tests
func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	return newMetrics(namespace, reg)
}

func newMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SearchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_searches_total",
			Help:      "The total number of natural language flight searches",
		}),
		SearchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_search_results",
			Help:      "Number of flights returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		}),
		ChatReplies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_replies_total",
			Help:      "Chat replies by source",
		}, []string{"source"}),
		AssistantFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_failures_total",
			Help:      "AI assistant calls that fell back to canned responses",
		}),
		FacadeFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_fallbacks_total",
			Help:      "Backend client calls answered with a fallback value",
		}, []string{"operation"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
