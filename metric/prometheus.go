package metric

import (
	"math"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exkmeans"

// PrometheusCollector records search metrics on a Prometheus registry.
type PrometheusCollector struct {
	combinations       *prometheus.CounterVec
	iterations         prometheus.Histogram
	combinationSeconds prometheus.Histogram
	bestDistortion     prometheus.Gauge
	searches           *prometheus.CounterVec
	searchSeconds      prometheus.Gauge
	searchCombinations prometheus.Gauge

	mu   sync.Mutex
	best int64
}

// NewPrometheusCollector registers the collector's metrics on reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	f := promauto.With(reg)

	return &PrometheusCollector{
		combinations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_total",
			Help:      "Initial centroid combinations processed, by outcome.",
		}, []string{"status"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lloyd_iterations",
			Help:      "Lloyd passes needed to reach a fixed point.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		combinationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "combination_duration_seconds",
			Help:      "Time spent solving one combination.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		bestDistortion: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_distortion",
			Help:      "Smallest distortion observed so far.",
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Exhaustive searches run, by outcome.",
		}, []string{"status"}),
		searchSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_search_duration_seconds",
			Help:      "Wall time of the most recent search.",
		}),
		searchCombinations: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_search_combinations",
			Help:      "Combinations solved by the most recent search.",
		}),
		best: math.MaxInt64,
	}
}

// RecordCombination records one Lloyd run.
func (c *PrometheusCollector) RecordCombination(iterations int, distortion int64, duration time.Duration, err error) {
	c.combinationSeconds.Observe(duration.Seconds())
	if err != nil {
		c.combinations.WithLabelValues("error").Inc()
		return
	}

	c.combinations.WithLabelValues("ok").Inc()
	c.iterations.Observe(float64(iterations))

	c.mu.Lock()
	if distortion < c.best {
		c.best = distortion
		c.bestDistortion.Set(float64(distortion))
	}
	c.mu.Unlock()
}

// RecordSearch records a finished search.
func (c *PrometheusCollector) RecordSearch(combinations int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.searches.WithLabelValues(status).Inc()
	c.searchSeconds.Set(duration.Seconds())
	c.searchCombinations.Set(float64(combinations))
}

// WriteTextfile atomically writes every metric gathered from g to path in
// the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
