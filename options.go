package exkmeans

import (
	"time"

	"github.com/hupe1980/exkmeans/distance"
	"github.com/hupe1980/exkmeans/internal/kmeans"
)

// EmptyClusterPolicy decides what happens when a cluster loses all members.
type EmptyClusterPolicy = kmeans.EmptyClusterPolicy

const (
	// EmptyKeepPrevious keeps the centroid the cluster had before the pass (default).
	EmptyKeepPrevious = kmeans.EmptyKeepPrevious
	// EmptyFail aborts the run with an *EmptyClusterError.
	EmptyFail = kmeans.EmptyFail
)

// DefaultMaxIterations is the iteration cap used when Config.MaxIterations is 0.
const DefaultMaxIterations = kmeans.DefaultMaxIterations

// DefaultProgressInterval is the minimum time between progress log lines.
const DefaultProgressInterval = 5 * time.Second

// Config holds the immutable parameters of a search.
type Config struct {
	// K is the number of clusters.
	K int
	// PickingLimit bounds the prefix of vectors eligible as initial centroids.
	PickingLimit int
	// Metric is used for both assignment and distortion.
	Metric distance.Metric
	// MaxIterations caps Lloyd's iteration per initialization (0 = DefaultMaxIterations).
	MaxIterations int
	// EmptyCluster selects the empty cluster policy.
	EmptyCluster EmptyClusterPolicy
}

// Validate checks the configuration without looking at a dataset.
func (c Config) Validate() error {
	switch {
	case c.K <= 0:
		return &ConfigError{Field: "k", Value: c.K, cause: ErrInvalidK}
	case c.PickingLimit <= 0:
		return &ConfigError{Field: "picking_limit", Value: c.PickingLimit, cause: ErrInvalidPickingLimit}
	case c.PickingLimit < c.K:
		return &ConfigError{Field: "picking_limit", Value: c.PickingLimit, cause: ErrPickingLimitBelowK}
	case c.MaxIterations < 0:
		return &ConfigError{Field: "max_iterations", Value: c.MaxIterations, cause: ErrInvalidMaxIterations}
	case c.EmptyCluster != EmptyKeepPrevious && c.EmptyCluster != EmptyFail:
		return &ConfigError{Field: "empty_cluster", Value: c.EmptyCluster, cause: ErrInvalidEmptyClusterPolicy}
	}
	if _, err := distance.Provider(c.Metric); err != nil {
		return &ConfigError{Field: "distance", Value: c.Metric, cause: err}
	}
	return nil
}

type options struct {
	config           Config
	logger           *Logger
	metricsCollector MetricsCollector
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		progressInterval: DefaultProgressInterval,
	}
}

// Option configures a search.
type Option func(*options)

// WithConfig replaces the whole search configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithK sets the number of clusters.
func WithK(k int) Option {
	return func(o *options) {
		o.config.K = k
	}
}

// WithPickingLimit sets how many leading vectors may serve as initial centroids.
func WithPickingLimit(limit int) Option {
	return func(o *options) {
		o.config.PickingLimit = limit
	}
}

// WithMetric selects the distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.config.Metric = m
	}
}

// WithMaxIterations caps Lloyd's iteration per initialization.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.config.MaxIterations = n
	}
}

// WithEmptyClusterPolicy selects what happens to clusters without members.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.config.EmptyCluster = p
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics are disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithProgressInterval sets the minimum time between progress log lines.
// A value <= 0 disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// ParseEmptyClusterPolicy parses "keep" or "fail".
func ParseEmptyClusterPolicy(name string) (EmptyClusterPolicy, error) {
	return kmeans.ParseEmptyClusterPolicy(name)
}
