package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/exkmeans/model"
)

// ErrUnknownMetric is returned when a metric name or value is not supported.
var ErrUnknownMetric = errors.New("unknown distance metric")

// SquaredEuclidean calculates Σ(aᵢ−bᵢ)².
// Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b model.Vector) int64 {
	var sum int64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// SquaredManhattan calculates (Σ|aᵢ−bᵢ|)², the square of the L1 distance.
// Assumes vectors are the same length (caller's responsibility).
func SquaredManhattan(a, b model.Vector) int64 {
	var sum int64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum * sum
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricManhattan Metric = iota
	MetricEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricManhattan:
		return "manhattan"
	case MetricEuclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric for the given name ("manhattan" or "euclidean").
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "manhattan":
		return MetricManhattan, nil
	case "euclidean":
		return MetricEuclidean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b model.Vector) int64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricManhattan:
		return SquaredManhattan, nil
	case MetricEuclidean:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}
