package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/exkmeans/distance"
	"github.com/hupe1980/exkmeans/model"
)

// DefaultMaxIterations caps the number of assignment passes when
// Config.MaxIterations is not set.
const DefaultMaxIterations = 10000

// EmptyClusterPolicy decides what happens when a cluster loses all members.
type EmptyClusterPolicy int

const (
	// EmptyKeepPrevious keeps the centroid the cluster had during the pass.
	EmptyKeepPrevious EmptyClusterPolicy = iota
	// EmptyFail aborts with an *EmptyClusterError.
	EmptyFail
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyKeepPrevious:
		return "keep"
	case EmptyFail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseEmptyClusterPolicy returns the policy for "keep" or "fail".
func ParseEmptyClusterPolicy(name string) (EmptyClusterPolicy, error) {
	switch name {
	case "keep":
		return EmptyKeepPrevious, nil
	case "fail":
		return EmptyFail, nil
	default:
		return 0, fmt.Errorf("unknown empty cluster policy %q", name)
	}
}

var (
	// ErrNoDistance is returned when Config.Distance is nil.
	ErrNoDistance = errors.New("kmeans: distance function is required")
	// ErrInitialCentroids is returned when the initial centroid set does not match K or the dimension.
	ErrInitialCentroids = errors.New("kmeans: invalid initial centroids")
)

// NotConvergedError is returned when the iteration cap is hit before a fixed point.
type NotConvergedError struct {
	Iterations int
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("kmeans: did not converge after %d iterations", e.Iterations)
}

// EmptyClusterError is returned under EmptyFail when a cluster has no members.
type EmptyClusterError struct {
	Cluster   int
	Iteration int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("kmeans: cluster %d is empty after iteration %d", e.Cluster, e.Iteration)
}

// Config holds the parameters of a Lloyd run. It is not modified by Run.
type Config struct {
	K             int
	Dimension     int
	Distance      distance.Func
	MaxIterations int
	EmptyCluster  EmptyClusterPolicy
}

func (c Config) maxIterations() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

// Outcome is the fixed point reached by Run.
type Outcome struct {
	// Centroids ordered by cluster index.
	Centroids []model.Vector
	// Clusters[k] lists vector indices assigned to cluster k.
	Clusters [][]int
	// Iterations is the number of assignment passes performed.
	Iterations int
}

// Run performs Lloyd's iteration over vectors starting from initial.
func Run(cfg Config, vectors []model.Vector, initial []model.Vector) (*Outcome, error) {
	if cfg.Distance == nil {
		return nil, ErrNoDistance
	}
	if cfg.K <= 0 || len(initial) != cfg.K {
		return nil, fmt.Errorf("%w: got %d centroids for k=%d", ErrInitialCentroids, len(initial), cfg.K)
	}
	for i, c := range initial {
		if len(c) != cfg.Dimension {
			return nil, fmt.Errorf("%w: centroid %d has dimension %d, want %d", ErrInitialCentroids, i, len(c), cfg.Dimension)
		}
	}

	// Every vector starts in cluster 0; the first pass corrects it.
	clusters := make([][]int, cfg.K)
	clusters[0] = make([]int, len(vectors))
	for i := range vectors {
		clusters[0][i] = i
	}

	centroids := initial
	maxIter := cfg.maxIterations()

	for iter := 1; ; iter++ {
		next, changed := assign(cfg, vectors, centroids, clusters)

		updated, err := update(cfg, vectors, centroids, next, iter)
		if err != nil {
			return nil, err
		}
		clusters, centroids = next, updated

		if !changed {
			return &Outcome{Centroids: centroids, Clusters: clusters, Iterations: iter}, nil
		}
		if iter >= maxIter {
			return nil, &NotConvergedError{Iterations: iter}
		}
	}
}

// assign moves every vector to its nearest centroid. Ties keep the lowest
// centroid index.
func assign(cfg Config, vectors []model.Vector, centroids []model.Vector, clusters [][]int) ([][]int, bool) {
	next := make([][]int, cfg.K)
	changed := false

	for current, members := range clusters {
		for _, idx := range members {
			vec := vectors[idx]
			best := 0
			bestDist := cfg.Distance(vec, centroids[0])

			for j := 1; j < len(centroids); j++ {
				if d := cfg.Distance(vec, centroids[j]); d < bestDist {
					bestDist = d
					best = j
				}
			}

			next[best] = append(next[best], idx)
			if best != current {
				changed = true
			}
		}
	}

	return next, changed
}

// update recomputes each centroid as the truncated per-dimension mean of its members.
func update(cfg Config, vectors []model.Vector, previous []model.Vector, clusters [][]int, iter int) ([]model.Vector, error) {
	centroids := make([]model.Vector, cfg.K)
	for k, members := range clusters {
		if len(members) == 0 {
			if cfg.EmptyCluster == EmptyFail {
				return nil, &EmptyClusterError{Cluster: k, Iteration: iter}
			}
			centroids[k] = previous[k].Clone()
			continue
		}

		sum := make(model.Vector, cfg.Dimension)
		for _, idx := range members {
			for d, v := range vectors[idx] {
				sum[d] += v
			}
		}

		size := int64(len(members))
		for d := range sum {
			// Go integer division truncates toward zero.
			sum[d] /= size
		}
		centroids[k] = sum
	}
	return centroids, nil
}

// Distortion sums the distance between every vector and the centroid of its cluster.
func Distortion(fn distance.Func, vectors []model.Vector, centroids []model.Vector, clusters [][]int) int64 {
	var total int64
	for k, members := range clusters {
		for _, idx := range members {
			total += fn(vectors[idx], centroids[k])
		}
	}
	return total
}
