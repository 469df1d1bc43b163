// Package distance provides the integer distance functions used by the
// k-means search.
//
// # Supported Metrics
//
//   - MetricManhattan: square of the L1 norm, (Σ|aᵢ−bᵢ|)² (default)
//   - MetricEuclidean: sum of squared differences, Σ(aᵢ−bᵢ)²
//
// Both metrics are "squared" so they can be used interchangeably for
// assignment and distortion scoring. Note that the Manhattan variant squares
// the aggregated L1 distance rather than each coordinate difference.
//
// # Usage
//
//	fn, err := distance.Provider(distance.MetricEuclidean)
//	d := fn(a, b)
package distance
