// Package kmeans implements exact integer Lloyd iteration.
//
// Run starts from a caller-supplied centroid set with every vector placed in
// cluster 0, then alternates assignment and centroid recomputation until an
// assignment pass moves no vector. Centroid coordinates are truncated means
// (integer division rounding toward zero), so no floating point is involved.
//
// Used by the exhaustive search driver, once per initial centroid combination.
package kmeans
