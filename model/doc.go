// Package model defines core types used throughout exkmeans.
//
// # Data Types
//
//   - Vector: fixed-length tuple of signed 64-bit coordinates
//   - Dataset: the decoded input, all vectors sharing one dimension
//   - Solution: outcome of one initialization (initial centroids, final
//     centroids, cluster membership and distortion)
//   - Result: every Solution of a run in enumeration order plus the index
//     of the global best
//
// Vectors are never mutated after decoding. Clusters reference vectors by
// their index in Dataset.Vectors.
package model
