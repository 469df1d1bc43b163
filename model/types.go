package model

import (
	"fmt"
	"slices"
)

// Vector is an ordered tuple of integer coordinates.
type Vector []int64

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v)
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Equal reports whether v and o hold the same coordinates.
func (v Vector) Equal(o Vector) bool {
	return slices.Equal(v, o)
}

// Dataset is a decoded input: Count vectors of the same Dimension.
type Dataset struct {
	Dimension int
	Vectors   []Vector
}

// Len returns the number of vectors.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Vectors)
}

// Check verifies that every vector has the declared dimension.
func (d *Dataset) Check() error {
	for i, v := range d.Vectors {
		if len(v) != d.Dimension {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), d.Dimension)
		}
	}
	return nil
}

// Solution is the outcome of running Lloyd's iteration from one initial
// centroid set.
type Solution struct {
	// InitialIndices are the dataset indices the initial centroids were
	// picked from, in selection order.
	InitialIndices []int
	// Initial holds the initial centroids in selection order.
	Initial []Vector
	// Centroids holds the final centroids ordered by cluster index.
	Centroids []Vector
	// Clusters[k] lists the dataset indices assigned to cluster k, in the
	// order they were assigned during the final pass.
	Clusters [][]int
	// Distortion is the sum of distances between each vector and the
	// centroid of its cluster.
	Distortion int64
	// Iterations is the number of assignment passes until convergence.
	Iterations int
}

// ClusterVectors resolves the cluster membership of s against vectors.
func (s Solution) ClusterVectors(vectors []Vector) [][]Vector {
	out := make([][]Vector, len(s.Clusters))
	for k, members := range s.Clusters {
		out[k] = make([]Vector, len(members))
		for i, idx := range members {
			out[k][i] = vectors[idx]
		}
	}
	return out
}

// Result holds every Solution of a run in enumeration order.
type Result struct {
	Dataset   *Dataset
	Solutions []Solution
	// Best is the index of the first Solution with minimal distortion,
	// or -1 when no combination was explored.
	Best int
}

// BestSolution returns the global best, if any.
func (r *Result) BestSolution() (Solution, bool) {
	if r == nil || r.Best < 0 || r.Best >= len(r.Solutions) {
		return Solution{}, false
	}
	return r.Solutions[r.Best], true
}

// String returns a short description of the Solution.
func (s Solution) String() string {
	return fmt.Sprintf("Solution(init=%v, distortion=%d, iterations=%d)", s.InitialIndices, s.Distortion, s.Iterations)
}
