// Package exkmeans computes exact-arithmetic k-means by exhaustive search
// over initial centroid sets.
//
// Every K-element combination of the first PickingLimit vectors seeds one run
// of Lloyd's iteration, which alternates nearest-centroid assignment and
// truncated-mean recomputation until no vector moves. Each run is scored by
// its distortion, the sum of the selected distance between every vector and
// its centroid. All coordinates and distances are integers, so results are
// reproducible bit for bit and can be graded against a reference solution.
//
// # Quick Start
//
//	ds, _ := codec.Decode(data)
//	res, _ := exkmeans.Search(ctx, ds,
//	    exkmeans.WithK(2),
//	    exkmeans.WithPickingLimit(4),
//	    exkmeans.WithMetric(distance.MetricManhattan),
//	)
//	best, _ := res.BestSolution()
//
//	w := result.NewWriter(os.Stdout, func(o *result.Options) { o.Quiet = true })
//	_ = w.Write(res)
//
// # Determinism
//
// Combinations are enumerated in lexicographic index order and the global
// best is the first combination reaching the minimal distortion. Each
// combination is a pure function of (initial centroids, vectors, metric);
// the search itself runs sequentially.
//
// # Failure Modes
//
// A search fails as a whole when Lloyd's iteration does not reach a fixed
// point within MaxIterations (*NotConvergedError) or, under EmptyFail, when a
// cluster loses all members (*EmptyClusterError). Both are wrapped in a
// *SolveError naming the offending combination.
package exkmeans
