// Package result encodes search results as CSV.
//
// The header is
//
//	initialization centroids,distortion,centroids,clusters
//
// with the clusters column omitted in quiet mode. One row is written per
// explored initialization, in enumeration order. Vector-valued cells use
// tuple and list literals:
//
//	(1, 2)                    a vector
//	(7,)                      a one-dimensional vector
//	[(1, 2), (3, 4)]          a centroid set
//	[[(1, 2)], [(3, 4)]]      clusters
//
// These literals parse back with a tuple/list/set grammar, so consumers can
// compare results structurally instead of textually.
package result
