package result

import (
	"strconv"

	"github.com/hupe1980/exkmeans/model"
)

// AppendVector appends the tuple literal of v to dst.
func AppendVector(dst []byte, v model.Vector) []byte {
	dst = append(dst, '(')
	for i, c := range v {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = strconv.AppendInt(dst, c, 10)
	}
	if len(v) == 1 {
		dst = append(dst, ',')
	}
	return append(dst, ')')
}

// AppendVectors appends the list literal of vs to dst.
func AppendVectors(dst []byte, vs []model.Vector) []byte {
	dst = append(dst, '[')
	for i, v := range vs {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = AppendVector(dst, v)
	}
	return append(dst, ']')
}

// AppendClusters appends the nested list literal of clusters to dst, resolving
// member indices against vectors.
func AppendClusters(dst []byte, vectors []model.Vector, clusters [][]int) []byte {
	dst = append(dst, '[')
	for k, members := range clusters {
		if k > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, '[')
		for i, idx := range members {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = AppendVector(dst, vectors[idx])
		}
		dst = append(dst, ']')
	}
	return append(dst, ']')
}

// FormatVector returns the tuple literal of v.
func FormatVector(v model.Vector) string {
	return string(AppendVector(nil, v))
}

// FormatVectors returns the list literal of vs.
func FormatVectors(vs []model.Vector) string {
	return string(AppendVectors(nil, vs))
}

// FormatClusters returns the nested list literal of clusters.
func FormatClusters(vectors []model.Vector, clusters [][]int) string {
	return string(AppendClusters(nil, vectors, clusters))
}
