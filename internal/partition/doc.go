// Package partition checks that a cluster assignment covers every vector
// exactly once.
package partition
