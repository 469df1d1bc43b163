package partition

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Reason classifies a partition violation.
type Reason int

const (
	// Duplicate means an index appears in more than one slot.
	Duplicate Reason = iota
	// Missing means an index in [0, n) appears in no cluster.
	Missing
	// OutOfRange means an index is negative or >= n.
	OutOfRange
)

func (r Reason) String() string {
	switch r {
	case Duplicate:
		return "duplicate"
	case Missing:
		return "missing"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Error describes the first partition violation found.
type Error struct {
	Index   int
	Cluster int // -1 for Missing
	Reason  Reason
}

func (e *Error) Error() string {
	if e.Reason == Missing {
		return fmt.Sprintf("partition violated: vector %d is %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("partition violated: vector %d in cluster %d is %s", e.Index, e.Cluster, e.Reason)
}

// Verify reports an *Error unless clusters holds every index in [0, n)
// exactly once.
func Verify(n int, clusters [][]int) error {
	if n < 0 || n > math.MaxUint32 {
		return fmt.Errorf("partition: cannot verify %d vectors", n)
	}

	seen := roaring.New()
	for k, members := range clusters {
		for _, idx := range members {
			if idx < 0 || idx >= n {
				return &Error{Index: idx, Cluster: k, Reason: OutOfRange}
			}
			if !seen.CheckedAdd(uint32(idx)) {
				return &Error{Index: idx, Cluster: k, Reason: Duplicate}
			}
		}
	}

	if seen.GetCardinality() == uint64(n) {
		return nil
	}

	missing := roaring.New()
	missing.AddRange(0, uint64(n))
	missing.AndNot(seen)
	return &Error{Index: int(missing.Minimum()), Cluster: -1, Reason: Missing}
}
