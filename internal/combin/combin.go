package combin

import (
	"iter"
	"math/bits"
)

// Combinations yields every k-element subset of [0, n) in lexicographic order.
//
// The yielded slice is reused between iterations; callers that keep it must
// copy it. Nothing is yielded when k <= 0 or k > n.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			if !yield(idx) {
				return
			}

			// Rightmost position that can still be advanced.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}

			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Count returns C(n, k). The boolean is false if the value does not fit in a uint64.
func Count(n, k int) (uint64, bool) {
	if k < 0 || n < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}

	var c uint64 = 1
	for i := 1; i <= k; i++ {
		// c * (n-k+i) / i stays integral at every step.
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		c, _ = bits.Div64(hi, lo, uint64(i))
	}
	return c, true
}
