package combin

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(n, k int) [][]int {
	var out [][]int
	for c := range Combinations(n, k) {
		out = append(out, slices.Clone(c))
	}
	return out
}

func TestCombinations(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}, collect(4, 2))

	assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
	assert.Equal(t, [][]int{{0}, {1}, {2}}, collect(3, 1))
}

func TestCombinations_Empty(t *testing.T) {
	assert.Empty(t, collect(2, 3))
	assert.Empty(t, collect(5, 0))
	assert.Empty(t, collect(0, 1))
}

func TestCombinations_LexicographicAndCount(t *testing.T) {
	all := collect(9, 4)

	n, ok := Count(9, 4)
	assert.True(t, ok)
	assert.Equal(t, int(n), len(all))

	for i := 1; i < len(all); i++ {
		assert.Equal(t, -1, slices.Compare(all[i-1], all[i]), "combinations %v and %v out of order", all[i-1], all[i])
	}
	for _, c := range all {
		assert.True(t, slices.IsSorted(c))
	}
}

func TestCombinations_EarlyStop(t *testing.T) {
	seen := 0
	for range Combinations(10, 3) {
		seen++
		if seen == 5 {
			break
		}
	}
	assert.Equal(t, 5, seen)
}

func TestCount(t *testing.T) {
	tests := []struct {
		n, k int
		want uint64
	}{
		{4, 2, 6},
		{10, 0, 1},
		{10, 10, 1},
		{52, 5, 2598960},
		{3, 5, 0},
		{64, 32, 1832624140942590534},
	}
	for _, tt := range tests {
		got, ok := Count(tt.n, tt.k)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "C(%d,%d)", tt.n, tt.k)
	}

	_, ok := Count(200, 100)
	assert.False(t, ok)
}
