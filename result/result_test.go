package result

import (
	"bytes"
	"testing"

	"github.com/hupe1980/exkmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVector(t *testing.T) {
	tests := []struct {
		name string
		v    model.Vector
		want string
	}{
		{"Empty", model.Vector{}, "()"},
		{"Single", model.Vector{7}, "(7,)"},
		{"Pair", model.Vector{1, -2}, "(1, -2)"},
		{"Extremes", model.Vector{-9223372036854775808, 9223372036854775807}, "(-9223372036854775808, 9223372036854775807)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVector(tt.v))
		})
	}
}

func TestFormatVectorsAndClusters(t *testing.T) {
	vectors := []model.Vector{{1, 2}, {3, 4}, {5, 6}}

	assert.Equal(t, "[]", FormatVectors(nil))
	assert.Equal(t, "[(1, 2), (3, 4)]", FormatVectors(vectors[:2]))
	assert.Equal(t, "[[(5, 6), (1, 2)], [], [(3, 4)]]", FormatClusters(vectors, [][]int{{2, 0}, nil, {1}}))
}

func exampleResult() *model.Result {
	ds := &model.Dataset{Dimension: 1, Vectors: []model.Vector{{1}, {2}, {10}, {11}}}
	return &model.Result{
		Dataset: ds,
		Solutions: []model.Solution{
			{
				InitialIndices: []int{0, 1},
				Initial:        []model.Vector{{1}, {2}},
				Centroids:      []model.Vector{{1}, {10}},
				Clusters:       [][]int{{0, 1}, {2, 3}},
				Distortion:     2,
			},
			{
				InitialIndices: []int{2, 3},
				Initial:        []model.Vector{{10}, {11}},
				Centroids:      []model.Vector{{1}, {10}},
				Clusters:       [][]int{{0, 1}, {2, 3}},
				Distortion:     2,
			},
		},
		Best: 0,
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Write(exampleResult()))

	want := "initialization centroids,distortion,centroids,clusters\n" +
		`"[(1,), (2,)]",2,"[(1,), (10,)]","[[(1,), (2,)], [(10,), (11,)]]"` + "\n" +
		`"[(10,), (11,)]",2,"[(1,), (10,)]","[[(1,), (2,)], [(10,), (11,)]]"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, func(o *Options) { o.Quiet = true })
	assert.Equal(t, []string{ColumnInitialization, ColumnDistortion, ColumnCentroids}, w.Header())

	require.NoError(t, w.Write(exampleResult()))

	want := "initialization centroids,distortion,centroids\n" +
		`"[(1,), (2,)]",2,"[(1,), (10,)]"` + "\n" +
		`"[(10,), (11,)]",2,"[(1,), (10,)]"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_CRLF(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, func(o *Options) { o.UseCRLF = true })

	require.NoError(t, w.Write(&model.Result{Best: -1}))
	assert.Equal(t, "initialization centroids,distortion,centroids,clusters\r\n", buf.String())
}

func TestWriter_NilResult(t *testing.T) {
	assert.Error(t, NewWriter(&bytes.Buffer{}).Write(nil))
}
