package distance

import (
	"testing"

	"github.com/hupe1980/exkmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Vector
		expected int64
	}{
		{"Simple", model.Vector{1, 2, 3}, model.Vector{4, 5, 6}, 27},
		{"Zero", model.Vector{0, 0, 0}, model.Vector{0, 0, 0}, 0},
		{"Identical", model.Vector{1, 2, 3}, model.Vector{1, 2, 3}, 0},
		{"Mixed", model.Vector{1, -1}, model.Vector{-1, 1}, 8},
		{"Empty", model.Vector{}, model.Vector{}, 0},
		{"Single", model.Vector{-5}, model.Vector{2}, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SquaredEuclidean(tt.a, tt.b))
			assert.Equal(t, tt.expected, SquaredEuclidean(tt.b, tt.a))
		})
	}
}

func TestSquaredManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Vector
		expected int64
	}{
		// (3 + 3 + 3)^2 = 81, while the euclidean variant gives 27.
		{"Simple", model.Vector{1, 2, 3}, model.Vector{4, 5, 6}, 81},
		{"Zero", model.Vector{0, 0}, model.Vector{0, 0}, 0},
		{"Mixed", model.Vector{1, -1}, model.Vector{-1, 1}, 16},
		{"Empty", model.Vector{}, model.Vector{}, 0},
		{"Single", model.Vector{-5}, model.Vector{2}, 49},
		{"Negative", model.Vector{-3, -4}, model.Vector{0, 0}, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SquaredManhattan(tt.a, tt.b))
			assert.Equal(t, tt.expected, SquaredManhattan(tt.b, tt.a))
		})
	}
}

func TestManhattanSquaresAggregate(t *testing.T) {
	a := model.Vector{0, 0}
	b := model.Vector{3, 4}

	assert.Equal(t, int64(49), SquaredManhattan(a, b))
	assert.Equal(t, int64(25), SquaredEuclidean(a, b))
	assert.NotEqual(t, SquaredManhattan(a, b), SquaredEuclidean(a, b))

	// In one dimension both definitions agree.
	assert.Equal(t, SquaredEuclidean(model.Vector{7}, model.Vector{2}), SquaredManhattan(model.Vector{7}, model.Vector{2}))
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "manhattan", MetricManhattan.String())
		assert.Equal(t, "euclidean", MetricEuclidean.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Default", func(t *testing.T) {
		var m Metric
		assert.Equal(t, MetricManhattan, m)
	})

	t.Run("Parse", func(t *testing.T) {
		m, err := ParseMetric("euclidean")
		require.NoError(t, err)
		assert.Equal(t, MetricEuclidean, m)

		m, err = ParseMetric("manhattan")
		require.NoError(t, err)
		assert.Equal(t, MetricManhattan, m)

		_, err = ParseMetric("Euclidean")
		assert.ErrorIs(t, err, ErrUnknownMetric)

		_, err = ParseMetric("cosine")
		assert.ErrorIs(t, err, ErrUnknownMetric)
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricEuclidean)
		require.NoError(t, err)
		assert.Equal(t, int64(27), f(model.Vector{1, 2, 3}, model.Vector{4, 5, 6}))

		f, err = Provider(MetricManhattan)
		require.NoError(t, err)
		assert.Equal(t, int64(81), f(model.Vector{1, 2, 3}, model.Vector{4, 5, 6}))

		_, err = Provider(Metric(99))
		assert.ErrorIs(t, err, ErrUnknownMetric)
	})
}
