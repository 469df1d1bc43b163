package exkmeans

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hupe1980/exkmeans/distance"
	"github.com/hupe1980/exkmeans/internal/partition"
	"github.com/hupe1980/exkmeans/model"
	"github.com/hupe1980/exkmeans/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneDim(values ...int64) *model.Dataset {
	vectors := make([]model.Vector, len(values))
	for i, v := range values {
		vectors[i] = model.Vector{v}
	}
	return &model.Dataset{Dimension: 1, Vectors: vectors}
}

func TestSearch_EndToEnd(t *testing.T) {
	ds := oneDim(1, 2, 10, 11)

	res, err := Search(context.Background(), ds,
		WithK(2),
		WithPickingLimit(4),
		WithMetric(distance.MetricManhattan),
	)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 6)

	wantInit := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, sol := range res.Solutions {
		assert.Equal(t, wantInit[i], sol.InitialIndices)
		assert.Equal(t, []model.Vector{{1}, {10}}, sol.Centroids)
		assert.Equal(t, [][]int{{0, 1}, {2, 3}}, sol.Clusters)
		assert.Equal(t, int64(2), sol.Distortion)
	}

	// All combinations converge to the same partition; the first one wins.
	best, ok := res.BestSolution()
	require.True(t, ok)
	assert.Equal(t, 0, res.Best)
	assert.Equal(t, []model.Vector{{1}, {2}}, best.Initial)
}

func TestSearch_GlobalBestIsMinimalAndEarliest(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, metric := range []distance.Metric{distance.MetricManhattan, distance.MetricEuclidean} {
		ds := rng.BlobDataset(3, 5, 2, 500, 40)

		res, err := Search(context.Background(), ds,
			WithK(3),
			WithPickingLimit(7),
			WithMetric(metric),
		)
		require.NoError(t, err)
		require.Len(t, res.Solutions, 35)

		best, ok := res.BestSolution()
		require.True(t, ok)
		for i, sol := range res.Solutions {
			assert.LessOrEqual(t, best.Distortion, sol.Distortion)
			if sol.Distortion == best.Distortion {
				assert.GreaterOrEqual(t, i, res.Best, "tie must keep the earliest combination")
			}
		}

		fn, err := distance.Provider(metric)
		require.NoError(t, err)
		for _, sol := range res.Solutions {
			require.NoError(t, partition.Verify(ds.Len(), sol.Clusters))

			var want int64
			for k, members := range sol.Clusters {
				for _, idx := range members {
					want += fn(ds.Vectors[idx], sol.Centroids[k])
				}
			}
			assert.Equal(t, want, sol.Distortion)
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ds := testutil.NewRNG(99).BlobDataset(2, 6, 3, 300, 30)
	opts := []Option{WithK(2), WithPickingLimit(6), WithMetric(distance.MetricEuclidean)}

	a, err := Search(context.Background(), ds, opts...)
	require.NoError(t, err)
	b, err := Search(context.Background(), ds, opts...)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSearch_FewerEligibleThanK(t *testing.T) {
	res, err := Search(context.Background(), oneDim(1, 2), WithK(3), WithPickingLimit(5))
	require.NoError(t, err)

	assert.Empty(t, res.Solutions)
	assert.Equal(t, -1, res.Best)
	_, ok := res.BestSolution()
	assert.False(t, ok)
}

func TestSearch_PickingLimitBoundsPrefix(t *testing.T) {
	res, err := Search(context.Background(), oneDim(1, 2, 10, 11, 50), WithK(2), WithPickingLimit(3))
	require.NoError(t, err)
	require.Len(t, res.Solutions, 3)

	for _, sol := range res.Solutions {
		for _, idx := range sol.InitialIndices {
			assert.Less(t, idx, 3)
		}
	}
}

func TestSearch_InitialCentroidsAreCopies(t *testing.T) {
	ds := oneDim(1, 2, 10, 11)

	res, err := Search(context.Background(), ds, WithK(2), WithPickingLimit(2))
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)

	res.Solutions[0].Initial[0][0] = 99
	assert.Equal(t, int64(1), ds.Vectors[0][0])
}

func TestSearch_InvalidConfig(t *testing.T) {
	ds := oneDim(1, 2)

	tests := []struct {
		name  string
		opts  []Option
		cause error
	}{
		{"ZeroK", []Option{WithK(0), WithPickingLimit(2)}, ErrInvalidK},
		{"ZeroPickingLimit", []Option{WithK(1), WithPickingLimit(0)}, ErrInvalidPickingLimit},
		{"PickingLimitBelowK", []Option{WithK(3), WithPickingLimit(2)}, ErrPickingLimitBelowK},
		{"NegativeIterations", []Option{WithK(1), WithPickingLimit(1), WithMaxIterations(-1)}, ErrInvalidMaxIterations},
		{"UnknownMetric", []Option{WithK(1), WithPickingLimit(1), WithMetric(distance.Metric(9))}, distance.ErrUnknownMetric},
		{"UnknownPolicy", []Option{WithK(1), WithPickingLimit(1), WithEmptyClusterPolicy(EmptyClusterPolicy(7))}, ErrInvalidEmptyClusterPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Search(context.Background(), ds, tt.opts...)
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestSearch_NilAndRaggedDataset(t *testing.T) {
	_, err := Search(context.Background(), nil, WithK(1), WithPickingLimit(1))
	assert.ErrorIs(t, err, ErrNilDataset)

	ragged := &model.Dataset{Dimension: 2, Vectors: []model.Vector{{1, 2}, {3}}}
	_, err = Search(context.Background(), ragged, WithK(1), WithPickingLimit(1))
	var de *DatasetError
	assert.ErrorAs(t, err, &de)
}

func TestSearch_NotConverged(t *testing.T) {
	_, err := Search(context.Background(), oneDim(1, 2, 10, 11),
		WithK(2),
		WithPickingLimit(2),
		WithMaxIterations(1),
	)

	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []int{0, 1}, se.Combination)

	var nce *NotConvergedError
	require.ErrorAs(t, err, &nce)
	assert.Equal(t, 1, nce.Iterations)
}

func TestSearch_EmptyClusterPolicy(t *testing.T) {
	ds := oneDim(0, 0, 5)

	res, err := Search(context.Background(), ds, WithK(2), WithPickingLimit(2))
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)
	assert.Equal(t, []model.Vector{{1}, {0}}, res.Solutions[0].Centroids)

	_, err = Search(context.Background(), ds, WithK(2), WithPickingLimit(2), WithEmptyClusterPolicy(EmptyFail))
	var ece *EmptyClusterError
	assert.ErrorAs(t, err, &ece)
}

func TestSearch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := &BasicMetricsCollector{}
	_, err := Search(ctx, oneDim(1, 2, 10, 11), WithK(2), WithPickingLimit(4), WithMetricsCollector(mc))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), mc.GetStats().SearchErrors)
}

func TestSearch_MetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mc := &BasicMetricsCollector{}

	_, err := Search(context.Background(), oneDim(1, 2, 10, 11),
		WithK(2),
		WithPickingLimit(4),
		WithLogger(logger),
		WithMetricsCollector(mc),
	)
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(6), stats.CombinationCount)
	assert.Equal(t, int64(0), stats.CombinationErrors)
	assert.Equal(t, int64(3), stats.MaxIterations)
	assert.Equal(t, int64(1), stats.SearchCount)

	out := buf.String()
	assert.Contains(t, out, "search completed")
	assert.Contains(t, out, "combination converged")
	assert.Contains(t, out, "metric=manhattan")
}

func TestValidateDataset(t *testing.T) {
	cfg := Config{K: 2, PickingLimit: 4}

	assert.NoError(t, ValidateDataset(cfg, oneDim(1, 2, 3, 4, 5)))
	assert.NoError(t, ValidateDataset(cfg, oneDim(1, 2)))

	var de *DatasetError
	assert.ErrorAs(t, ValidateDataset(cfg, oneDim(1)), &de)
	assert.ErrorIs(t, ValidateDataset(cfg, nil), ErrNilDataset)
}

func TestKeepBest(t *testing.T) {
	sols := []model.Solution{{Distortion: 5}, {Distortion: 3}, {Distortion: 3}, {Distortion: 4}}

	best := -1
	for i := range sols {
		best = keepBest(sols, best, i)
	}
	assert.Equal(t, 1, best)
}
