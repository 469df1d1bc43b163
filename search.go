package exkmeans

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/exkmeans/distance"
	"github.com/hupe1980/exkmeans/internal/combin"
	"github.com/hupe1980/exkmeans/internal/kmeans"
	"github.com/hupe1980/exkmeans/internal/partition"
	"github.com/hupe1980/exkmeans/model"
)

// maxPrealloc bounds the up-front capacity of the solution list.
const maxPrealloc = 1 << 16

// Search runs Lloyd's iteration from every K-combination of the first
// PickingLimit vectors and returns one Solution per combination, in
// lexicographic combination order, together with the global best.
//
// If fewer than K vectors are eligible the result is empty and Best is -1.
// Any failure aborts the whole search.
func Search(ctx context.Context, ds *model.Dataset, optFns ...Option) (*model.Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := opts.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := ds.Check(); err != nil {
		return nil, &DatasetError{Msg: err.Error()}
	}

	distFn, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}

	lloyd := kmeans.Config{
		K:             cfg.K,
		Dimension:     ds.Dimension,
		Distance:      distFn,
		MaxIterations: cfg.MaxIterations,
		EmptyCluster:  cfg.EmptyCluster,
	}

	eligible := min(cfg.PickingLimit, ds.Len())
	total, _ := combin.Count(eligible, cfg.K)

	logger := opts.logger.WithK(cfg.K).WithDimension(ds.Dimension).WithMetric(cfg.Metric.String())
	logger.DebugContext(ctx, "search started",
		"vectors", ds.Len(),
		"eligible", eligible,
		"combinations", total,
	)

	result := &model.Result{
		Dataset:   ds,
		Solutions: make([]model.Solution, 0, min(total, maxPrealloc)),
		Best:      -1,
	}

	progress := rate.Sometimes{Interval: opts.progressInterval}
	start := time.Now()

	for comb := range combin.Combinations(eligible, cfg.K) {
		if err := ctx.Err(); err != nil {
			return nil, finish(ctx, opts, logger, result, start, err)
		}

		combStart := time.Now()
		sol, err := solve(lloyd, ds.Vectors, comb)
		opts.metricsCollector.RecordCombination(sol.Iterations, sol.Distortion, time.Since(combStart), err)
		logger.LogCombination(ctx, comb, sol.Iterations, sol.Distortion, err)
		if err != nil {
			return nil, finish(ctx, opts, logger, result, start, &SolveError{Combination: slices.Clone(comb), cause: err})
		}

		result.Solutions = append(result.Solutions, sol)
		result.Best = keepBest(result.Solutions, result.Best, len(result.Solutions)-1)

		if opts.progressInterval > 0 {
			progress.Do(func() {
				logger.LogProgress(ctx, len(result.Solutions), total, result.Solutions[result.Best].Distortion)
			})
		}
	}

	return result, finish(ctx, opts, logger, result, start, nil)
}

func finish(ctx context.Context, opts options, logger *Logger, result *model.Result, start time.Time, err error) error {
	opts.metricsCollector.RecordSearch(len(result.Solutions), time.Since(start), err)

	best, ok := result.BestSolution()
	if !ok && err == nil {
		logger.InfoContext(ctx, "search completed without eligible combinations")
		return nil
	}
	logger.LogSearch(ctx, len(result.Solutions), best.InitialIndices, best.Distortion, err)
	return err
}

// solve runs one initialization. It owns copies of its initial centroids and
// shares nothing with other combinations.
func solve(cfg kmeans.Config, vectors []model.Vector, comb []int) (model.Solution, error) {
	indices := slices.Clone(comb)
	initial := make([]model.Vector, len(indices))
	for i, idx := range indices {
		initial[i] = vectors[idx].Clone()
	}

	out, err := kmeans.Run(cfg, vectors, initial)
	if err != nil {
		return model.Solution{InitialIndices: indices}, err
	}
	if err := partition.Verify(len(vectors), out.Clusters); err != nil {
		return model.Solution{InitialIndices: indices, Iterations: out.Iterations}, fmt.Errorf("lloyd iteration broke the partition: %w", err)
	}

	return model.Solution{
		InitialIndices: indices,
		Initial:        initial,
		Centroids:      out.Centroids,
		Clusters:       out.Clusters,
		Distortion:     kmeans.Distortion(cfg.Distance, vectors, out.Centroids, out.Clusters),
		Iterations:     out.Iterations,
	}, nil
}

// keepBest returns the index of the better of best and candidate. Only a
// strictly smaller distortion replaces the incumbent, so ties keep the
// earlier combination.
func keepBest(solutions []model.Solution, best, candidate int) int {
	if best < 0 || solutions[candidate].Distortion < solutions[best].Distortion {
		return candidate
	}
	return best
}

// ValidateDataset checks that ds can be searched with cfg: every vector must
// have the dataset dimension and at least K vectors must be eligible as
// initial centroids.
func ValidateDataset(cfg Config, ds *model.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}
	if err := ds.Check(); err != nil {
		return &DatasetError{Msg: err.Error()}
	}
	if eligible := min(cfg.PickingLimit, ds.Len()); cfg.K > eligible {
		return &DatasetError{Msg: fmt.Sprintf("k=%d exceeds the %d vectors eligible as initial centroids (picking limit %d, %d vectors)", cfg.K, eligible, cfg.PickingLimit, ds.Len())}
	}
	return nil
}
