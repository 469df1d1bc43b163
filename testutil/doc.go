// Package testutil provides testing utilities for exkmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that produces integer vectors and datasets.
//
// # Random Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.Dataset(50, 3, -100, 100)     // uniform coordinates in [-100, 100]
//	ds = rng.BlobDataset(3, 10, 2, 1000, 5) // 3 well separated blobs
package testutil
