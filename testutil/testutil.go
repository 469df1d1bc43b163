package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/exkmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64Range returns a pseudo-random number in [lo, hi].
func (r *RNG) Int64Range(lo, hi int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Int63n(hi-lo+1)
}

// Vector returns a vector of dimension dim with coordinates in [lo, hi].
func (r *RNG) Vector(dim int, lo, hi int64) model.Vector {
	v := make(model.Vector, dim)
	for i := range v {
		v[i] = r.Int64Range(lo, hi)
	}
	return v
}

// Dataset returns n vectors of dimension dim with coordinates in [lo, hi].
func (r *RNG) Dataset(n, dim int, lo, hi int64) *model.Dataset {
	vectors := make([]model.Vector, n)
	for i := range vectors {
		vectors[i] = r.Vector(dim, lo, hi)
	}
	return &model.Dataset{Dimension: dim, Vectors: vectors}
}

// BlobDataset returns blobs*perBlob vectors grouped around blob centers
// spaced by spread, each coordinate jittered by at most jitter. Vectors of
// different blobs are interleaved so that the first `blobs` vectors belong to
// distinct blobs.
func (r *RNG) BlobDataset(blobs, perBlob, dim int, spread, jitter int64) *model.Dataset {
	vectors := make([]model.Vector, 0, blobs*perBlob)
	for i := 0; i < perBlob; i++ {
		for b := 0; b < blobs; b++ {
			v := r.Vector(dim, -jitter, jitter)
			for d := range v {
				v[d] += int64(b) * spread
			}
			vectors = append(vectors, v)
		}
	}
	return &model.Dataset{Dimension: dim, Vectors: vectors}
}
