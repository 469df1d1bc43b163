package exkmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/exkmeans/internal/kmeans"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
	// ErrInvalidPickingLimit is returned when the picking limit is not positive.
	ErrInvalidPickingLimit = errors.New("picking limit must be positive")
	// ErrPickingLimitBelowK is returned when fewer initial centroids can be picked than k.
	ErrPickingLimitBelowK = errors.New("picking limit must be greater than or equal to k")
	// ErrInvalidMaxIterations is returned when the iteration cap is negative.
	ErrInvalidMaxIterations = errors.New("max iterations must not be negative")
	// ErrInvalidEmptyClusterPolicy is returned for an unknown empty cluster policy.
	ErrInvalidEmptyClusterPolicy = errors.New("invalid empty cluster policy")
	// ErrNilDataset is returned when Search is called without a dataset.
	ErrNilDataset = errors.New("dataset is required")
)

// NotConvergedError is returned when Lloyd's iteration hits the iteration cap.
type NotConvergedError = kmeans.NotConvergedError

// EmptyClusterError is returned under EmptyFail when a cluster loses all members.
type EmptyClusterError = kmeans.EmptyClusterError

// ConfigError indicates an invalid search configuration.
//
// The original underlying error can be accessed via errors.Unwrap.
type ConfigError struct {
	Field string
	Value any
	cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %v", e.Field, e.Value, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// DatasetError indicates a dataset that cannot be searched with the given configuration.
type DatasetError struct {
	Msg string
}

func (e *DatasetError) Error() string {
	return "invalid dataset: " + e.Msg
}

// SolveError reports a failure of Lloyd's iteration for one initialization.
//
// The original underlying error can be accessed via errors.Unwrap.
type SolveError struct {
	// Combination holds the dataset indices of the initial centroids.
	Combination []int
	cause       error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("initialization %v: %v", e.Combination, e.cause)
}

func (e *SolveError) Unwrap() error { return e.cause }
