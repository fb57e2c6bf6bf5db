package strsim

import (
	"github.com/hupe1980/strsim/internal/dispatch"
	"github.com/hupe1980/strsim/metric"
)

var (
	// ErrLengthMismatch is returned by Hamming when the inputs differ in
	// length. Alias of metric.ErrLengthMismatch so callers of the facade
	// never need to import the metric package for error checks.
	ErrLengthMismatch = metric.ErrLengthMismatch

	// ErrInvalidWorkerCount is returned by batch operations when the
	// requested worker count is below 1.
	ErrInvalidWorkerCount = dispatch.ErrInvalidWorkerCount
)
