// Package dispatch implements the fork-join worker pool used for batch
// metric evaluation. A pool is scoped to a single Map call: workers are
// spawned on entry and fully joined before Map returns, so concurrent calls
// never share state.
package dispatch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidWorkerCount is returned when a worker count below 1 is requested.
var ErrInvalidWorkerCount = errors.New("worker count must be positive")

// Map applies fn to every element of items using up to workers goroutines and
// returns the results in input order.
//
// Items are partitioned into contiguous near-equal chunks, one per worker;
// the last chunk absorbs the remainder. Each worker writes into its own
// disjoint range of the pre-sized output slice, so ordering is deterministic
// for any worker count and no post-merge is needed.
//
// If fn fails for any element the whole call fails with that error and any
// partially computed results are discarded. A failure cancels ctx for the
// remaining workers, which stop at their next chunk boundary (best effort).
//
// An empty items slice returns an empty result without spawning anything,
// and workers == 1 runs inline on the calling goroutine.
func Map[S, T any](ctx context.Context, workers int, items []S, fn func(S) (T, error)) ([]T, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	out := make([]T, len(items))
	if len(items) == 0 {
		return out, nil
	}

	if workers > len(items) {
		workers = len(items)
	}

	if workers == 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := fn(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	chunk := len(items) / workers
	rem := len(items) % workers

	start := 0
	for w := 0; w < workers; w++ {
		end := start + chunk
		if w < rem {
			end++
		}
		lo, hi := start, end
		start = end

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := fn(items[i])
				if err != nil {
					return err
				}
				out[i] = v
			}
			return nil
		})
	}

	// Join the pool. Wait returns the first error reported by a worker, and
	// no worker outlives this call.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
