package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Order(t *testing.T) {
	items := make([]int, 103) // deliberately not divisible by the worker counts
	for i := range items {
		items[i] = i
	}

	double := func(v int) (int, error) { return v * 2, nil }

	for _, workers := range []int{1, 2, 4, 8, 200} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			out, err := Map(context.Background(), workers, items, double)
			require.NoError(t, err)
			require.Len(t, out, len(items))
			for i, v := range out {
				assert.Equal(t, i*2, v)
			}
		})
	}
}

func TestMap_EmptyInput(t *testing.T) {
	var calls atomic.Int64
	out, err := Map(context.Background(), 4, nil, func(int) (int, error) {
		calls.Add(1)
		return 0, nil
	})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, calls.Load())
}

func TestMap_InvalidWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1} {
		_, err := Map(context.Background(), workers, []int{1}, func(v int) (int, error) {
			return v, nil
		})
		require.ErrorIs(t, err, ErrInvalidWorkerCount)
	}
}

func TestMap_ErrorAbortsBatch(t *testing.T) {
	errBoom := errors.New("boom")
	items := make([]int, 64)
	for i := range items {
		items[i] = i
	}

	for _, workers := range []int{1, 4} {
		out, err := Map(context.Background(), workers, items, func(v int) (int, error) {
			if v == 17 {
				return 0, errBoom
			}
			return v, nil
		})
		require.ErrorIs(t, err, errBoom)
		assert.Nil(t, out, "no partial results on failure")
	}
}

func TestMap_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Map(ctx, 2, []int{1, 2, 3, 4}, func(v int) (int, error) {
		return v, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

// Each element must be visited exactly once, for any worker count.
func TestMap_ChunkCoverage(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 101} {
		for _, workers := range []int{1, 2, 3, 8, 64, 128} {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			visits := make([]atomic.Int64, n)
			_, err := Map(context.Background(), workers, items, func(v int) (int, error) {
				visits[v].Add(1)
				return v, nil
			})
			require.NoError(t, err)

			for i := range visits {
				assert.EqualValues(t, 1, visits[i].Load(), "n=%d workers=%d index=%d", n, workers, i)
			}
		}
	}
}
