package strsim

import (
	"context"
	"runtime"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hupe1980/strsim/internal/dispatch"
	"github.com/hupe1980/strsim/metric"
)

// cacheKey identifies a memoized single-pair score.
type cacheKey struct {
	kind metric.Kind
	a, b string
}

// Comparer is a configured string comparison engine with enum-based metric
// dispatch, batch evaluation on a scoped worker pool, and optional score
// memoization.
//
// A Comparer is safe for concurrent use. Batch calls never share worker
// pools: each call owns its own pool for its full duration.
type Comparer struct {
	workers int
	logger  *Logger
	metrics MetricsCollector

	distCache *lru.Cache[cacheKey, int]
	simCache  *lru.Cache[cacheKey, float64]
}

// NewComparer creates a Comparer with the given options.
func NewComparer(opts ...Option) (*Comparer, error) {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	c := &Comparer{
		workers: o.workers,
		logger:  o.logger,
		metrics: o.metrics,
	}

	if o.cacheSize > 0 {
		var err error
		if c.distCache, err = lru.New[cacheKey, int](o.cacheSize); err != nil {
			return nil, err
		}
		if c.simCache, err = lru.New[cacheKey, float64](o.cacheSize); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Workers returns the default worker count for batch evaluation.
func (c *Comparer) Workers() int {
	return c.workers
}

// Distance calculates the distance-family metric identified by kind for a
// single string pair.
func (c *Comparer) Distance(ctx context.Context, kind metric.Kind, a, b string) (int, error) {
	fn, err := metric.DistanceProvider(kind)
	if err != nil {
		return 0, err
	}

	key := cacheKey{kind: kind, a: a, b: b}
	if c.distCache != nil {
		if d, ok := c.distCache.Get(key); ok {
			return d, nil
		}
	}

	start := time.Now()
	d, err := fn([]rune(a), []rune(b))
	c.metrics.RecordCompare(kind, time.Since(start), err)
	c.logger.LogCompare(ctx, kind, err)
	if err != nil {
		return 0, err
	}

	if c.distCache != nil {
		c.distCache.Add(key, d)
	}
	return d, nil
}

// Similarity calculates the similarity-family metric identified by kind for
// a single string pair. The score is in [0, 1].
func (c *Comparer) Similarity(ctx context.Context, kind metric.Kind, a, b string) (float64, error) {
	fn, err := metric.SimilarityProvider(kind)
	if err != nil {
		return 0, err
	}

	key := cacheKey{kind: kind, a: a, b: b}
	if c.simCache != nil {
		if s, ok := c.simCache.Get(key); ok {
			return s, nil
		}
	}

	start := time.Now()
	s, err := fn([]rune(a), []rune(b))
	c.metrics.RecordCompare(kind, time.Since(start), err)
	c.logger.LogCompare(ctx, kind, err)
	if err != nil {
		return 0, err
	}

	if c.simCache != nil {
		c.simCache.Add(key, s)
	}
	return s, nil
}

// BatchDistance calculates the distance-family metric identified by kind
// between a and every candidate in bs, in candidate order, on the comparer's
// worker pool. If any candidate fails, the whole batch fails with that error
// and no partial results are returned.
func (c *Comparer) BatchDistance(ctx context.Context, kind metric.Kind, a string, bs []string) ([]int, error) {
	fn, err := metric.DistanceProvider(kind)
	if err != nil {
		return nil, err
	}

	ar := []rune(a)
	start := time.Now()
	out, err := dispatch.Map(ctx, c.workers, bs, func(b string) (int, error) {
		return fn(ar, []rune(b))
	})
	c.metrics.RecordBatch(kind, len(bs), c.workers, time.Since(start), err)
	c.logger.LogBatch(ctx, kind, len(bs), c.workers, err)
	return out, err
}

// BatchSimilarity calculates the similarity-family metric identified by kind
// between a and every candidate in bs, in candidate order, on the comparer's
// worker pool.
func (c *Comparer) BatchSimilarity(ctx context.Context, kind metric.Kind, a string, bs []string) ([]float64, error) {
	fn, err := metric.SimilarityProvider(kind)
	if err != nil {
		return nil, err
	}

	ar := []rune(a)
	start := time.Now()
	out, err := dispatch.Map(ctx, c.workers, bs, func(b string) (float64, error) {
		return fn(ar, []rune(b))
	})
	c.metrics.RecordBatch(kind, len(bs), c.workers, time.Since(start), err)
	c.logger.LogBatch(ctx, kind, len(bs), c.workers, err)
	return out, err
}
