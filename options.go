package strsim

type options struct {
	workers   int
	cacheSize int
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures Comparer behavior.
//
// Options primarily exist to avoid exploding the constructor surface
// (e.g. cache-specific constructor variants).
type Option func(*options)

// WithWorkers configures the default worker count for batch evaluation.
//
// Worker counts above the available hardware parallelism are permitted (the
// goroutines just contend for CPU). A count of 1 evaluates sequentially on
// the calling goroutine.
//
// If unset, runtime.GOMAXPROCS(0) is used.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithCacheSize enables LRU memoization of single-pair scores with the given
// capacity. Useful for dedup-style workloads where the same pairs recur.
//
// Batch evaluation never consults the cache; candidates in a batch are
// assumed to be mostly distinct and cache synchronization would serialize
// the workers.
//
// If size <= 0, memoization is disabled (the default).
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithLogger configures structured logging for comparer operations.
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
