// Package strsim implements string similarity and distance metrics over
// Unicode codepoint sequences, with parallel one-to-many evaluation.
//
// # Metrics
//
//   - Levenshtein, DamerauLevenshtein, OSADistance, Hamming (distances)
//   - Jaro, JaroWinkler, SorensenDice (similarities in [0, 1])
//   - NormalizedLevenshtein, NormalizedDamerauLevenshtein, NormalizedOSA
//     (distance scaled into [0, 1], 1.0 = identical)
//
// All metrics compare codepoints, not bytes, so multi-byte characters count
// as single units.
//
// # Quick Start
//
// Single pairs:
//
//	d := strsim.Levenshtein("hello world", "Hello, World")  // 3
//	s := strsim.Jaro("martha", "marhta")
//
// One reference against many candidates on a bounded worker pool, results in
// candidate order:
//
//	dists, err := vectorized.Levenshtein(4, "hello world", candidates)
//
// # Configured Engine
//
// Comparer adds enum dispatch, logging, metrics, and optional memoization:
//
//	cmp, err := strsim.NewComparer(
//	    strsim.WithWorkers(8),
//	    strsim.WithCacheSize(10_000),
//	    strsim.WithLogger(strsim.NewTextLogger(slog.LevelDebug)),
//	)
//	scores, err := cmp.BatchSimilarity(ctx, metric.KindJaroWinkler, "reference", candidates)
//
// # Concurrency
//
// Batch evaluation is fork-join: each call creates its own pool of worker
// goroutines, partitions the candidates into contiguous chunks, and joins
// every worker before returning. Concurrent batch calls are fully
// independent, and results are deterministic for any worker count.
//
// # Errors
//
// Hamming on unequal-length inputs returns ErrLengthMismatch; batch calls
// with a worker count below 1 return ErrInvalidWorkerCount. Defined edge
// cases (Jaro of two empty strings, normalized scores of empty strings) are
// values, never errors. A failing candidate aborts its whole batch; callers
// get either a fully populated result or an error, never a mix.
package strsim
