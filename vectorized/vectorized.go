// Package vectorized provides one-to-many metric evaluation: one reference
// string compared against a slice of candidates on a bounded worker pool.
//
// Every function takes the worker count first, mirroring the single-pair API
// in the root package otherwise:
//
//	dists, err := vectorized.Levenshtein(4, "reference", candidates)
//
// Results are always in candidate order, regardless of worker count. The pool
// is scoped to the call and torn down before it returns; concurrent calls are
// fully independent.
package vectorized

import (
	"context"

	"github.com/hupe1980/strsim/internal/dispatch"
	"github.com/hupe1980/strsim/metric"
)

// ErrInvalidWorkerCount is returned when workers < 1 is requested.
var ErrInvalidWorkerCount = dispatch.ErrInvalidWorkerCount

// evaluate fans one reference out over all candidates. The reference is
// converted to runes once; candidates are converted inside the workers.
func evaluate[T any](workers int, a string, bs []string, fn func(ar, br []rune) (T, error)) ([]T, error) {
	ar := []rune(a)
	return dispatch.Map(context.Background(), workers, bs, func(b string) (T, error) {
		return fn(ar, []rune(b))
	})
}

func evaluateDistance(workers int, a string, bs []string, fn func(ar, br []rune) int) ([]int, error) {
	return evaluate(workers, a, bs, func(ar, br []rune) (int, error) {
		return fn(ar, br), nil
	})
}

func evaluateSimilarity(workers int, a string, bs []string, fn func(ar, br []rune) float64) ([]float64, error) {
	return evaluate(workers, a, bs, func(ar, br []rune) (float64, error) {
		return fn(ar, br), nil
	})
}

// Levenshtein calculates the Levenshtein distance between a and each
// candidate in bs using the given number of workers.
func Levenshtein(workers int, a string, bs []string) ([]int, error) {
	return evaluateDistance(workers, a, bs, metric.Levenshtein)
}

// DamerauLevenshtein calculates the unrestricted Damerau-Levenshtein distance
// between a and each candidate in bs using the given number of workers.
func DamerauLevenshtein(workers int, a string, bs []string) ([]int, error) {
	return evaluateDistance(workers, a, bs, metric.DamerauLevenshtein)
}

// OSADistance calculates the optimal string alignment distance between a and
// each candidate in bs using the given number of workers.
func OSADistance(workers int, a string, bs []string) ([]int, error) {
	return evaluateDistance(workers, a, bs, metric.OSADistance)
}

// Hamming calculates the Hamming distance between a and each candidate in bs
// using the given number of workers. If any candidate differs in length from
// a, the whole batch fails with metric.ErrLengthMismatch and no partial
// results are returned.
func Hamming(workers int, a string, bs []string) ([]int, error) {
	return evaluate(workers, a, bs, metric.Hamming)
}

// Jaro calculates the Jaro similarity between a and each candidate in bs
// using the given number of workers.
func Jaro(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.Jaro)
}

// JaroWinkler calculates the Jaro-Winkler similarity between a and each
// candidate in bs using the given number of workers.
func JaroWinkler(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.JaroWinkler)
}

// SorensenDice calculates the Sørensen-Dice bigram similarity between a and
// each candidate in bs using the given number of workers.
func SorensenDice(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.SorensenDice)
}

// NormalizedLevenshtein calculates the normalized Levenshtein similarity
// between a and each candidate in bs using the given number of workers.
func NormalizedLevenshtein(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.NormalizedLevenshtein)
}

// NormalizedDamerauLevenshtein calculates the normalized Damerau-Levenshtein
// similarity between a and each candidate in bs using the given number of
// workers.
func NormalizedDamerauLevenshtein(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.NormalizedDamerauLevenshtein)
}

// NormalizedOSA calculates the normalized optimal string alignment similarity
// between a and each candidate in bs using the given number of workers.
func NormalizedOSA(workers int, a string, bs []string) ([]float64, error) {
	return evaluateSimilarity(workers, a, bs, metric.NormalizedOSA)
}
