// Package metric implements string similarity and distance kernels over
// Unicode codepoint sequences.
//
// # Distance metrics (integer scores)
//
//   - Levenshtein: insert/delete/substitute edit distance
//   - OSADistance: optimal string alignment (restricted Damerau)
//   - DamerauLevenshtein: unrestricted Damerau-Levenshtein
//   - Hamming: positional difference count (equal lengths only)
//
// # Similarity metrics (float64 in [0, 1])
//
//   - Jaro, JaroWinkler
//   - SorensenDice (bigram multisets)
//   - NormalizedLevenshtein, NormalizedDamerauLevenshtein, NormalizedOSA
//
// All kernels take []rune, not string or []byte, so "héllo" and "héllo"
// compare position by position regardless of UTF-8 encoding width. Callers
// holding strings convert once at the boundary:
//
//	d := metric.Levenshtein([]rune(a), []rune(b))
//
// Kernels are pure and safe for concurrent use. For dispatch by value rather
// than by function identity, use Kind with DistanceProvider or
// SimilarityProvider:
//
//	fn, err := metric.DistanceProvider(metric.KindLevenshtein)
package metric
