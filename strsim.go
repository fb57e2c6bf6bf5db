package strsim

import "github.com/hupe1980/strsim/metric"

// Levenshtein calculates the minimum number of insertions, deletions, and
// substitutions required to change one string into the other.
func Levenshtein(a, b string) int {
	return metric.Levenshtein([]rune(a), []rune(b))
}

// DamerauLevenshtein calculates the unrestricted Damerau-Levenshtein distance
// between two strings. Like optimal string alignment, but substrings can be
// edited an unlimited number of times, and the triangle inequality holds.
func DamerauLevenshtein(a, b string) int {
	return metric.DamerauLevenshtein([]rune(a), []rune(b))
}

// OSADistance calculates the optimal string alignment distance between two
// strings. Like Levenshtein but allows adjacent transpositions; each
// substring can only be edited once.
func OSADistance(a, b string) int {
	return metric.OSADistance([]rune(a), []rune(b))
}

// Hamming calculates the number of positions at which two equal-length
// strings differ. Returns ErrLengthMismatch when the codepoint counts differ.
func Hamming(a, b string) (int, error) {
	return metric.Hamming([]rune(a), []rune(b))
}

// Jaro calculates the Jaro similarity between two strings. The returned
// value is between 0.0 and 1.0 (higher value means more similar).
func Jaro(a, b string) float64 {
	return metric.Jaro([]rune(a), []rune(b))
}

// JaroWinkler calculates the Jaro similarity with a boost for strings that
// share a common prefix.
func JaroWinkler(a, b string) float64 {
	return metric.JaroWinkler([]rune(a), []rune(b))
}

// SorensenDice calculates the Sørensen-Dice similarity between two strings
// using codepoint bigrams.
func SorensenDice(a, b string) float64 {
	return metric.SorensenDice([]rune(a), []rune(b))
}

// NormalizedLevenshtein calculates a normalized Levenshtein score between
// 0.0 and 1.0 (inclusive), where 1.0 means the strings are the same.
func NormalizedLevenshtein(a, b string) float64 {
	return metric.NormalizedLevenshtein([]rune(a), []rune(b))
}

// NormalizedDamerauLevenshtein calculates a normalized Damerau-Levenshtein
// score between 0.0 and 1.0 (inclusive), where 1.0 means the strings are the
// same.
func NormalizedDamerauLevenshtein(a, b string) float64 {
	return metric.NormalizedDamerauLevenshtein([]rune(a), []rune(b))
}

// NormalizedOSA calculates a normalized optimal string alignment score
// between 0.0 and 1.0 (inclusive), where 1.0 means the strings are the same.
func NormalizedOSA(a, b string) float64 {
	return metric.NormalizedOSA([]rune(a), []rune(b))
}
