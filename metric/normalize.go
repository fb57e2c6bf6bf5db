package metric

// NormalizedDistance scales a raw edit distance into [0, 1] by dividing by
// the length of the longer sequence. Two empty sequences have distance 0 by
// definition (the division-by-zero case never raises).
func NormalizedDistance(fn func(a, b []rune) int, a, b []rune) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return float64(fn(a, b)) / float64(longest)
}

// NormalizedSimilarity is the similarity complement of NormalizedDistance:
// 1.0 means the sequences are identical, 0.0 means nothing matches.
func NormalizedSimilarity(fn func(a, b []rune) int, a, b []rune) float64 {
	return 1 - NormalizedDistance(fn, a, b)
}

// NormalizedLevenshtein calculates a normalized score of the Levenshtein
// algorithm between 0.0 and 1.0 (inclusive), where 1.0 means the sequences
// are the same.
func NormalizedLevenshtein(a, b []rune) float64 {
	return NormalizedSimilarity(Levenshtein, a, b)
}

// NormalizedDamerauLevenshtein calculates a normalized score of the
// Damerau-Levenshtein algorithm between 0.0 and 1.0 (inclusive), where 1.0
// means the sequences are the same.
func NormalizedDamerauLevenshtein(a, b []rune) float64 {
	return NormalizedSimilarity(DamerauLevenshtein, a, b)
}

// NormalizedOSA calculates a normalized score of the optimal string alignment
// algorithm between 0.0 and 1.0 (inclusive), where 1.0 means the sequences
// are the same.
func NormalizedOSA(a, b []rune) float64 {
	return NormalizedSimilarity(OSADistance, a, b)
}
