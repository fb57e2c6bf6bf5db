package metric

// bigram is a contiguous pair of adjacent codepoints.
type bigram [2]rune

// SorensenDice calculates the Sørensen-Dice coefficient between two codepoint
// sequences using bigrams: 2*|intersection| / (|bigrams(a)| + |bigrams(b)|).
//
// The intersection is a multiset intersection: repeated bigrams count with
// their multiplicity ("aaaa" vs "aaa" shares two "aa" bigrams, not one). Set
// semantics would produce different scores for repetitive inputs.
//
// Sequences too short to form a bigram get degenerate handling: two empty
// sequences score 1.0, and if either side has fewer than two codepoints the
// score is 1.0 for equal sequences and 0.0 otherwise.
func SorensenDice(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		if runesEqual(a, b) {
			return 1
		}
		return 0
	}

	counts := make(map[bigram]int, len(a)-1)
	for i := 0; i+1 < len(a); i++ {
		counts[bigram{a[i], a[i+1]}]++
	}

	intersection := 0
	for i := 0; i+1 < len(b); i++ {
		bg := bigram{b[i], b[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(a)-1+len(b)-1)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
