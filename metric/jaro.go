package metric

import "github.com/bits-and-blooms/bitset"

const (
	// winklerPrefixScale is the weight given to each shared prefix codepoint.
	winklerPrefixScale = 0.1

	// winklerMaxPrefix caps the shared prefix considered by the Winkler boost.
	winklerMaxPrefix = 4

	// winklerBoostThreshold is the minimum Jaro similarity required before
	// the prefix boost is applied.
	winklerBoostThreshold = 0.7
)

// Jaro calculates the Jaro similarity between two codepoint sequences.
// The returned value is between 0.0 and 1.0 (higher value means more
// similar). Two empty sequences are identical by convention (1.0); if
// exactly one sequence is empty the similarity is 0.0.
func Jaro(a, b []rune) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := bitset.New(uint(la))
	bMatched := bitset.New(uint(lb))

	matches := 0
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb-1, i+window)
		for j := lo; j <= hi; j++ {
			if b[j] == a[i] && !bMatched.Test(uint(j)) {
				aMatched.Set(uint(i))
				bMatched.Set(uint(j))
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions: matched codepoints that are out of order when
	// both match sequences are read left to right. Each swapped pair counts
	// once, hence the half count.
	halfTransposed := 0
	j := 0
	for i := 0; i < la; i++ {
		if !aMatched.Test(uint(i)) {
			continue
		}
		for !bMatched.Test(uint(j)) {
			j++
		}
		if a[i] != b[j] {
			halfTransposed++
		}
		j++
	}
	transpositions := halfTransposed / 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3
}

// JaroWinkler calculates the Jaro-Winkler similarity: Jaro with a boost for
// sequences sharing a common prefix. The boost considers at most
// winklerMaxPrefix leading codepoints and is only applied when the base Jaro
// similarity exceeds winklerBoostThreshold, keeping dissimilar strings from
// being inflated by a coincidental prefix.
func JaroWinkler(a, b []rune) float64 {
	sim := Jaro(a, b)
	if sim <= winklerBoostThreshold {
		return sim
	}

	prefix := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
		if prefix == winklerMaxPrefix {
			break
		}
	}

	return sim + float64(prefix)*winklerPrefixScale*(1-sim)
}
