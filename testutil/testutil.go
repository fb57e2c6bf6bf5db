package testutil

import (
	"math/rand"
	"sync"
)

// ASCIIAlphabet is a small ASCII alphabet. The limited size makes repeated
// runes (and therefore transpositions and bigram collisions) likely.
var ASCIIAlphabet = []rune("abcdefgh")

// MixedAlphabet mixes ASCII with multi-byte codepoints to catch kernels that
// accidentally compare bytes instead of codepoints.
var MixedAlphabet = []rune("abcdéüß日本語👍")

// RNG encapsulates a seeded random number generator for reproducible test
// data. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// RandomString generates a random string of length in [minLen, maxLen] drawn
// from alphabet.
func (r *RNG) RandomString(minLen, maxLen int, alphabet []rune) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(runes)
}

// RandomStrings generates count random strings via RandomString.
func (r *RNG) RandomStrings(count, minLen, maxLen int, alphabet []rune) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = r.RandomString(minLen, maxLen, alphabet)
	}
	return out
}

// ReferenceLevenshtein is a naive full-matrix Levenshtein implementation used
// as ground truth for the optimized rolling-row kernel. O(len(a)*len(b))
// space; only suitable for tests.
func ReferenceLevenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	d := make([][]int, len(ar)+1)
	for i := range d {
		d[i] = make([]int, len(br)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(br); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}
	return d[len(ar)][len(br)]
}
