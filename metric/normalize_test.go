package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/strsim/testutil"
)

func TestNormalizedDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"BothEmpty", "", "", 0.0},
		{"LeftEmpty", "", "abc", 1.0},
		{"Identical", "same", "same", 0.0},
		{"CaseAndPunctuation", "hello world", "Hello, World", 0.25}, // 3 / 12
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedDistance(Levenshtein, []rune(tt.a), []rune(tt.b))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestNormalizedLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"BothEmpty", "", "", 1.0},
		{"LeftEmpty", "", "abc", 0.0},
		{"Identical", "same", "same", 1.0},
		{"CaseAndPunctuation", "hello world", "Hello, World", 0.75}, // 1 - 3/12
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedLevenshtein([]rune(tt.a), []rune(tt.b))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestNormalized_Properties(t *testing.T) {
	rng := testutil.NewRNG(2024)

	for i := 0; i < 200; i++ {
		a := []rune(rng.RandomString(0, 24, testutil.MixedAlphabet))
		b := []rune(rng.RandomString(0, 24, testutil.MixedAlphabet))

		for _, fn := range []func(a, b []rune) int{Levenshtein, OSADistance, DamerauLevenshtein} {
			dist := NormalizedDistance(fn, a, b)
			sim := NormalizedSimilarity(fn, a, b)

			assert.GreaterOrEqual(t, dist, 0.0)
			assert.LessOrEqual(t, dist, 1.0)
			// Similarity is the exact complement, not an approximation.
			assert.Equal(t, 1-dist, sim)
		}

		assert.InDelta(t, 1.0, NormalizedLevenshtein(a, a), 1e-12)
		assert.InDelta(t, 1.0, NormalizedDamerauLevenshtein(a, a), 1e-12)
		assert.InDelta(t, 1.0, NormalizedOSA(a, a), 1e-12)
	}
}
