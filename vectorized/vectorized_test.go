package vectorized_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/strsim/metric"
	"github.com/hupe1980/strsim/testutil"
	"github.com/hupe1980/strsim/vectorized"
)

func TestLevenshtein(t *testing.T) {
	dists, err := vectorized.Levenshtein(2, "hello world", []string{"Hello, World", "hello world!"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, dists)
}

func TestLevenshtein_EmptyCandidates(t *testing.T) {
	dists, err := vectorized.Levenshtein(4, "reference", []string{})
	require.NoError(t, err)
	assert.Empty(t, dists)
}

func TestInvalidWorkerCount(t *testing.T) {
	_, err := vectorized.Levenshtein(0, "a", []string{"b"})
	require.ErrorIs(t, err, vectorized.ErrInvalidWorkerCount)

	_, err = vectorized.Jaro(-3, "a", []string{"b"})
	require.ErrorIs(t, err, vectorized.ErrInvalidWorkerCount)
}

func TestHamming(t *testing.T) {
	dists, err := vectorized.Hamming(2, "abc", []string{"abc", "abd", "xyz"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, dists)
}

// A single mismatched candidate fails the whole batch; no partial results.
func TestHamming_LengthMismatchAbortsBatch(t *testing.T) {
	candidates := []string{"abc", "abd", "ab", "xyz"}

	for _, workers := range []int{1, 2, 4, 8} {
		dists, err := vectorized.Hamming(workers, "abc", candidates)
		require.ErrorIs(t, err, metric.ErrLengthMismatch)
		assert.Nil(t, dists)
	}
}

func TestSimilarityFunctions(t *testing.T) {
	candidates := []string{"", "martha", "marhta", "unrelated"}

	tests := []struct {
		name string
		fn   func(workers int, a string, bs []string) ([]float64, error)
	}{
		{"Jaro", vectorized.Jaro},
		{"JaroWinkler", vectorized.JaroWinkler},
		{"SorensenDice", vectorized.SorensenDice},
		{"NormalizedLevenshtein", vectorized.NormalizedLevenshtein},
		{"NormalizedDamerauLevenshtein", vectorized.NormalizedDamerauLevenshtein},
		{"NormalizedOSA", vectorized.NormalizedOSA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sims, err := tt.fn(2, "martha", candidates)
			require.NoError(t, err)
			require.Len(t, sims, len(candidates))

			for i, s := range sims {
				assert.GreaterOrEqual(t, s, 0.0, "candidate %d", i)
				assert.LessOrEqual(t, s, 1.0, "candidate %d", i)
			}
			assert.InDelta(t, 1.0, sims[1], 1e-12, "self comparison")
		})
	}
}

// Results must be identical, in identical order, for any worker count.
func TestOrderInvariance(t *testing.T) {
	rng := testutil.NewRNG(4711)
	reference := rng.RandomString(8, 16, testutil.MixedAlphabet)
	candidates := rng.RandomStrings(157, 0, 32, testutil.MixedAlphabet)

	baseline, err := vectorized.Levenshtein(1, reference, candidates)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		got, err := vectorized.Levenshtein(workers, reference, candidates)
		require.NoError(t, err)
		assert.Equal(t, baseline, got, "workers=%d", workers)
	}

	simBaseline, err := vectorized.JaroWinkler(1, reference, candidates)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		got, err := vectorized.JaroWinkler(workers, reference, candidates)
		require.NoError(t, err)
		assert.Equal(t, simBaseline, got, "workers=%d", workers)
	}
}

func TestDistanceFunctions(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(workers int, a string, bs []string) ([]int, error)
		a        string
		bs       []string
		expected []int
	}{
		{"Levenshtein", vectorized.Levenshtein, "kitten", []string{"sitting", "kitten"}, []int{3, 0}},
		{"OSADistance", vectorized.OSADistance, "ca", []string{"abc", "ac"}, []int{3, 1}},
		{"DamerauLevenshtein", vectorized.DamerauLevenshtein, "ca", []string{"abc", "ac"}, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(2, tt.a, tt.bs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Worker counts far above the candidate count (and the hardware parallelism)
// are permitted.
func TestOversizedWorkerCount(t *testing.T) {
	dists, err := vectorized.Levenshtein(1024, "abc", []string{"abd", "abc"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, dists)
}
