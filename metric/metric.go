// Package metric provides the public API for string metric calculations.
// All kernels operate on []rune so multi-byte and combining characters are
// compared as single codepoints, never as raw bytes.
package metric

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by Hamming when the inputs differ in length.
var ErrLengthMismatch = errors.New("length mismatch")

// Kind identifies a string metric for enum-based dispatch.
// Resolution from a Kind to a concrete function happens once at the API
// boundary via DistanceProvider/SimilarityProvider, never in hot loops.
type Kind int

const (
	KindLevenshtein Kind = iota
	KindDamerauLevenshtein
	KindOSA
	KindHamming
	KindJaro
	KindJaroWinkler
	KindSorensenDice
	KindNormalizedLevenshtein
	KindNormalizedDamerauLevenshtein
	KindNormalizedOSA
)

func (k Kind) String() string {
	switch k {
	case KindLevenshtein:
		return "Levenshtein"
	case KindDamerauLevenshtein:
		return "DamerauLevenshtein"
	case KindOSA:
		return "OSA"
	case KindHamming:
		return "Hamming"
	case KindJaro:
		return "Jaro"
	case KindJaroWinkler:
		return "JaroWinkler"
	case KindSorensenDice:
		return "SorensenDice"
	case KindNormalizedLevenshtein:
		return "NormalizedLevenshtein"
	case KindNormalizedDamerauLevenshtein:
		return "NormalizedDamerauLevenshtein"
	case KindNormalizedOSA:
		return "NormalizedOSA"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// DistanceFunc is a function type for edit-distance calculation.
// The error return exists for metrics with input constraints (Hamming);
// unconstrained metrics always return a nil error.
type DistanceFunc func(a, b []rune) (int, error)

// SimilarityFunc is a function type for similarity calculation in [0, 1].
type SimilarityFunc func(a, b []rune) (float64, error)

// DistanceProvider returns the distance function for the given kind.
func DistanceProvider(k Kind) (DistanceFunc, error) {
	switch k {
	case KindLevenshtein:
		return func(a, b []rune) (int, error) { return Levenshtein(a, b), nil }, nil
	case KindDamerauLevenshtein:
		return func(a, b []rune) (int, error) { return DamerauLevenshtein(a, b), nil }, nil
	case KindOSA:
		return func(a, b []rune) (int, error) { return OSADistance(a, b), nil }, nil
	case KindHamming:
		return Hamming, nil
	default:
		return nil, fmt.Errorf("unsupported distance kind: %v", k)
	}
}

// SimilarityProvider returns the similarity function for the given kind.
func SimilarityProvider(k Kind) (SimilarityFunc, error) {
	switch k {
	case KindJaro:
		return func(a, b []rune) (float64, error) { return Jaro(a, b), nil }, nil
	case KindJaroWinkler:
		return func(a, b []rune) (float64, error) { return JaroWinkler(a, b), nil }, nil
	case KindSorensenDice:
		return func(a, b []rune) (float64, error) { return SorensenDice(a, b), nil }, nil
	case KindNormalizedLevenshtein:
		return func(a, b []rune) (float64, error) { return NormalizedLevenshtein(a, b), nil }, nil
	case KindNormalizedDamerauLevenshtein:
		return func(a, b []rune) (float64, error) { return NormalizedDamerauLevenshtein(a, b), nil }, nil
	case KindNormalizedOSA:
		return func(a, b []rune) (float64, error) { return NormalizedOSA(a, b), nil }, nil
	default:
		return nil, fmt.Errorf("unsupported similarity kind: %v", k)
	}
}
