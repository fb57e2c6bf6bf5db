// Package testutil provides testing utilities for strsim.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for reproducible random strings and naive
// reference implementations used as ground truth for the optimized kernels.
//
//	rng := testutil.NewRNG(seed)
//	s := rng.RandomString(0, 32, testutil.MixedAlphabet)
//	want := testutil.ReferenceLevenshtein(a, b)
package testutil
