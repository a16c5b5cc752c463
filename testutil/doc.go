// Package testutil provides testing utilities for vecmmap.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random source for generating flag patterns and vector data.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	flags := rng.Bools(5000)   // random flag pattern
//	vec := make([]float32, 128)
//	rng.FillUniform(vec)       // uniform [0, 1)
package testutil
