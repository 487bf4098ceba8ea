// Package testutil provides testing utilities for brepgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for reproducible geometry, random
// profile generation, and tolerance-based comparisons of point lists.
//
// # Random Geometry
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Point(10)              // coordinates in [-10, 10)
//	prof := rng.StarProfile(8, 1, 2) // simple CCW polygon, radii in [1, 2)
//
// # Comparisons
//
//	testutil.RequirePointsInDelta(t, want, got, 1e-9)
package testutil
