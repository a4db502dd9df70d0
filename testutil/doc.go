// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random 2D point sets and for driving the
// clustering engine with deterministic index sources.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, -10, 10)
//	pts, truth := rng.ClusteredPoints(1000, centers, 0.5)
//
// # Deterministic Seeding
//
//	src := testutil.NewFixedSource(0, 2) // first centroid from points[0], second from points[2]
package testutil
