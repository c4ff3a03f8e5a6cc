// Package testutil provides testing utilities for the octree index.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible point sets and for
// computing exact radius-search results by linear scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, -10, 10)      // uniform cube
//	points = rng.ClusteredPoints(1000, 8, 0.5, 10)  // gaussian blobs
//
// # Deterministic Layouts
//
//	grid := testutil.Grid(3, 3, 1, 1.0)     // 3x3 planar grid around the origin
//	dups := testutil.Duplicates(100, p)     // 100 copies of p
//
// # Exact Search (Ground Truth)
//
//	want := testutil.ExactRadius(points, query, radius)
//	ok := testutil.SameIndices(got, want)
package testutil
