package octree

import (
	"context"
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/octree/internal/conv"
	"github.com/hupe1980/octree/internal/geom"
	"github.com/hupe1980/octree/internal/octant"
)

// Tree is a radius-search index over a caller-owned slice of points.
//
// A Tree is rebuilt from scratch by Initialize; it does not support
// incremental updates. Queries never mutate the tree, so any number of
// goroutines may query a built tree concurrently. Initialize and Clear must
// not run concurrently with each other or with queries.
type Tree struct {
	opts      options
	index     *octant.Index
	lastBuild time.Duration
}

// Leaf describes one leaf cube of the tree.
type Leaf struct {
	Center mgl64.Vec3
	// Radius is half the side length of the cube.
	Radius float64
	// Size is the number of points stored in the leaf.
	Size  int
	Depth int
	// Forced is set on leaves above the leaf size whose points could not be
	// separated further.
	Forced bool
}

// Stats describes the current tree.
type Stats struct {
	Points        int
	Nodes         int
	Leaves        int
	MaxDepth      int
	ForcedLeaves  int
	BuildDuration time.Duration
}

// New creates an empty tree.
func New(optFns ...Option) *Tree {
	opts := applyOptions(optFns)
	return &Tree{
		opts:  opts,
		index: octant.New(opts.config),
	}
}

// Initialize discards the current tree and indexes points.
//
// The tree keeps a reference to points; the caller must not modify them
// until the next Initialize or Clear. Every coordinate must be finite.
//
// If points is rejected the tree is left exactly as it was. If the build
// itself fails the tree is left empty.
func (t *Tree) Initialize(points []mgl64.Vec3) error {
	ctx := context.Background()
	start := time.Now()

	if err := validatePoints(points); err != nil {
		t.opts.metricsCollector.RecordBuild(len(points), time.Since(start), err)
		t.opts.logger.LogBuild(ctx, len(points), Stats{}, 0, err)
		return err
	}

	err := translateError(t.index.Build(points))
	duration := time.Since(start)
	if err == nil {
		t.lastBuild = duration
	} else {
		t.lastBuild = 0
	}

	t.opts.metricsCollector.RecordBuild(len(points), duration, err)
	t.opts.logger.LogBuild(ctx, len(points), t.Stats(), duration, err)
	return err
}

func validatePoints(points []mgl64.Vec3) error {
	if len(points) == 0 {
		return ErrEmptyPoints
	}
	if _, err := conv.IntToUint32(len(points)); err != nil {
		return &ErrTooManyPoints{Count: len(points), cause: err}
	}
	for i, p := range points {
		if !geom.Finite(p) {
			return &ErrInvalidPoint{Index: i, Point: p}
		}
	}
	return nil
}

// Clear releases the tree and drops the reference to the points. The points
// themselves are not touched. Clear is idempotent.
func (t *Tree) Clear() {
	points := t.index.Len()
	t.index.Free()
	t.lastBuild = 0

	t.opts.metricsCollector.RecordClear()
	t.opts.logger.LogClear(context.Background(), points)
}

// FindNeighbors returns the indices of the points within radius of
// position. Indices refer to the slice passed to the most recent
// Initialize.
//
// Results are in tree order, not distance order. An unbuilt tree, a radius
// that is not positive, and a NaN radius yield an empty result. See
// SelfMatch for how points exactly at position are reported.
func (t *Tree) FindNeighbors(position mgl64.Vec3, radius float64) []int {
	return t.AppendNeighbors(nil, position, radius)
}

// AppendNeighbors is like FindNeighbors but appends to dst and returns the
// extended slice. Concurrent callers must pass distinct buffers.
func (t *Tree) AppendNeighbors(dst []int, position mgl64.Vec3, radius float64) []int {
	start := time.Now()
	n := len(dst)
	dst = t.index.Search(dst, position, radius, t.opts.selfMatch.policy())
	t.opts.metricsCollector.RecordSearch(len(dst)-n, time.Since(start))
	return dst
}

// FindNeighborsBitmap returns the result of FindNeighbors as a set.
func (t *Tree) FindNeighborsBitmap(position mgl64.Vec3, radius float64) *roaring.Bitmap {
	bm := roaring.New()
	for _, idx := range t.FindNeighbors(position, radius) {
		bm.AddInt(idx)
	}
	return bm
}

// Len returns the number of indexed points.
func (t *Tree) Len() int {
	return t.index.Len()
}

// Built reports whether the tree currently holds an index.
func (t *Tree) Built() bool {
	return !t.index.Root().IsNil()
}

// Leaves yields every leaf cube in depth-first octant order. It is meant for
// debug overlays; the yielded values are copies.
func (t *Tree) Leaves() iter.Seq[Leaf] {
	return func(yield func(Leaf) bool) {
		for n := range t.index.Leaves() {
			leaf := Leaf{
				Center: n.Cube.Center,
				Radius: n.Cube.Radius,
				Size:   int(n.Size),
				Depth:  n.Depth,
				Forced: n.Forced,
			}
			if !yield(leaf) {
				return
			}
		}
	}
}

// Stats returns statistics about the current tree.
func (t *Tree) Stats() Stats {
	s := t.index.Stats()
	return Stats{
		Points:        t.index.Len(),
		Nodes:         s.Nodes,
		Leaves:        s.Leaves,
		MaxDepth:      s.MaxDepth,
		ForcedLeaves:  s.ForcedLeaves,
		BuildDuration: t.lastBuild,
	}
}

// Validate checks the structural invariants of the tree and returns an
// error wrapping ErrCorrupted if one is violated. It walks the whole tree
// and is meant for tests and debugging.
func (t *Tree) Validate() error {
	return translateError(t.index.Validate())
}
