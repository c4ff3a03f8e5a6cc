// Package octree provides a radius-neighbor index over 3D points.
//
// The index is a point octree following Behley et al., "Efficient Radius
// Neighbor Search in Three-dimensional Point Clouds" (ICRA 2015). It is
// rebuilt in bulk, typically once per simulation tick, and answers "which
// points lie within r of p" queries faster than a linear scan. Points are
// never copied: the tree keeps a reference to the caller's slice and
// returns indices into it.
//
// # Quick Start
//
//	tree := octree.New()
//	if err := tree.Initialize(positions); err != nil {
//	    return err // errors.Is(err, octree.ErrInvalidInput)
//	}
//	for _, i := range tree.FindNeighbors(positions[self], 2.5) {
//	    steer(agents[i])
//	}
//
// # Per-Tick Rebuilds
//
// There is no incremental update. Call Initialize with the current
// positions each tick, before that tick's queries start. Node and link
// storage is reused across rebuilds.
//
// # Concurrent Queries
//
// Queries are read-only. Many goroutines may call FindNeighbors on a built
// tree; AppendNeighbors lets each reuse its own buffer:
//
//	buf = tree.AppendNeighbors(buf[:0], p, r)
//
// BatchFindNeighbors fans a slice of queries out over a bounded number of
// goroutines.
//
// # Zero-Distance Points
//
// Whether a point located exactly at the query position is reported is a
// policy, see SelfMatch. The default reproduces the reference algorithm,
// which reports such a point only when its whole subtree lies inside the
// query sphere.
//
// # Key Features
//
//   - Allocation-free partitioning through an in-place index chain
//   - Bulk acceptance of subtrees fully inside the query sphere
//   - Guaranteed termination on duplicate and degenerate inputs
//   - Leaf enumeration for debug overlays
//   - Structured logging (log/slog) and pluggable metrics
package octree
