package octant

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/octree/internal/arena"
	"github.com/hupe1980/octree/internal/geom"
)

// ErrInvariant is returned by Validate when the tree is inconsistent.
var ErrInvariant = errors.New("octant: invariant violated")

// Validate checks the structural invariants of the tree:
//
//   - every point index belongs to exactly one leaf
//   - the root run enumerates every index exactly once
//   - every member lies inside its leaf's cube
//   - internal windows match their first and last children and sizes add up
//   - every child has half its parent's radius and is one level deeper
//   - leaves above the leaf size are marked forced
//
// An empty index is valid.
func (x *Index) Validate() error {
	if x.root.IsNil() {
		return nil
	}
	n := uint(len(x.points))

	seen := bitset.New(n)
	var err error
	x.Walk(func(h arena.Handle, node *Node) bool {
		if node.Leaf {
			err = x.validateLeaf(h, node, seen)
		} else {
			err = x.validateInternal(h, node)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if seen.Count() != n {
		return fmt.Errorf("%w: leaves cover %d of %d points", ErrInvariant, seen.Count(), n)
	}

	root := x.nodes.Get(x.root)
	if root.Size != uint32(n) {
		return fmt.Errorf("%w: root size %d, want %d", ErrInvariant, root.Size, n)
	}
	chained := bitset.New(n)
	for idx := range x.Members(root) {
		if chained.Test(uint(idx)) {
			return fmt.Errorf("%w: index %d repeats in the root run", ErrInvariant, idx)
		}
		chained.Set(uint(idx))
	}
	return nil
}

func (x *Index) validateLeaf(h arena.Handle, n *Node, seen *bitset.BitSet) error {
	if n.Size > x.cfg.LeafSize && !n.Forced {
		return fmt.Errorf("%w: leaf %d holds %d points", ErrInvariant, h, n.Size)
	}
	for _, child := range n.Children {
		if !child.IsNil() {
			return fmt.Errorf("%w: leaf %d has children", ErrInvariant, h)
		}
	}

	var last uint32
	for idx := range x.Members(n) {
		if int(idx) >= len(x.points) {
			return fmt.Errorf("%w: leaf %d links to index %d", ErrInvariant, h, idx)
		}
		if seen.Test(uint(idx)) {
			return fmt.Errorf("%w: index %d appears in more than one leaf", ErrInvariant, idx)
		}
		seen.Set(uint(idx))
		if !n.Cube.ContainsPoint(x.points[idx]) {
			return fmt.Errorf("%w: point %d lies outside leaf %d", ErrInvariant, idx, h)
		}
		last = idx
	}
	if n.Size > 0 && last != n.End {
		return fmt.Errorf("%w: leaf %d ends at %d, want %d", ErrInvariant, h, last, n.End)
	}
	return nil
}

func (x *Index) validateInternal(h arena.Handle, n *Node) error {
	var (
		first, last *Node
		total       uint32
	)
	for code, child := range n.Children {
		if child.IsNil() {
			continue
		}
		c := x.nodes.Get(child)
		if c == nil {
			return fmt.Errorf("%w: node %d has dangling child %d", ErrInvariant, h, child)
		}
		if c.Cube.Radius != 0.5*n.Cube.Radius {
			return fmt.Errorf("%w: child %d radius %g, parent %g", ErrInvariant, child, c.Cube.Radius, n.Cube.Radius)
		}
		if want := geom.ChildCenter(n.Cube.Center, n.Cube.Radius, uint8(code)); c.Cube.Center != want {
			return fmt.Errorf("%w: child %d center %v, want %v", ErrInvariant, child, c.Cube.Center, want)
		}
		if c.Depth != n.Depth+1 {
			return fmt.Errorf("%w: child %d depth %d, parent %d", ErrInvariant, child, c.Depth, n.Depth)
		}
		if first == nil {
			first = c
		}
		last = c
		total += c.Size
	}

	if first == nil {
		return fmt.Errorf("%w: internal node %d has no children", ErrInvariant, h)
	}
	if n.Start != first.Start || n.End != last.End {
		return fmt.Errorf("%w: node %d window [%d,%d], children [%d,%d]",
			ErrInvariant, h, n.Start, n.End, first.Start, last.End)
	}
	if n.Size != total {
		return fmt.Errorf("%w: node %d size %d, children sum %d", ErrInvariant, h, n.Size, total)
	}
	return nil
}
