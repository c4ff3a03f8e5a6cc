package octant

import (
	"iter"

	"github.com/hupe1980/octree/internal/arena"
)

// Members yields the chain indices owned by n.
func (x *Index) Members(n *Node) iter.Seq[uint32] {
	start, size := n.Start, n.Size
	return func(yield func(uint32) bool) {
		idx := start
		for i := uint32(0); i < size; i++ {
			if !yield(idx) {
				return
			}
			idx = x.chain[idx]
		}
	}
}

// Walk visits every node depth-first, parents before children and children
// in octant order. It stops when fn returns false.
func (x *Index) Walk(fn func(h arena.Handle, n *Node) bool) {
	if x.root.IsNil() {
		return
	}
	x.walk(x.root, fn)
}

func (x *Index) walk(h arena.Handle, fn func(arena.Handle, *Node) bool) bool {
	n := x.nodes.Get(h)
	if !fn(h, n) {
		return false
	}
	for _, child := range n.Children {
		if child.IsNil() {
			continue
		}
		if !x.walk(child, fn) {
			return false
		}
	}
	return true
}

// Leaves yields every leaf in depth-first octant order.
func (x *Index) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		x.Walk(func(_ arena.Handle, n *Node) bool {
			if !n.Leaf {
				return true
			}
			return yield(n)
		})
	}
}
