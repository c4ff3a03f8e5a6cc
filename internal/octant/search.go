package octant

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/octree/internal/arena"
	"github.com/hupe1980/octree/internal/geom"
)

// Search appends to dst the indices of points within radius of q and
// returns the extended slice. Indices appear in chain order.
//
// Points at distance zero are handled according to policy. An empty index,
// a radius that is not positive, or a NaN radius leaves dst unchanged.
func (x *Index) Search(dst []int, q mgl64.Vec3, radius float64, policy SelfMatch) []int {
	if x.root.IsNil() || !(radius > 0) {
		return dst
	}
	s := searcher{
		x:        x,
		q:        q,
		radius:   radius,
		radiusSq: radius * radius,
		policy:   policy,
	}
	return s.search(dst, x.root)
}

type searcher struct {
	x        *Index
	q        mgl64.Vec3
	radius   float64
	radiusSq float64
	policy   SelfMatch
}

func (s *searcher) search(dst []int, h arena.Handle) []int {
	n := s.x.nodes.Get(h)

	if geom.Contains(s.q, s.radiusSq, n.Cube) {
		return s.acceptAll(dst, n)
	}

	if n.Leaf {
		return s.acceptExact(dst, n)
	}

	for _, child := range n.Children {
		if child.IsNil() {
			continue
		}
		if !geom.Overlaps(s.q, s.radius, s.radiusSq, s.x.nodes.Get(child).Cube) {
			continue
		}
		dst = s.search(dst, child)
	}
	return dst
}

func (s *searcher) acceptAll(dst []int, n *Node) []int {
	chain, points := s.x.chain, s.x.points
	idx := n.Start
	for i := uint32(0); i < n.Size; i++ {
		if s.policy != SelfMatchExclude || geom.DistanceSq(points[idx], s.q) > 0 {
			dst = append(dst, int(idx))
		}
		idx = chain[idx]
	}
	return dst
}

func (s *searcher) acceptExact(dst []int, n *Node) []int {
	chain, points := s.x.chain, s.x.points
	idx := n.Start
	for i := uint32(0); i < n.Size; i++ {
		d := geom.DistanceSq(points[idx], s.q)
		if d < s.radiusSq && (d > 0 || s.policy == SelfMatchInclude) {
			dst = append(dst, int(idx))
		}
		idx = chain[idx]
	}
	return dst
}
