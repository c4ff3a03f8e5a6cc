package octant

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/octree/internal/arena"
	"github.com/hupe1980/octree/internal/geom"
)

var (
	// ErrNoPoints is returned by Build for an empty point slice.
	ErrNoPoints = errors.New("octant: no points")
	// ErrTooManyPoints is returned by Build when the chain cannot address
	// every point.
	ErrTooManyPoints = errors.New("octant: too many points")
)

// Build discards the current tree and indexes points. The caller owns
// points and must keep them unchanged until the next Build or Reset.
//
// Coordinates must be finite. On error the index is left empty.
func (x *Index) Build(points []mgl64.Vec3) error {
	x.Reset()

	if len(points) == 0 {
		return ErrNoPoints
	}
	if uint64(len(points)) > math.MaxUint32 {
		return ErrTooManyPoints
	}

	n := uint32(len(points))
	if cap(x.chain) >= len(points) {
		x.chain = x.chain[:n]
	} else {
		x.chain = make([]uint32, n)
	}
	for i := uint32(0); i < n; i++ {
		x.chain[i] = i + 1
	}
	// keep every link a valid index
	x.chain[n-1] = 0

	x.points = points

	root, err := x.build(geom.Bounds(points), 0, n-1, n, 0)
	if err != nil {
		x.Reset()
		return err
	}
	x.root = root
	x.stats.Nodes = x.nodes.Len()
	return nil
}

func (x *Index) build(cube geom.Cube, start, end, size uint32, depth int) (arena.Handle, error) {
	h, n, err := x.nodes.Alloc()
	if err != nil {
		return arena.Nil, err
	}
	n.Cube = cube
	n.Start = start
	n.End = end
	n.Size = size
	n.Depth = depth
	if depth > x.stats.MaxDepth {
		x.stats.MaxDepth = depth
	}

	if size <= x.cfg.LeafSize {
		n.Leaf = true
		x.stats.Leaves++
		return h, nil
	}
	if depth >= x.cfg.MaxDepth {
		x.forceLeaf(n)
		return h, nil
	}

	var (
		starts [geom.Octants]uint32
		ends   [geom.Octants]uint32
		sizes  [geom.Octants]uint32
	)

	idx := start
	for i := uint32(0); i < size; i++ {
		code := geom.Code(cube.Center, x.points[idx])
		if sizes[code] == 0 {
			starts[code] = idx
		} else {
			x.chain[ends[code]] = idx
		}
		sizes[code]++
		ends[code] = idx
		idx = x.chain[idx]
	}

	for code := range sizes {
		if sizes[code] == size && x.coincident(start, size) {
			x.forceLeaf(n)
			return h, nil
		}
	}

	var (
		children [geom.Octants]arena.Handle
		last     arena.Handle
	)
	for code := uint8(0); code < geom.Octants; code++ {
		if sizes[code] == 0 {
			continue
		}

		child, err := x.build(cube.Child(code), starts[code], ends[code], sizes[code], depth+1)
		if err != nil {
			return arena.Nil, err
		}
		c := x.nodes.Get(child)

		if last.IsNil() {
			start = c.Start
		} else {
			x.chain[x.nodes.Get(last).End] = c.Start
		}
		end = c.End
		last = child
		children[code] = child
	}

	// the arena may have grown during recursion
	n = x.nodes.Get(h)
	n.Start = start
	n.End = end
	n.Children = children
	return h, nil
}

func (x *Index) forceLeaf(n *Node) {
	n.Leaf = true
	n.Forced = true
	x.stats.Leaves++
	x.stats.ForcedLeaves++
}

// coincident reports whether every point in the run equals the first one.
func (x *Index) coincident(start, size uint32) bool {
	first := x.points[start]
	idx := x.chain[start]
	for i := uint32(1); i < size; i++ {
		if x.points[idx] != first {
			return false
		}
		idx = x.chain[idx]
	}
	return true
}
