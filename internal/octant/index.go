package octant

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/octree/internal/arena"
	"github.com/hupe1980/octree/internal/geom"
)

const (
	// DefaultLeafSize is the largest point count stored in a leaf.
	DefaultLeafSize = 16
	// DefaultMaxDepth bounds subdivision. The root has depth 0.
	DefaultMaxDepth = 32
)

// Config controls tree shape.
type Config struct {
	LeafSize uint32
	MaxDepth int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LeafSize: DefaultLeafSize,
		MaxDepth: DefaultMaxDepth,
	}
}

func (c Config) normalized() Config {
	if c.LeafSize == 0 {
		c.LeafSize = DefaultLeafSize
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

// SelfMatch selects how points at distance zero from the query are treated.
type SelfMatch uint8

const (
	// SelfMatchReference keeps zero-distance points on the bulk-accept path
	// and drops them on the per-point leaf path.
	SelfMatchReference SelfMatch = iota
	// SelfMatchExclude drops zero-distance points on both paths.
	SelfMatchExclude
	// SelfMatchInclude keeps zero-distance points on both paths.
	SelfMatchInclude
)

// Node is one cube of the tree.
type Node struct {
	Cube geom.Cube

	// Window into the index chain.
	Start uint32
	End   uint32
	Size  uint32

	Depth int
	Leaf  bool
	// Forced marks a leaf above the leaf size that could not be split further.
	Forced bool

	Children [geom.Octants]arena.Handle
}

// BuildStats describes the most recent build.
type BuildStats struct {
	Nodes        int
	Leaves       int
	MaxDepth     int
	ForcedLeaves int
}

// Index is a point octree over a caller-owned point slice.
//
// Build and Reset must not run concurrently with anything else. Search,
// Walk and Members are read-only.
type Index struct {
	cfg    Config
	points []mgl64.Vec3
	chain  []uint32
	nodes  *arena.Arena[Node]
	root   arena.Handle
	stats  BuildStats
}

// New creates an empty index.
func New(cfg Config) *Index {
	return &Index{
		cfg:   cfg.normalized(),
		nodes: arena.New[Node](0),
	}
}

// Config returns the effective configuration.
func (x *Index) Config() Config { return x.cfg }

// Root returns the root handle, or arena.Nil before the first build.
func (x *Index) Root() arena.Handle { return x.root }

// Node returns the node addressed by h, or nil.
func (x *Index) Node(h arena.Handle) *Node { return x.nodes.Get(h) }

// Points returns the point slice of the most recent build.
func (x *Index) Points() []mgl64.Vec3 { return x.points }

// Len returns the number of indexed points.
func (x *Index) Len() int { return len(x.points) }

// Stats returns statistics of the most recent build.
func (x *Index) Stats() BuildStats { return x.stats }

// Reset drops the tree and the point reference but keeps node and chain
// storage for the next build.
func (x *Index) Reset() {
	x.nodes.Reset()
	x.root = arena.Nil
	x.points = nil
	x.chain = x.chain[:0]
	x.stats = BuildStats{}
}

// Free drops the tree and releases all storage.
func (x *Index) Free() {
	x.Reset()
	x.nodes.Free()
	x.chain = nil
}
