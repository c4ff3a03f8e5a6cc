package octree

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/octree/internal/conv"
	"github.com/hupe1980/octree/internal/octant"
)

const (
	// DefaultLeafSize is the largest number of points stored in a leaf.
	DefaultLeafSize = octant.DefaultLeafSize
	// DefaultMaxDepth is the deepest level subdivision may reach.
	DefaultMaxDepth = octant.DefaultMaxDepth
)

// SelfMatch selects how points located exactly at the query position are
// reported.
//
// Search accepts whole subtrees that lie inside the query sphere without
// looking at individual points, and checks points one by one only in
// partially covered leaves. The reference behavior drops zero-distance
// points on the per-point path only, so whether a query at an indexed
// point's position reports that point depends on the tree layout.
type SelfMatch uint8

const (
	// SelfMatchReference reports zero-distance points when their subtree is
	// fully inside the sphere and drops them otherwise. This is the default.
	SelfMatchReference SelfMatch = iota
	// SelfMatchExclude never reports zero-distance points.
	SelfMatchExclude
	// SelfMatchInclude always reports zero-distance points.
	SelfMatchInclude
)

func (p SelfMatch) String() string {
	switch p {
	case SelfMatchReference:
		return "reference"
	case SelfMatchExclude:
		return "exclude"
	case SelfMatchInclude:
		return "include"
	default:
		return "unknown"
	}
}

func (p SelfMatch) policy() octant.SelfMatch {
	switch p {
	case SelfMatchExclude:
		return octant.SelfMatchExclude
	case SelfMatchInclude:
		return octant.SelfMatchInclude
	default:
		return octant.SelfMatchReference
	}
}

type options struct {
	config           octant.Config
	selfMatch        SelfMatch
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Tree.
type Option func(*options)

// WithLeafSize sets the largest number of points a leaf may hold before it
// is subdivided. Values below 1 keep the default of 16.
func WithLeafSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			return
		}
		size, err := conv.IntToUint32(n)
		if err != nil {
			return
		}
		o.config.LeafSize = size
	}
}

// WithMaxDepth bounds subdivision depth. A node at this depth becomes a
// leaf regardless of its size. Values below 1 keep the default of 32.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth < 1 {
			return
		}
		o.config.MaxDepth = depth
	}
}

// WithSelfMatch selects how zero-distance points are reported.
//
// Example for a steering consumer that indexes every agent and never wants
// the querying agent back:
//
//	tree := octree.New(octree.WithSelfMatch(octree.SelfMatchExclude))
func WithSelfMatch(p SelfMatch) Option {
	return func(o *options) {
		o.selfMatch = p
	}
}

// WithConcurrency bounds the number of goroutines BatchFindNeighbors uses.
// Values below 1 keep the default of runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			return
		}
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &octree.BasicMetricsCollector{}
//	tree := octree.New(octree.WithMetricsCollector(metrics))
//	// ... use tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := octree.NewJSONLogger(slog.LevelDebug)
//	tree := octree.New(octree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		config:           octant.DefaultConfig(),
		selfMatch:        SelfMatchReference,
		concurrency:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
