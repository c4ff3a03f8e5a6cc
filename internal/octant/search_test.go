package octant

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octree/testutil"
)

func TestSearch_GridScenario(t *testing.T) {
	points := testutil.Grid(3, 3, 1, 1)
	x := build(t, DefaultConfig(), points)
	require.True(t, x.Node(x.Root()).Leaf)

	origin := mgl64.Vec3{0, 0, 0}

	t.Run("ReferenceExcludesCenterOnLeafPath", func(t *testing.T) {
		got := x.Search(nil, origin, 1.5, SelfMatchReference)
		assert.Len(t, got, 8)
		assert.NotContains(t, got, 4)
	})

	t.Run("Exclude", func(t *testing.T) {
		got := x.Search(nil, origin, 1.5, SelfMatchExclude)
		assert.True(t, testutil.SameIndices([]int{0, 1, 2, 3, 5, 6, 7, 8}, got))
	})

	t.Run("Include", func(t *testing.T) {
		got := x.Search(nil, origin, 1.5, SelfMatchInclude)
		assert.True(t, testutil.SameIndices([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, got))
	})

	t.Run("SmallRadius", func(t *testing.T) {
		got := x.Search(nil, origin, 1.2, SelfMatchReference)
		assert.True(t, testutil.SameIndices([]int{1, 3, 5, 7}, got))
	})
}

func TestSearch_BulkAcceptKeepsSelf(t *testing.T) {
	origin := mgl64.Vec3{0, 0, 0}

	t.Run("SinglePoint", func(t *testing.T) {
		// the zero-extent root is fully inside the sphere
		x := build(t, DefaultConfig(), []mgl64.Vec3{origin})

		assert.Equal(t, []int{0}, x.Search(nil, origin, 1, SelfMatchReference))
		assert.Empty(t, x.Search(nil, origin, 1, SelfMatchExclude))
		assert.Equal(t, []int{0}, x.Search(nil, origin, 1, SelfMatchInclude))
	})

	t.Run("WholeTree", func(t *testing.T) {
		points := testutil.Grid(5, 5, 5, 1)
		x := build(t, DefaultConfig(), points)
		center := testutil.Coincident(points, origin)
		require.Len(t, center, 1)

		got := x.Search(nil, origin, 100, SelfMatchReference)
		assert.Len(t, got, len(points))
		assert.Contains(t, got, center[0])

		got = x.Search(nil, origin, 100, SelfMatchExclude)
		assert.Len(t, got, len(points)-1)
		assert.NotContains(t, got, center[0])
	})
}

func TestSearch_MatchesLinearScan(t *testing.T) {
	rng := testutil.NewRNG(1234)

	datasets := map[string][]mgl64.Vec3{
		"Uniform":   rng.UniformPoints(4000, -10, 10),
		"Clustered": rng.ClusteredPoints(4000, 10, 0.5, 10),
		"Grid":      testutil.Grid(12, 12, 12, 1),
	}

	for name, points := range datasets {
		t.Run(name, func(t *testing.T) {
			x := build(t, DefaultConfig(), points)

			for i := 0; i < 200; i++ {
				// queries off the point set never hit distance zero
				q := rng.Point(-12, 12)
				r := 0.1 + rng.Float64()*6
				want := testutil.ExactRadius(points, q, r)

				for _, policy := range []SelfMatch{SelfMatchReference, SelfMatchExclude, SelfMatchInclude} {
					got := x.Search(nil, q, r, policy)
					require.True(t, testutil.SameIndices(want, got),
						"q=%v r=%v policy=%d: got %d, want %d", q, r, policy, len(got), len(want))
				}
			}
		})
	}
}

func TestSearch_QueriesAtPoints(t *testing.T) {
	rng := testutil.NewRNG(99)
	points := rng.UniformPoints(3000, -5, 5)
	// duplicates make zero distances non-trivial
	points = append(points, points[:50]...)
	x := build(t, DefaultConfig(), points)

	for i := 0; i < 300; i++ {
		q := points[rng.Intn(len(points))]
		r := 0.2 + rng.Float64()*4

		all := testutil.ExactRadius(points, q, r)
		self := testutil.Coincident(points, q)
		others := testutil.Without(all, self)

		include := x.Search(nil, q, r, SelfMatchInclude)
		require.True(t, testutil.SameIndices(all, include))

		exclude := x.Search(nil, q, r, SelfMatchExclude)
		require.True(t, testutil.SameIndices(others, exclude))

		// reference results lie between the two
		reference := testutil.Sorted(x.Search(nil, q, r, SelfMatchReference))
		require.Subset(t, all, reference)
		require.Subset(t, reference, others)
	}
}

func TestSearch_ReadIdempotence(t *testing.T) {
	rng := testutil.NewRNG(17)
	points := rng.ClusteredPoints(2500, 6, 1, 8)
	x := build(t, DefaultConfig(), points)

	q := mgl64.Vec3{0.5, -0.25, 1}
	first := x.Search(nil, q, 4, SelfMatchReference)
	require.NotEmpty(t, first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, x.Search(nil, q, 4, SelfMatchReference))
	}
}

func TestSearch_AppendsToDst(t *testing.T) {
	x := build(t, DefaultConfig(), testutil.Grid(3, 3, 1, 1))

	dst := []int{-1}
	dst = x.Search(dst, mgl64.Vec3{1, 1, 0}, 1.1, SelfMatchReference)

	assert.Equal(t, -1, dst[0])
	assert.True(t, testutil.SameIndices([]int{5, 7}, dst[1:]))
}

func TestSearch_EdgeCases(t *testing.T) {
	t.Run("NotBuilt", func(t *testing.T) {
		x := New(DefaultConfig())
		assert.Empty(t, x.Search(nil, mgl64.Vec3{}, 10, SelfMatchReference))
	})

	x := build(t, DefaultConfig(), testutil.Grid(4, 4, 4, 1))

	for name, r := range map[string]float64{
		"Zero":     0,
		"Negative": -3,
		"NaN":      math.NaN(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, x.Search(nil, mgl64.Vec3{}, r, SelfMatchInclude))
		})
	}

	t.Run("Infinite", func(t *testing.T) {
		assert.Len(t, x.Search(nil, mgl64.Vec3{}, math.Inf(1), SelfMatchReference), 64)
	})

	t.Run("FarAway", func(t *testing.T) {
		assert.Empty(t, x.Search(nil, mgl64.Vec3{1000, 0, 0}, 5, SelfMatchReference))
	})

	t.Run("AfterReset", func(t *testing.T) {
		x.Reset()
		assert.Empty(t, x.Search(nil, mgl64.Vec3{}, 10, SelfMatchReference))
	})
}

func TestSearch_Duplicates(t *testing.T) {
	p := mgl64.Vec3{2, 2, 2}
	x := build(t, DefaultConfig(), testutil.Duplicates(50, p))

	assert.Len(t, x.Search(nil, p, 1, SelfMatchReference), 50)
	assert.Len(t, x.Search(nil, mgl64.Vec3{2.5, 2, 2}, 1, SelfMatchReference), 50)
	assert.Empty(t, x.Search(nil, mgl64.Vec3{4, 2, 2}, 1, SelfMatchReference))
}

func BenchmarkBuild(b *testing.B) {
	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(100000, -100, 100)
	x := New(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := x.Build(points); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(100000, -100, 100)
	x := New(DefaultConfig())
	if err := x.Build(points); err != nil {
		b.Fatal(err)
	}
	queries := rng.UniformPoints(1024, -100, 100)
	dst := make([]int, 0, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = x.Search(dst[:0], queries[i%len(queries)], 5, SelfMatchReference)
	}
}
