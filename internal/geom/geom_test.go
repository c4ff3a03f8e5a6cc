package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	center := mgl64.Vec3{0, 0, 0}

	tests := []struct {
		name string
		p    mgl64.Vec3
		want uint8
	}{
		{"AllLow", mgl64.Vec3{-1, -1, -1}, 0},
		{"X", mgl64.Vec3{1, -1, -1}, BitX},
		{"Y", mgl64.Vec3{-1, 1, -1}, BitY},
		{"Z", mgl64.Vec3{-1, -1, 1}, BitZ},
		{"AllHigh", mgl64.Vec3{1, 1, 1}, BitX | BitY | BitZ},
		{"OnPlanesGoLow", mgl64.Vec3{0, 0, 0}, 0},
		{"MixedPlane", mgl64.Vec3{0, 2, 0}, BitY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(center, tt.p))
		})
	}
}

func TestChildCenter(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}

	assert.Equal(t, mgl64.Vec3{0, 1, 2}, ChildCenter(center, 2, 0))
	assert.Equal(t, mgl64.Vec3{2, 3, 4}, ChildCenter(center, 2, BitX|BitY|BitZ))
	assert.Equal(t, mgl64.Vec3{2, 1, 4}, ChildCenter(center, 2, BitX|BitZ))

	child := Cube{Center: center, Radius: 2}.Child(BitY)
	assert.Equal(t, mgl64.Vec3{0, 3, 2}, child.Center)
	assert.Equal(t, 1.0, child.Radius)
}

func TestChildCoversCode(t *testing.T) {
	parent := Cube{Center: mgl64.Vec3{0, 0, 0}, Radius: 4}
	points := []mgl64.Vec3{
		{-4, -4, -4}, {4, 4, 4}, {0, 0, 0}, {0.5, -0.5, 3.9}, {-3, 2, 0},
	}
	for _, p := range points {
		child := parent.Child(Code(parent.Center, p))
		assert.True(t, child.ContainsPoint(p), "point %v not inside child %v", p, child)
	}
}

func TestBounds(t *testing.T) {
	t.Run("SinglePoint", func(t *testing.T) {
		c := Bounds([]mgl64.Vec3{{1, 2, 3}})
		assert.Equal(t, mgl64.Vec3{1, 2, 3}, c.Center)
		assert.Equal(t, 0.0, c.Radius)
	})

	t.Run("LargestHalfExtent", func(t *testing.T) {
		c := Bounds([]mgl64.Vec3{{0, 0, 0}, {2, 8, 4}})
		assert.Equal(t, mgl64.Vec3{1, 4, 2}, c.Center)
		assert.Equal(t, 4.0, c.Radius)
	})

	t.Run("ContainsAllPoints", func(t *testing.T) {
		points := []mgl64.Vec3{{-3, 1, 7}, {5, -2, 0}, {0, 0, 0}, {1, 9, -4}}
		c := Bounds(points)
		for _, p := range points {
			assert.True(t, c.ContainsPoint(p))
		}
	})
}

func TestContains(t *testing.T) {
	cube := Cube{Center: mgl64.Vec3{0, 0, 0}, Radius: 1}
	// farthest corner is at squared distance 3
	assert.False(t, Contains(mgl64.Vec3{0, 0, 0}, 3, cube), "boundary is exclusive")
	assert.True(t, Contains(mgl64.Vec3{0, 0, 0}, 1.8*1.8, cube))
	assert.False(t, Contains(mgl64.Vec3{0, 0, 0}, 1.5*1.5, cube))

	// shifting the query moves the farthest corner away
	assert.False(t, Contains(mgl64.Vec3{0.5, 0, 0}, 1.8*1.8, cube))

	t.Run("ZeroExtent", func(t *testing.T) {
		point := Cube{Center: mgl64.Vec3{0, 0, 0}}
		assert.True(t, Contains(mgl64.Vec3{0, 0, 0}, 1, point))
		assert.False(t, Contains(mgl64.Vec3{0, 0, 0}, 0, point))
	})
}

func TestOverlaps(t *testing.T) {
	cube := Cube{Center: mgl64.Vec3{0, 0, 0}, Radius: 1}

	tests := []struct {
		name   string
		q      mgl64.Vec3
		radius float64
		want   bool
	}{
		{"Inside", mgl64.Vec3{0.2, 0.1, 0}, 0.1, true},
		{"SeparatedOnX", mgl64.Vec3{3, 0, 0}, 1.5, false},
		{"FaceTouching", mgl64.Vec3{1.5, 0, 0}, 0.6, true},
		{"FaceShort", mgl64.Vec3{1.5, 0, 0}, 0.4, false},
		{"NearCornerMiss", mgl64.Vec3{1.5, 1.5, 1.5}, 0.8, false},
		{"NearCornerHit", mgl64.Vec3{1.5, 1.5, 1.5}, 0.9, true},
		{"EdgeMiss", mgl64.Vec3{1.5, 1.5, 0}, 0.7, false},
		{"EdgeHit", mgl64.Vec3{1.5, 1.5, 0}, 0.75, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.q, tt.radius, tt.radius*tt.radius, cube))
		})
	}
}

func TestOverlapsAgreesWithClosestPoint(t *testing.T) {
	cube := Cube{Center: mgl64.Vec3{1, -2, 0.5}, Radius: 0.75}
	closest := func(q mgl64.Vec3) float64 {
		var d mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			lo := cube.Center[axis] - cube.Radius
			hi := cube.Center[axis] + cube.Radius
			d[axis] = q[axis] - math.Max(lo, math.Min(q[axis], hi))
		}
		return d.Dot(d)
	}

	for x := -2.0; x <= 4; x += 0.5 {
		for y := -5.0; y <= 1; y += 0.5 {
			for z := -2.5; z <= 3.5; z += 0.5 {
				q := mgl64.Vec3{x, y, z}
				for _, r := range []float64{0.3, 1, 2.2} {
					want := closest(q) < r*r
					got := Overlaps(q, r, r*r, cube)
					if want {
						require.True(t, got, "q=%v r=%v", q, r)
					}
				}
			}
		}
	}
}

func TestDistanceSq(t *testing.T) {
	assert.Equal(t, 27.0, DistanceSq(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}))
	assert.Equal(t, 0.0, DistanceSq(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(mgl64.Vec3{1, -2, 3}))
	assert.False(t, Finite(mgl64.Vec3{math.NaN(), 0, 0}))
	assert.False(t, Finite(mgl64.Vec3{0, math.Inf(1), 0}))
	assert.False(t, Finite(mgl64.Vec3{0, 0, math.Inf(-1)}))
}
