// Package geom implements the cube and sphere predicates that drive octree
// construction and pruning.
//
// A Cube is described by its center and its radius, which is half the side
// length of the cube (not the radius of a sphere). Points lying exactly on a
// splitting plane belong to the lower child: Code sets an axis bit only when
// the coordinate is strictly greater than the center.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Morton code bits, one per axis.
const (
	BitX uint8 = 1 << iota
	BitY
	BitZ
)

// Octants is the number of children of a cube.
const Octants = 8

// Cube is an axis-aligned cube.
type Cube struct {
	Center mgl64.Vec3
	Radius float64
}

// Code returns the 3-bit Morton code of p relative to center.
func Code(center, p mgl64.Vec3) uint8 {
	var code uint8
	if p[0] > center[0] {
		code |= BitX
	}
	if p[1] > center[1] {
		code |= BitY
	}
	if p[2] > center[2] {
		code |= BitZ
	}
	return code
}

// ChildCenter returns the center of the child selected by code, offset from
// center by half of extent on every axis.
func ChildCenter(center mgl64.Vec3, extent float64, code uint8) mgl64.Vec3 {
	half := 0.5 * extent
	c := center
	for axis := 0; axis < 3; axis++ {
		if code&(1<<axis) != 0 {
			c[axis] += half
		} else {
			c[axis] -= half
		}
	}
	return c
}

// Child returns the sub-cube selected by code.
func (c Cube) Child(code uint8) Cube {
	return Cube{
		Center: ChildCenter(c.Center, c.Radius, code),
		Radius: 0.5 * c.Radius,
	}
}

// ContainsPoint reports whether p lies inside the closed cube. A relative
// tolerance absorbs rounding in child centers computed by repeated halving.
func (c Cube) ContainsPoint(p mgl64.Vec3) bool {
	limit := c.Radius + tolerance(c)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(p[axis]-c.Center[axis]) > limit {
			return false
		}
	}
	return true
}

func tolerance(c Cube) float64 {
	scale := c.Radius
	for axis := 0; axis < 3; axis++ {
		scale = math.Max(scale, math.Abs(c.Center[axis]))
	}
	return scale * 1e-12
}

// Bounds returns the smallest cube centered on the axis-aligned bounding box
// of points. The radius is the largest half extent over the three axes.
// points must not be empty.
func Bounds(points []mgl64.Vec3) Cube {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			lo[axis] = math.Min(lo[axis], p[axis])
			hi[axis] = math.Max(hi[axis], p[axis])
		}
	}

	var cube Cube
	for axis := 0; axis < 3; axis++ {
		extent := 0.5 * (hi[axis] - lo[axis])
		cube.Center[axis] = lo[axis] + extent
		cube.Radius = math.Max(cube.Radius, extent)
	}
	return cube
}

// Contains reports whether the sphere around q with squared radius radiusSq
// fully contains the cube. It tests the cube corner farthest from q.
func Contains(q mgl64.Vec3, radiusSq float64, c Cube) bool {
	var d mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		d[axis] = math.Abs(c.Center[axis]-q[axis]) + c.Radius
	}
	return d.Dot(d) < radiusSq
}

// Overlaps reports whether the sphere around q touches the cube.
func Overlaps(q mgl64.Vec3, radius, radiusSq float64, c Cube) bool {
	var d mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		d[axis] = math.Abs(q[axis] - c.Center[axis])
	}

	// separating axis
	maxDist := radius + c.Radius
	if d[0] > maxDist || d[1] > maxDist || d[2] > maxDist {
		return false
	}

	inside := 0
	for axis := 0; axis < 3; axis++ {
		if d[axis] < c.Radius {
			inside++
		}
	}
	if inside > 1 {
		return true
	}

	for axis := 0; axis < 3; axis++ {
		d[axis] = math.Max(d[axis]-c.Radius, 0)
	}
	return d.Dot(d) < radiusSq
}

// DistanceSq returns the squared euclidean distance between a and b.
func DistanceSq(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Finite reports whether every coordinate of p is a finite number.
func Finite(p mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if math.IsNaN(p[axis]) || math.IsInf(p[axis], 0) {
			return false
		}
	}
	return true
}
