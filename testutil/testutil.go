package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a point with every coordinate uniform in [minVal, maxVal).
func (r *RNG) Point(minVal, maxVal float64) mgl64.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pointLocked(minVal, maxVal)
}

func (r *RNG) pointLocked(minVal, maxVal float64) mgl64.Vec3 {
	span := maxVal - minVal
	return mgl64.Vec3{
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
	}
}

// UniformPoints generates num points uniformly distributed in the cube
// [minVal, maxVal)^3.
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []mgl64.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]mgl64.Vec3, num)
	for i := range points {
		points[i] = r.pointLocked(minVal, maxVal)
	}
	return points
}

// ClusteredPoints generates num points around clusters centroids drawn
// uniformly from [-extent, extent)^3. Each point adds gaussian noise with
// standard deviation spread to its centroid.
// Useful for exercising deep, unbalanced subdivisions.
func (r *RNG) ClusteredPoints(num, clusters int, spread, extent float64) []mgl64.Vec3 {
	if clusters <= 0 {
		clusters = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([]mgl64.Vec3, clusters)
	for i := range centroids {
		centroids[i] = r.pointLocked(-extent, extent)
	}

	points := make([]mgl64.Vec3, num)
	for i := range points {
		c := centroids[i%clusters]
		points[i] = mgl64.Vec3{
			c[0] + r.rand.NormFloat64()*spread,
			c[1] + r.rand.NormFloat64()*spread,
			c[2] + r.rand.NormFloat64()*spread,
		}
	}
	return points
}

// Grid returns nx*ny*nz points with the given spacing, centered on the
// origin. Points are ordered x fastest, then y, then z.
func Grid(nx, ny, nz int, spacing float64) []mgl64.Vec3 {
	offset := func(n int) float64 {
		return 0.5 * float64(n-1) * spacing
	}
	ox, oy, oz := offset(nx), offset(ny), offset(nz)

	points := make([]mgl64.Vec3, 0, nx*ny*nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				points = append(points, mgl64.Vec3{
					float64(x)*spacing - ox,
					float64(y)*spacing - oy,
					float64(z)*spacing - oz,
				})
			}
		}
	}
	return points
}

// Duplicates returns num copies of p.
func Duplicates(num int, p mgl64.Vec3) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, num)
	for i := range points {
		points[i] = p
	}
	return points
}

// ExactRadius returns, in ascending order, the indices of all points whose
// distance to query is strictly less than radius.
func ExactRadius(points []mgl64.Vec3, query mgl64.Vec3, radius float64) []int {
	radiusSq := radius * radius
	var out []int
	for i, p := range points {
		d := p.Sub(query)
		if d.Dot(d) < radiusSq {
			out = append(out, i)
		}
	}
	return out
}

// Coincident returns, in ascending order, the indices of all points located
// exactly at query.
func Coincident(points []mgl64.Vec3, query mgl64.Vec3) []int {
	var out []int
	for i, p := range points {
		if p == query {
			out = append(out, i)
		}
	}
	return out
}

// Without returns the sorted elements of a that are not in b.
func Without(a, b []int) []int {
	out := make([]int, 0, len(a))
	for _, v := range a {
		if !slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// Sorted returns a sorted copy of ids.
func Sorted(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}

// SameIndices reports whether a and b contain the same indices with the
// same multiplicity, ignoring order.
func SameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(Sorted(a), Sorted(b))
}
