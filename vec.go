package track

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Point3 is a position or displacement in track space (meters).
// X and Y span the ground plane, Z points up.
type Point3 = vec3.T

// Polyline is an ordered sequence of points.
type Polyline []Point3

// WorldUp returns the global up direction, +Z. Track geometry is assumed to
// lie in a locally near-horizontal plane with respect to it.
func WorldUp() Point3 {
	return Point3{0, 0, 1}
}

// P3 is a convenience function to create a Point3.
func P3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// Clone returns a copy of the polyline that does not share storage with pl.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Length returns the sum of the straight segment lengths.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += dist(pl[i-1], pl[i])
	}
	return total
}

func add(a, b Point3) Point3 {
	return a.Added(&b)
}

func sub(a, b Point3) Point3 {
	return a.Subed(&b)
}

func scale(a Point3, s float64) Point3 {
	return a.Scaled(s)
}

func dot(a, b Point3) float64 {
	return vec3.Dot(&a, &b)
}

func cross(a, b Point3) Point3 {
	return vec3.Cross(&a, &b)
}

func length(a Point3) float64 {
	return a.Length()
}

func dist(a, b Point3) float64 {
	return vec3.Distance(&a, &b)
}

func lerp(a, b Point3, t float64) Point3 {
	return vec3.Interpolate(&a, &b, t)
}

func midpoint(a, b Point3) Point3 {
	return lerp(a, b, 0.5)
}

// degenerateEps is the squared length below which a direction is treated
// as zero.
const degenerateEps = 1e-24

// normalize returns a unit vector in the direction of a and false when a has
// no usable direction.
func normalize(a Point3) (Point3, bool) {
	l2 := a.LengthSqr()
	if l2 < degenerateEps || math.IsNaN(l2) || math.IsInf(l2, 0) {
		return Point3{}, false
	}
	return a.Scaled(1 / math.Sqrt(l2)), true
}

// ApproxEqual reports whether a and b differ by less than eps in every
// component.
func ApproxEqual(a, b Point3, eps float64) bool {
	return math.Abs(a[0]-b[0]) < eps &&
		math.Abs(a[1]-b[1]) < eps &&
		math.Abs(a[2]-b[2]) < eps
}
