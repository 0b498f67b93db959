package track

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Axis names a local object axis.
type Axis int

const (
	// AxisX is the local +X axis.
	AxisX Axis = iota
	// AxisY is the local +Y axis.
	AxisY
)

// String returns the configuration name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "x" or "y" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X", "":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("track: unknown up axis %q", s)
}

// TrackQuat returns the rotation that points the local -Z axis along dir
// and turns the local up axis as close to WorldUp as possible.
//
// When dir is vertical, the up axis tracks world +Y instead. Returns
// ErrDegenerateSegment for a zero direction.
func TrackQuat(dir Point3, up Axis) (quaternion.T, error) {
	fwd, ok := normalize(dir)
	if !ok {
		return quaternion.Ident, ErrDegenerateSegment
	}

	// World up projected onto the plane perpendicular to fwd.
	ref := WorldUp()
	if math.Abs(dot(fwd, ref)) > 1-1e-9 {
		ref = vec3.UnitY
	}
	u, ok := normalize(sub(ref, scale(fwd, dot(ref, fwd))))
	if !ok {
		return quaternion.Ident, ErrDegenerateSegment
	}

	// Images of the local axes; local Z points backwards along the track.
	z := scale(fwd, -1)
	var x, y Point3
	switch up {
	case AxisY:
		y = u
		x = cross(y, z)
	default:
		x = u
		y = cross(z, x)
	}
	return quatFromBasis(x, y, z), nil
}

// quatFromBasis converts an orthonormal right-handed basis (the columns of a
// rotation matrix) to a unit quaternion.
func quatFromBasis(x, y, z Point3) quaternion.T {
	// m[row][col]
	m00, m01, m02 := x[0], y[0], z[0]
	m10, m11, m12 := x[1], y[1], z[1]
	m20, m21, m22 := x[2], y[2], z[2]

	var q quaternion.T
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quaternion.T{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quaternion.T{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quaternion.T{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quaternion.T{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	// Keep w non-negative so equal rotations compare equal.
	if q[3] < 0 {
		q = quaternion.T{-q[0], -q[1], -q[2], -q[3]}
	}
	return q.Normalized()
}
