// Package track generates railway track geometry along a pair of rail-edge
// paths.
//
// # Overview
//
// The package turns ordered 3D point lists into cubic Bezier curves, derives
// the centerline between two rail edges, offsets it sideways by half the
// gauge to get the two rails, and walks the centerline at a fixed spacing to
// produce oriented placement frames for sleepers.
//
// Everything here is a pure computation over immutable values. Importing
// meshes, sweeping rail profiles and instancing sleepers belong to the host
// that consumes the result.
//
// # Quick Start
//
//	import (
//	    track "github.com/lytkinsa96/101-Digital-Modeling"
//	    "github.com/lytkinsa96/101-Digital-Modeling/obj"
//	)
//
//	left, _ := obj.ReadFile("left.obj")
//	right, _ := obj.ReadFile("right.obj")
//	t, err := track.Build(ctx, left, right, track.WithSpacing(0.6))
//
// # Pipeline
//
//	NewCurve -> Smooth (optional) -> Centerline -> Offset (x2)
//	                                    \-> Sampler -> Place
//
// # Conventions
//
//   - Units are meters; Z is up and the track is assumed near-horizontal.
//   - Offset moves positive distances to the right of the direction of
//     travel; the left rail sits at -Gauge/2, the right rail at +Gauge/2.
//   - Placement frames point the local -Z axis along the path and turn the
//     configured up axis (X by default) toward world +Z.
//   - Quaternions are stored as [x, y, z, w].
package track
