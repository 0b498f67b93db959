package track

import (
	"errors"
	"math"
	"testing"
)

func line(n int, step float64) Polyline {
	pts := make(Polyline, n)
	for i := range pts {
		pts[i] = P3(float64(i)*step, 0, 0)
	}
	return pts
}

func mustCurve(t *testing.T, pts Polyline, opts ...BuildOption) Curve {
	t.Helper()
	c, err := NewCurve(pts, opts...)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return c
}

// -------------------------------------------------------------------
// NewCurve Tests
// -------------------------------------------------------------------

func TestNewCurve_Empty(t *testing.T) {
	_, err := NewCurve(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("NewCurve(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestNewCurve_AnchorsRoundTrip(t *testing.T) {
	pts := Polyline{
		P3(0, 0, 0), P3(1.25, 0.5, 0.1), P3(2.5, 1.75, 0.2),
		P3(3, 3, 0.2), P3(3.1, 4.9, 0.25),
	}
	c := mustCurve(t, pts)

	if c.Len() != len(pts) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(pts))
	}
	got := c.Anchors()
	for i := range pts {
		if got[i] != pts[i] {
			t.Errorf("anchor %d = %v, want exactly %v", i, got[i], pts[i])
		}
	}
}

func TestNewCurve_DoesNotAliasInput(t *testing.T) {
	pts := line(3, 1)
	c := mustCurve(t, pts)
	pts[1] = P3(100, 100, 100)
	if c.Point(1).Anchor != P3(1, 0, 0) {
		t.Errorf("curve changed with its input: %v", c.Point(1).Anchor)
	}
}

func TestNewCurve_SinglePoint(t *testing.T) {
	c := mustCurve(t, Polyline{P3(1, 2, 3)})
	cp := c.Point(0)
	if cp.LeftHandle != cp.Anchor || cp.RightHandle != cp.Anchor {
		t.Errorf("single point handles = %v / %v, want anchor", cp.LeftHandle, cp.RightHandle)
	}
	if c.SegmentCount() != 0 {
		t.Errorf("SegmentCount() = %d, want 0", c.SegmentCount())
	}
	if !errors.Is(c.Validate(), ErrTooFewPoints) {
		t.Errorf("Validate() = %v, want ErrTooFewPoints", c.Validate())
	}
}

func TestNewCurve_AutoHandlesStraight(t *testing.T) {
	// Uneven spacing along x: every handle stays on the line at a third of
	// its adjacent segment.
	pts := Polyline{P3(0, 0, 0), P3(3, 0, 0), P3(9, 0, 0)}
	c := mustCurve(t, pts)

	tests := []struct {
		i           int
		left, right Point3
	}{
		{0, P3(-1, 0, 0), P3(1, 0, 0)},
		{1, P3(2, 0, 0), P3(5, 0, 0)},
		{2, P3(7, 0, 0), P3(11, 0, 0)},
	}
	for _, tt := range tests {
		cp := c.Point(tt.i)
		if !ApproxEqual(cp.LeftHandle, tt.left, epsilon) {
			t.Errorf("point %d left = %v, want %v", tt.i, cp.LeftHandle, tt.left)
		}
		if !ApproxEqual(cp.RightHandle, tt.right, epsilon) {
			t.Errorf("point %d right = %v, want %v", tt.i, cp.RightHandle, tt.right)
		}
	}
}

func TestNewCurve_AutoHandlesCorner(t *testing.T) {
	// At a right-angle corner the tangent bisects the two directions.
	c := mustCurve(t, Polyline{P3(0, 0, 0), P3(3, 0, 0), P3(3, 3, 0)})
	cp := c.Point(1)
	want := 1 / math.Sqrt2
	dir := sub(cp.RightHandle, cp.Anchor)
	if !ApproxEqual(dir, P3(want, want, 0), epsilon) {
		t.Errorf("corner right handle offset = %v, want (%v, %v, 0)", dir, want, want)
	}
	dir = sub(cp.Anchor, cp.LeftHandle)
	if !ApproxEqual(dir, P3(want, want, 0), epsilon) {
		t.Errorf("corner left handle offset = %v, want (%v, %v, 0)", dir, want, want)
	}
}

func TestNewCurve_HandleLengthOption(t *testing.T) {
	c := mustCurve(t, line(2, 10), WithHandleLength(0.25))
	if got := c.Point(0).RightHandle; !ApproxEqual(got, P3(2.5, 0, 0), epsilon) {
		t.Errorf("right handle = %v, want (2.5, 0, 0)", got)
	}
	// Non-positive keeps the default.
	c = mustCurve(t, line(2, 9), WithHandleLength(-1))
	if got := c.Point(0).RightHandle; !ApproxEqual(got, P3(3, 0, 0), epsilon) {
		t.Errorf("right handle = %v, want (3, 0, 0)", got)
	}
}

func TestNewCurve_FoldBack(t *testing.T) {
	// The path reverses at the middle anchor; handles must stay finite.
	c := mustCurve(t, Polyline{P3(0, 0, 0), P3(1, 0, 0), P3(0, 0, 0)})
	for i := range c.Len() {
		cp := c.Point(i)
		for k := range 3 {
			if math.IsNaN(cp.LeftHandle[k]) || math.IsNaN(cp.RightHandle[k]) {
				t.Fatalf("point %d has NaN handle: %+v", i, cp)
			}
		}
	}
}

func TestCurve_Validate(t *testing.T) {
	if err := mustCurve(t, line(3, 1)).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	dup := Polyline{P3(0, 0, 0), P3(1, 0, 0), P3(1, 0, 0), P3(2, 0, 0)}
	if err := mustCurve(t, dup).Validate(); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("Validate() = %v, want ErrDegenerateSegment", err)
	}
}

func TestCurve_PointsIsCopy(t *testing.T) {
	c := mustCurve(t, line(3, 1))
	ps := c.Points()
	ps[0].Anchor = P3(5, 5, 5)
	if c.Point(0).Anchor != P3(0, 0, 0) {
		t.Error("Points() exposes internal storage")
	}
}

// -------------------------------------------------------------------
// CubicSeg Tests
// -------------------------------------------------------------------

func TestCubicSeg_Eval(t *testing.T) {
	s := CubicSeg{P0: P3(0, 0, 0), P1: P3(0, 1, 0), P2: P3(1, 1, 0), P3: P3(1, 0, 1)}

	tests := []struct {
		name   string
		t      float64
		expect Point3
	}{
		{"t=0", 0, P3(0, 0, 0)},
		{"t=1", 1, P3(1, 0, 1)},
		{"t=0.5", 0.5, P3(0.5, 0.75, 0.125)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Eval(tt.t); !ApproxEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestCubicSeg_Deriv(t *testing.T) {
	s := CubicSeg{P0: P3(0, 0, 0), P1: P3(0, 1, 0), P2: P3(1, 1, 0), P3: P3(1, 0, 0)}
	if got := s.Deriv(0); !ApproxEqual(got, P3(0, 3, 0), epsilon) {
		t.Errorf("Deriv(0) = %v, want (0, 3, 0)", got)
	}
	if got := s.Deriv(1); !ApproxEqual(got, P3(0, -3, 0), epsilon) {
		t.Errorf("Deriv(1) = %v, want (0, -3, 0)", got)
	}

	// Central difference agrees with the analytic derivative.
	const h = 1e-6
	for _, u := range []float64{0.1, 0.37, 0.8} {
		fd := scale(sub(s.Eval(u+h), s.Eval(u-h)), 1/(2*h))
		if !ApproxEqual(fd, s.Deriv(u), 1e-5) {
			t.Errorf("Deriv(%v) = %v, finite difference %v", u, s.Deriv(u), fd)
		}
	}
}

func TestCubicSeg_TangentFallback(t *testing.T) {
	// Handles on the anchors: B'(0) = 0, the chord is used.
	s := CubicSeg{P0: P3(0, 0, 0), P1: P3(0, 0, 0), P2: P3(2, 0, 0), P3: P3(2, 0, 0)}
	tan, ok := s.Tangent(0)
	if !ok || !ApproxEqual(tan, P3(1, 0, 0), epsilon) {
		t.Errorf("Tangent(0) = %v, %v; want (1, 0, 0), true", tan, ok)
	}

	var zero CubicSeg
	if _, ok := zero.Tangent(0.5); ok {
		t.Error("Tangent of a point segment should fail")
	}
}

func TestCubicSeg_ArcLength(t *testing.T) {
	c := mustCurve(t, Polyline{P3(1, 1, 1), P3(4, 5, 1)})
	if got := c.Segment(0).ArcLength(); math.Abs(got-5) > 1e-9 {
		t.Errorf("straight ArcLength() = %v, want 5", got)
	}

	// Quarter circle approximation, radius 1: length close to pi/2.
	k := 0.5522847498
	s := CubicSeg{P0: P3(1, 0, 0), P1: P3(1, k, 0), P2: P3(k, 1, 0), P3: P3(0, 1, 0)}
	if got := s.ArcLength(); math.Abs(got-math.Pi/2) > 1e-3 {
		t.Errorf("quarter circle ArcLength() = %v, want ~%v", got, math.Pi/2)
	}
}
