package track

// DefaultHandleFraction is the share of the adjacent segment length used as
// handle length by the automatic handle rule. With 1/3 a run of collinear
// anchors produces segments with uniform parametric speed.
const DefaultHandleFraction = 1.0 / 3.0

// ControlPoint is one anchor of a cubic Bezier spline with its two handles.
// Handles are always derived from the anchor sequence.
type ControlPoint struct {
	Anchor      Point3
	LeftHandle  Point3
	RightHandle Point3
}

// Curve is an open piecewise-cubic Bezier spline.
// A Curve is immutable: every operation returns a new Curve.
type Curve struct {
	points []ControlPoint
}

// buildOptions holds options for curve construction.
type buildOptions struct {
	handleFraction float64
}

// BuildOption configures handle derivation.
type BuildOption func(*buildOptions)

// WithHandleLength sets the fraction of the adjacent segment length used
// for handle placement. Non-positive values keep the default.
func WithHandleLength(fraction float64) BuildOption {
	return func(o *buildOptions) {
		if fraction > 0 {
			o.handleFraction = fraction
		}
	}
}

func newBuildOptions(opts []BuildOption) buildOptions {
	o := buildOptions{handleFraction: DefaultHandleFraction}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewCurve builds a curve with one control point per input point.
// Handles follow the automatic rule: the local tangent is the average of
// the directions to the previous and next anchors (the single adjacent
// direction at the ends), and each handle sits along that tangent at a
// fraction of the adjacent segment's length.
//
// Returns ErrEmptyInput when pts is empty.
func NewCurve(pts Polyline, opts ...BuildOption) (Curve, error) {
	if len(pts) == 0 {
		return Curve{}, ErrEmptyInput
	}
	o := newBuildOptions(opts)
	return Curve{points: autoHandles(pts, o.handleFraction)}, nil
}

func autoHandles(pts Polyline, fraction float64) []ControlPoint {
	n := len(pts)
	out := make([]ControlPoint, n)
	for i, p := range pts {
		out[i] = ControlPoint{Anchor: p, LeftHandle: p, RightHandle: p}
	}
	if n < 2 {
		return out
	}

	for i := range out {
		p := pts[i]
		var prevLen, nextLen float64
		var dirPrev, dirNext Point3
		var okPrev, okNext bool
		if i > 0 {
			d := sub(p, pts[i-1])
			prevLen = length(d)
			dirPrev, okPrev = normalize(d)
		}
		if i < n-1 {
			d := sub(pts[i+1], p)
			nextLen = length(d)
			dirNext, okNext = normalize(d)
		}

		var tangent Point3
		var ok bool
		switch {
		case okPrev && okNext:
			tangent, ok = normalize(add(dirPrev, dirNext))
			if !ok {
				// The path folds back on itself here.
				tangent, ok = dirNext, true
			}
		case okNext:
			tangent, ok = dirNext, true
		case okPrev:
			tangent, ok = dirPrev, true
		}
		if !ok {
			continue
		}

		// End anchors mirror the only adjacent segment.
		if i == 0 {
			prevLen = nextLen
		}
		if i == n-1 {
			nextLen = prevLen
		}
		out[i].LeftHandle = sub(p, scale(tangent, prevLen*fraction))
		out[i].RightHandle = add(p, scale(tangent, nextLen*fraction))
	}
	return out
}

// Len returns the number of control points.
func (c Curve) Len() int {
	return len(c.points)
}

// SegmentCount returns the number of cubic segments (Len - 1, or 0).
func (c Curve) SegmentCount() int {
	if len(c.points) < 2 {
		return 0
	}
	return len(c.points) - 1
}

// Point returns the i-th control point.
func (c Curve) Point(i int) ControlPoint {
	return c.points[i]
}

// Points returns a copy of the control points.
func (c Curve) Points() []ControlPoint {
	out := make([]ControlPoint, len(c.points))
	copy(out, c.points)
	return out
}

// Anchors returns the anchor sequence as a new polyline.
func (c Curve) Anchors() Polyline {
	out := make(Polyline, len(c.points))
	for i, cp := range c.points {
		out[i] = cp.Anchor
	}
	return out
}

// Segment returns the cubic Bezier between anchors i and i+1.
func (c Curve) Segment(i int) CubicSeg {
	a, b := c.points[i], c.points[i+1]
	return CubicSeg{P0: a.Anchor, P1: a.RightHandle, P2: b.LeftHandle, P3: b.Anchor}
}

// Validate checks that the curve can be used downstream: at least two
// anchors and no zero-length step between consecutive anchors.
func (c Curve) Validate() error {
	if len(c.points) < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < len(c.points); i++ {
		if _, ok := normalize(sub(c.points[i].Anchor, c.points[i-1].Anchor)); !ok {
			return ErrDegenerateSegment
		}
	}
	return nil
}

// -------------------------------------------------------------------
// CubicSeg - Cubic Bezier segment in 3D
// -------------------------------------------------------------------

// CubicSeg is a cubic Bezier segment with control points P0..P3.
// P0 and P3 are anchors, P1 and P2 are the inner handles.
type CubicSeg struct {
	P0, P1, P2, P3 Point3
}

// Eval evaluates the segment at parameter t (0 to 1).
func (s CubicSeg) Eval(t float64) Point3 {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	var p Point3
	for k := 0; k < 3; k++ {
		p[k] = mt2*mt*s.P0[k] + 3*mt2*t*s.P1[k] + 3*mt*t2*s.P2[k] + t2*t*s.P3[k]
	}
	return p
}

// Deriv returns the derivative B'(t).
func (s CubicSeg) Deriv(t float64) Point3 {
	mt := 1.0 - t
	var d Point3
	for k := 0; k < 3; k++ {
		d[k] = 3*mt*mt*(s.P1[k]-s.P0[k]) +
			6*mt*t*(s.P2[k]-s.P1[k]) +
			3*t*t*(s.P3[k]-s.P2[k])
	}
	return d
}

// Tangent returns the unit tangent at t. When the derivative vanishes
// (handle coincides with its anchor) the chord direction is used instead.
func (s CubicSeg) Tangent(t float64) (Point3, bool) {
	if tan, ok := normalize(s.Deriv(t)); ok {
		return tan, true
	}
	return normalize(sub(s.P3, s.P0))
}

// Tables of Legendre-Gauss quadrature coefficients (weight, abscissa),
// adapted from <https://pomax.github.io/bezierinfo/legendre-gauss.html>.
var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// ArcLength integrates |B'(t)| over [0, 1].
func (s CubicSeg) ArcLength() float64 {
	var sum float64
	for _, c := range gaussLegendreCoeffs8 {
		t := 0.5 * (c[1] + 1)
		sum += c[0] * length(s.Deriv(t))
	}
	return 0.5 * sum
}
