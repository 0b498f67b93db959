package track

// Centerline returns the curve equidistant between two rail-edge curves:
// anchor i is the midpoint of left's and right's anchor i. Handles are
// re-derived from the new anchors, not interpolated from the inputs.
//
// The inputs must have equal anchor counts; otherwise a
// *LengthMismatchError (matching ErrLengthMismatch) is returned.
func Centerline(left, right Curve, opts ...BuildOption) (Curve, error) {
	if left.Len() != right.Len() {
		return Curve{}, &LengthMismatchError{Left: left.Len(), Right: right.Len()}
	}
	if left.Len() == 0 {
		return Curve{}, ErrEmptyInput
	}

	mid := make(Polyline, left.Len())
	for i := range mid {
		mid[i] = midpoint(left.points[i].Anchor, right.points[i].Anchor)
	}
	return NewCurve(mid, opts...)
}
