package track

// Offset returns a curve whose anchors are displaced from c's anchors along
// the local horizontal normal by distance.
//
// The tangent at anchor i is the direction to anchor i+1 (from anchor
// last-1 at the end). The normal is tangent × WorldUp, which points to the
// right of the direction of travel: positive distances move right,
// negative distances move left.
//
// Coincident consecutive anchors and vertical steps reuse the previous
// valid direction. If no valid direction exists at all, ErrDegenerateSegment
// is returned.
func Offset(c Curve, distance float64, opts ...BuildOption) (Curve, error) {
	n := c.Len()
	if n < 2 {
		return Curve{}, ErrTooFewPoints
	}

	anchors := c.Anchors()
	normals := make([]Point3, n)
	valid := make([]bool, n)
	found := false
	for i := range anchors {
		var d Point3
		if i < n-1 {
			d = sub(anchors[i+1], anchors[i])
		} else {
			d = sub(anchors[i], anchors[i-1])
		}
		tangent, ok := normalize(d)
		if !ok {
			continue
		}
		normals[i], valid[i] = normalize(cross(tangent, WorldUp()))
		found = found || valid[i]
	}
	if !found {
		return Curve{}, ErrDegenerateSegment
	}

	// Fill gaps forward from the last valid normal, and the leading gap
	// backward from the first valid one.
	first := -1
	for i := range normals {
		if valid[i] {
			if first < 0 {
				first = i
			}
			continue
		}
		if first >= 0 {
			normals[i] = normals[i-1]
		}
	}
	for i := 0; i < first; i++ {
		normals[i] = normals[first]
	}

	moved := make(Polyline, n)
	for i, a := range anchors {
		moved[i] = add(a, scale(normals[i], distance))
	}
	Logger().Debug("track: offset curve", "anchors", n, "distance", distance)
	return NewCurve(moved, opts...)
}
