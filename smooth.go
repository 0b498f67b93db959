package track

// Smoothing defaults.
const (
	// DefaultSmoothIterations is the number of relaxation passes used when
	// smoothing is requested without an explicit count.
	DefaultSmoothIterations = 5

	// DefaultSmoothWeight is how far each pass moves an interior anchor
	// toward the mean of its two neighbors.
	DefaultSmoothWeight = 0.5
)

// Smooth relaxes the interior anchors of c toward the average of their
// neighbors, iterations times. Each pass reads the complete result of the
// previous pass. Endpoints never move. Handles are re-derived with the
// automatic rule. Curves with fewer than 3 anchors are returned unchanged.
//
// weight is clamped to [0, 1]; 0 leaves the curve untouched.
func Smooth(c Curve, iterations int, weight float64, opts ...BuildOption) Curve {
	n := c.Len()
	if n < 3 || iterations <= 0 {
		return c
	}
	weight = min(max(weight, 0), 1)
	if weight == 0 {
		return c
	}

	cur := c.Anchors()
	next := make(Polyline, n)
	for range iterations {
		next[0], next[n-1] = cur[0], cur[n-1]
		for i := 1; i < n-1; i++ {
			avg := midpoint(cur[i-1], cur[i+1])
			next[i] = lerp(cur[i], avg, weight)
		}
		cur, next = next, cur
	}

	o := newBuildOptions(opts)
	Logger().Debug("track: smoothed curve", "anchors", n, "iterations", iterations, "weight", weight)
	return Curve{points: autoHandles(cur, o.handleFraction)}
}
