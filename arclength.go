package track

import "sort"

// ArcLengthTable holds the cumulative distance at every vertex of a
// polyline. Distances are non-decreasing and the last entry is the total
// length of the polyline.
type ArcLengthTable struct {
	points Polyline
	cum    []float64
}

// NewArcLengthTable accumulates segment lengths over pts.
// Returns ErrTooFewPoints when pts has fewer than two points.
func NewArcLengthTable(pts Polyline) (ArcLengthTable, error) {
	if len(pts) < 2 {
		return ArcLengthTable{}, ErrTooFewPoints
	}
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + dist(pts[i-1], pts[i])
	}
	return ArcLengthTable{points: pts.Clone(), cum: cum}, nil
}

// Len returns the number of entries.
func (t ArcLengthTable) Len() int {
	return len(t.cum)
}

// Total returns the total path length.
func (t ArcLengthTable) Total() float64 {
	if len(t.cum) == 0 {
		return 0
	}
	return t.cum[len(t.cum)-1]
}

// Distance returns the cumulative distance at vertex i.
func (t ArcLengthTable) Distance(i int) float64 {
	return t.cum[i]
}

// Distances returns a copy of the cumulative distances.
func (t ArcLengthTable) Distances() []float64 {
	out := make([]float64, len(t.cum))
	copy(out, t.cum)
	return out
}

// Points returns a copy of the polyline the table was built over.
func (t ArcLengthTable) Points() Polyline {
	return t.points.Clone()
}

// Locate returns the index j of the first vertex whose cumulative distance
// is at least d (1 <= j < Len), and the fraction of d along the segment
// from vertex j-1 to vertex j. Distances past the end land on the last
// segment with a fraction greater than 1.
func (t ArcLengthTable) Locate(d float64) (int, float64) {
	n := len(t.cum)
	j := 1 + sort.Search(n-1, func(i int) bool { return t.cum[i+1] >= d })
	if j >= n {
		j = n - 1
	}
	seg := t.cum[j] - t.cum[j-1]
	if seg == 0 {
		return j, 1
	}
	return j, (d - t.cum[j-1]) / seg
}

// direction returns the unit direction of segment j, falling back to the
// nearest non-degenerate segment after it, then before it.
func (t ArcLengthTable) direction(j int) (Point3, bool) {
	n := len(t.points)
	for k := j; k < n; k++ {
		if dir, ok := normalize(sub(t.points[k], t.points[k-1])); ok {
			return dir, true
		}
	}
	for k := j - 1; k >= 1; k-- {
		if dir, ok := normalize(sub(t.points[k], t.points[k-1])); ok {
			return dir, true
		}
	}
	return Point3{}, false
}
