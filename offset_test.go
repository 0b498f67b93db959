package track

import (
	"errors"
	"math"
	"testing"
)

func TestOffset_ZeroDistance(t *testing.T) {
	pts := Polyline{P3(0, 0, 0), P3(4, 1, 0.2), P3(8, 3, 0.1), P3(11, 7, 0)}
	c := mustCurve(t, pts)

	o, err := Offset(c, 0)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	for i, a := range o.Anchors() {
		if !ApproxEqual(a, pts[i], epsilon) {
			t.Errorf("anchor %d = %v, want %v", i, a, pts[i])
		}
	}
}

func TestOffset_SignConvention(t *testing.T) {
	// Travelling along +X with Z up, the right-hand side is -Y.
	c := mustCurve(t, line(3, 5))

	right, err := Offset(c, 0.76)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	for i, a := range right.Anchors() {
		want := P3(float64(i)*5, -0.76, 0)
		if !ApproxEqual(a, want, epsilon) {
			t.Errorf("anchor %d = %v, want %v", i, a, want)
		}
	}
}

func TestOffset_OppositeSides(t *testing.T) {
	pts := Polyline{P3(0, 0, 0), P3(3, 1, 0), P3(6, 3, 0.5), P3(8, 6, 0.5), P3(9, 10, 0)}
	c := mustCurve(t, pts)
	const d = 0.76

	plus, err := Offset(c, d)
	if err != nil {
		t.Fatalf("Offset(+d): %v", err)
	}
	minus, err := Offset(c, -d)
	if err != nil {
		t.Fatalf("Offset(-d): %v", err)
	}
	if plus.Len() != len(pts) || minus.Len() != len(pts) {
		t.Fatalf("anchor counts %d/%d, want %d", plus.Len(), minus.Len(), len(pts))
	}

	pa, ma := plus.Anchors(), minus.Anchors()
	for i := range pts {
		dp := sub(pa[i], pts[i])
		dm := sub(ma[i], pts[i])
		if math.Abs(length(dp)-d) > epsilon || math.Abs(length(dm)-d) > epsilon {
			t.Errorf("anchor %d displacement %v / %v, want %v", i, length(dp), length(dm), d)
		}
		if !ApproxEqual(add(dp, dm), P3(0, 0, 0), epsilon) {
			t.Errorf("anchor %d displacements %v and %v are not opposite", i, dp, dm)
		}
		// Horizontal displacement.
		if math.Abs(dp[2]) > epsilon {
			t.Errorf("anchor %d displaced vertically by %v", i, dp[2])
		}
	}
}

func TestOffset_LastAnchorUsesPreviousStep(t *testing.T) {
	c := mustCurve(t, Polyline{P3(0, 0, 0), P3(0, 2, 0)})
	o, err := Offset(c, 1)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	// Travelling +Y, right is +X.
	want := Polyline{P3(1, 0, 0), P3(1, 2, 0)}
	for i, a := range o.Anchors() {
		if !ApproxEqual(a, want[i], epsilon) {
			t.Errorf("anchor %d = %v, want %v", i, a, want[i])
		}
	}
}

func TestOffset_DuplicateAnchors(t *testing.T) {
	pts := Polyline{P3(0, 0, 0), P3(1, 0, 0), P3(1, 0, 0), P3(2, 0, 0)}
	o, err := Offset(mustCurve(t, pts), 1)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	for i, a := range o.Anchors() {
		want := P3(pts[i][0], -1, 0)
		if !ApproxEqual(a, want, epsilon) {
			t.Errorf("anchor %d = %v, want %v", i, a, want)
		}
	}
}

func TestOffset_LeadingVerticalStep(t *testing.T) {
	// The first step is vertical; its normal comes from the next step.
	pts := Polyline{P3(0, 0, 0), P3(0, 0, 1), P3(2, 0, 1)}
	o, err := Offset(mustCurve(t, pts), 1)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if got := o.Point(0).Anchor; !ApproxEqual(got, P3(0, -1, 0), epsilon) {
		t.Errorf("anchor 0 = %v, want (0, -1, 0)", got)
	}
}

func TestOffset_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  Polyline
		want error
	}{
		{"coincident", Polyline{P3(1, 1, 1), P3(1, 1, 1), P3(1, 1, 1)}, ErrDegenerateSegment},
		{"vertical", Polyline{P3(0, 0, 0), P3(0, 0, 5)}, ErrDegenerateSegment},
		{"single", Polyline{P3(0, 0, 0)}, ErrTooFewPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Offset(mustCurve(t, tt.pts), 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
