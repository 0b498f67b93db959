package track

import (
	"errors"
	"testing"
)

func TestCenterline_Midpoints(t *testing.T) {
	left := Polyline{P3(0, 1, 0), P3(5, 1.2, 0.1), P3(10, 2, 0.3), P3(15, 4, 0.2)}
	right := Polyline{P3(0, -1, 0), P3(5, -0.8, 0.1), P3(10, 0, 0.1), P3(15, 2, 0.4)}

	c, err := Centerline(mustCurve(t, left), mustCurve(t, right))
	if err != nil {
		t.Fatalf("Centerline: %v", err)
	}
	if c.Len() != len(left) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(left))
	}
	for i, a := range c.Anchors() {
		want := P3(
			(left[i][0]+right[i][0])/2,
			(left[i][1]+right[i][1])/2,
			(left[i][2]+right[i][2])/2,
		)
		if !ApproxEqual(a, want, epsilon) {
			t.Errorf("anchor %d = %v, want %v", i, a, want)
		}
	}
}

func TestCenterline_HandlesRederived(t *testing.T) {
	left := mustCurve(t, Polyline{P3(0, 1, 0), P3(3, 1, 0), P3(6, 1, 0)})
	right := mustCurve(t, Polyline{P3(0, -1, 0), P3(3, -1, 0), P3(6, -1, 0)}, WithHandleLength(0.1))

	c, err := Centerline(left, right)
	if err != nil {
		t.Fatalf("Centerline: %v", err)
	}
	// Default fraction on the centerline regardless of the inputs' handles.
	if got := c.Point(1).RightHandle; !ApproxEqual(got, P3(4, 0, 0), epsilon) {
		t.Errorf("right handle = %v, want (4, 0, 0)", got)
	}
}

func TestCenterline_LengthMismatch(t *testing.T) {
	left := mustCurve(t, line(5, 1))
	right := mustCurve(t, line(6, 1))

	c, err := Centerline(left, right)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("error %T is not *LengthMismatchError", err)
	}
	if lm.Left != 5 || lm.Right != 6 {
		t.Errorf("counts = %d/%d, want 5/6", lm.Left, lm.Right)
	}
	if c.Len() != 0 {
		t.Errorf("mismatch produced a curve with %d anchors", c.Len())
	}
}

func TestCenterline_Empty(t *testing.T) {
	if _, err := Centerline(Curve{}, Curve{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}
