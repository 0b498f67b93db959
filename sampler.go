package track

import (
	"fmt"
	"math"
)

// DefaultResolution is the number of polyline steps per cubic segment used
// by the discrete sampler.
const DefaultResolution = 64

// Sample is a point on a path with its unit tangent.
type Sample struct {
	Position Point3
	Tangent  Point3
}

// Sampler resolves linear distance along a path to a position and tangent.
//
// At accepts an absolute distance in [0, Length()]; AtNormalized accepts a
// normalized parameter in [0, 1]. Both return a *SamplingError (matching
// ErrSamplingOutOfRange) outside their range.
type Sampler interface {
	Length() float64
	At(distance float64) (Sample, error)
	AtNormalized(t float64) (Sample, error)
}

// SamplingMode selects a Sampler strategy.
type SamplingMode int

const (
	// SamplingDiscrete densifies the curve into a polyline and interpolates
	// linearly over its arc-length table.
	SamplingDiscrete SamplingMode = iota

	// SamplingContinuous evaluates the cubic segments directly, mapping the
	// normalized parameter uniformly over the segments.
	SamplingContinuous
)

// String returns the configuration name of the mode.
func (m SamplingMode) String() string {
	switch m {
	case SamplingDiscrete:
		return "discrete"
	case SamplingContinuous:
		return "continuous"
	default:
		return fmt.Sprintf("SamplingMode(%d)", int(m))
	}
}

// ParseSamplingMode parses "discrete" or "continuous".
func ParseSamplingMode(s string) (SamplingMode, error) {
	switch s {
	case "discrete", "":
		return SamplingDiscrete, nil
	case "continuous":
		return SamplingContinuous, nil
	}
	return 0, fmt.Errorf("track: unknown sampling mode %q", s)
}

// NewSampler builds the sampler selected by mode. resolution applies to
// the discrete strategy only.
func NewSampler(c Curve, mode SamplingMode, resolution int) (Sampler, error) {
	switch mode {
	case SamplingDiscrete:
		s, err := NewDiscreteSampler(c, resolution)
		if err != nil {
			return nil, err
		}
		return s, nil
	case SamplingContinuous:
		s, err := NewContinuousSampler(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("track: unknown sampling mode %d", int(mode))
	}
}

// rangeTolerance is the slack allowed when checking a distance against
// [0, length], scaled by the length for long paths.
func rangeTolerance(length float64) float64 {
	return 1e-9 * math.Max(1, length)
}

// clampRange clamps v into [0, hi] if it lies within tol of the range and
// reports whether it was in range.
func clampRange(v, hi, tol float64) (float64, bool) {
	if math.IsNaN(v) || v < -tol || v > hi+tol {
		return v, false
	}
	return min(max(v, 0), hi), true
}

// -------------------------------------------------------------------
// DiscreteSampler
// -------------------------------------------------------------------

// DiscreteSampler samples the polyline approximation of a curve.
type DiscreteSampler struct {
	table ArcLengthTable
}

// NewDiscreteSampler densifies c with resolution steps per segment (at
// least 1; non-positive selects DefaultResolution) and builds its
// arc-length table.
func NewDiscreteSampler(c Curve, resolution int) (*DiscreteSampler, error) {
	if c.Len() < 2 {
		return nil, ErrTooFewPoints
	}
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	table, err := NewArcLengthTable(Densify(c, resolution))
	if err != nil {
		return nil, err
	}
	Logger().Debug("track: discrete sampler", "vertices", table.Len(), "length", table.Total())
	return &DiscreteSampler{table: table}, nil
}

// Densify evaluates every segment of c at resolution evenly spaced
// parameters. The result starts and ends at the curve's end anchors and
// passes through every anchor.
func Densify(c Curve, resolution int) Polyline {
	if c.Len() == 0 {
		return nil
	}
	if resolution < 1 {
		resolution = 1
	}
	segs := c.SegmentCount()
	out := make(Polyline, 0, segs*resolution+1)
	for i := range segs {
		seg := c.Segment(i)
		for k := range resolution {
			out = append(out, seg.Eval(float64(k)/float64(resolution)))
		}
	}
	return append(out, c.points[c.Len()-1].Anchor)
}

// Table returns the sampler's arc-length table.
func (s *DiscreteSampler) Table() ArcLengthTable {
	return s.table
}

// Length returns the total polyline length.
func (s *DiscreteSampler) Length() float64 {
	return s.table.Total()
}

// At interpolates position linearly between the two polyline vertices that
// bracket distance. The tangent is the direction of that polyline segment.
func (s *DiscreteSampler) At(distance float64) (Sample, error) {
	total := s.table.Total()
	d, ok := clampRange(distance, total, rangeTolerance(total))
	if !ok {
		return Sample{}, &SamplingError{Distance: distance, Length: total}
	}
	j, frac := s.table.Locate(d)
	tangent, ok := s.table.direction(j)
	if !ok {
		return Sample{}, ErrDegenerateSegment
	}
	pos := lerp(s.table.points[j-1], s.table.points[j], frac)
	return Sample{Position: pos, Tangent: tangent}, nil
}

// AtNormalized samples at t * Length().
func (s *DiscreteSampler) AtNormalized(t float64) (Sample, error) {
	t, ok := clampRange(t, 1, rangeTolerance(1))
	if !ok {
		return Sample{}, &SamplingError{Distance: t * s.Length(), Length: s.Length()}
	}
	return s.At(t * s.Length())
}

// -------------------------------------------------------------------
// ContinuousSampler
// -------------------------------------------------------------------

// ContinuousSampler evaluates the cubic segments of a curve directly.
// The normalized parameter is spread uniformly over the segments, so equal
// steps in t give equal steps in distance only where the segments have
// similar lengths and uniform speed.
type ContinuousSampler struct {
	curve   Curve
	lengths []float64
	total   float64
}

// NewContinuousSampler measures every segment of c.
func NewContinuousSampler(c Curve) (*ContinuousSampler, error) {
	if c.Len() < 2 {
		return nil, ErrTooFewPoints
	}
	s := &ContinuousSampler{curve: c, lengths: make([]float64, c.SegmentCount())}
	for i := range s.lengths {
		s.lengths[i] = c.Segment(i).ArcLength()
		s.total += s.lengths[i]
	}
	Logger().Debug("track: continuous sampler", "segments", len(s.lengths), "length", s.total)
	return s, nil
}

// Length returns the sum of the segment arc lengths.
func (s *ContinuousSampler) Length() float64 {
	return s.total
}

// At samples at distance / Length().
func (s *ContinuousSampler) At(distance float64) (Sample, error) {
	d, ok := clampRange(distance, s.total, rangeTolerance(s.total))
	if !ok {
		return Sample{}, &SamplingError{Distance: distance, Length: s.total}
	}
	if s.total == 0 {
		return s.AtNormalized(0)
	}
	return s.AtNormalized(d / s.total)
}

// AtNormalized maps t to segment floor(t*segments) and evaluates the cubic
// there. t=0 yields the first anchor and t=1 the last.
func (s *ContinuousSampler) AtNormalized(t float64) (Sample, error) {
	t, ok := clampRange(t, 1, rangeTolerance(1))
	if !ok {
		return Sample{}, &SamplingError{Distance: t * s.total, Length: s.total}
	}
	segs := s.curve.SegmentCount()
	global := t * float64(segs)
	idx := int(global)
	local := global - float64(idx)
	if idx >= segs {
		idx, local = segs-1, 1
	}

	seg := s.curve.Segment(idx)
	tangent, ok := seg.Tangent(local)
	if !ok {
		return Sample{}, ErrDegenerateSegment
	}
	return Sample{Position: seg.Eval(local), Tangent: tangent}, nil
}
