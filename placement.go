package track

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
)

// DefaultSpacing is the default distance between sleepers in meters.
const DefaultSpacing = 0.6

// MaxSlots is the largest number of interior slots Place will emit.
// A spacing that would exceed it is rejected with ErrInvalidSpacing.
const MaxSlots = 1 << 24

// Profile is an opaque reference to external geometry (a rail cross-section
// or a sleeper shape). The track package never inspects it.
type Profile any

// PlacementFrame positions one discrete object along a path.
type PlacementFrame struct {
	Position    Point3
	Orientation quaternion.T
}

// Placement is a frame paired with the profile to instantiate there.
type Placement struct {
	PlacementFrame
	Profile  Profile
	Distance float64
	Terminal bool
}

// TailPolicy decides how the terminal frame is resolved when its distance
// lies beyond the sampled length.
//
// Place puts the terminal slot at floor(L/S)*S, which never exceeds L by
// more than the rounding slack a Sampler already accepts. For Place the
// policy therefore only guards rounding slack: all three policies yield the
// same frames.
type TailPolicy int

const (
	// TailClamp places the terminal frame at the end of the path.
	TailClamp TailPolicy = iota
	// TailExtrapolate extends the path along its final tangent.
	TailExtrapolate
	// TailStrict fails with ErrSamplingOutOfRange.
	TailStrict
)

// String returns the configuration name of the policy.
func (p TailPolicy) String() string {
	switch p {
	case TailClamp:
		return "clamp"
	case TailExtrapolate:
		return "extrapolate"
	case TailStrict:
		return "strict"
	default:
		return fmt.Sprintf("TailPolicy(%d)", int(p))
	}
}

// ParseTailPolicy parses "clamp", "extrapolate" or "strict".
func ParseTailPolicy(s string) (TailPolicy, error) {
	switch s {
	case "clamp", "":
		return TailClamp, nil
	case "extrapolate":
		return TailExtrapolate, nil
	case "strict":
		return TailStrict, nil
	}
	return 0, fmt.Errorf("track: unknown tail policy %q", s)
}

// placeOptions holds options for Place.
type placeOptions struct {
	tail   TailPolicy
	up     Axis
	noTail bool
}

// PlaceOption configures Place.
type PlaceOption func(*placeOptions)

// WithTail sets the policy for a terminal frame beyond the path end. It
// guards rounding slack only; see TailPolicy.
func WithTail(p TailPolicy) PlaceOption {
	return func(o *placeOptions) {
		o.tail = p
	}
}

// WithUp sets the local axis that is turned toward WorldUp.
func WithUp(a Axis) PlaceOption {
	return func(o *placeOptions) {
		o.up = a
	}
}

// WithoutTerminal suppresses the terminal frame.
func WithoutTerminal() PlaceOption {
	return func(o *placeOptions) {
		o.noTail = true
	}
}

// Place walks s at fixed spacing and returns one placement per slot.
//
// With L = s.Length() and n = floor(L / spacing), interior frames are
// emitted at distances 0, spacing, ..., (n-1)*spacing using primary. A
// terminal frame follows at n*spacing using terminal (primary when
// terminal is nil). Spacings that would need more than MaxSlots slots are
// rejected with ErrInvalidSpacing.
func Place(s Sampler, spacing float64, primary, terminal Profile, opts ...PlaceOption) ([]Placement, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, ErrInvalidSpacing
	}
	o := placeOptions{tail: TailClamp, up: AxisX}
	for _, opt := range opts {
		opt(&o)
	}

	total := s.Length()
	n := math.Floor(total/spacing + rangeTolerance(1))
	if !(n <= MaxSlots) {
		return nil, fmt.Errorf("%w: %.6g over %.6g needs %.6g slots, limit %d",
			ErrInvalidSpacing, spacing, total, n, MaxSlots)
	}
	slots := int(n)
	out := make([]Placement, 0, slots+1)
	for i := range slots {
		d := float64(i) * spacing
		sample, err := s.At(d)
		if err != nil {
			return out, fmt.Errorf("slot %d at %.6g: %w", i, d, err)
		}
		frame, err := frameAt(sample, o.up)
		if err != nil {
			return out, fmt.Errorf("slot %d at %.6g: %w", i, d, err)
		}
		out = append(out, Placement{PlacementFrame: frame, Profile: primary, Distance: d})
	}
	if o.noTail {
		return out, nil
	}

	if terminal == nil {
		terminal = primary
	}
	d := float64(slots) * spacing
	sample, err := sampleTail(s, d, o.tail)
	if err != nil {
		return out, fmt.Errorf("terminal at %.6g: %w", d, err)
	}
	frame, err := frameAt(sample, o.up)
	if err != nil {
		return out, fmt.Errorf("terminal at %.6g: %w", d, err)
	}
	if d > total {
		d = resolvedTailDistance(d, total, o.tail)
	}
	out = append(out, Placement{PlacementFrame: frame, Profile: terminal, Distance: d, Terminal: true})
	return out, nil
}

func frameAt(s Sample, up Axis) (PlacementFrame, error) {
	q, err := TrackQuat(s.Tangent, up)
	if err != nil {
		return PlacementFrame{}, err
	}
	return PlacementFrame{Position: s.Position, Orientation: q}, nil
}

// sampleTail samples d, applying policy when d lies past the end.
func sampleTail(s Sampler, d float64, policy TailPolicy) (Sample, error) {
	total := s.Length()
	if d <= total+rangeTolerance(total) {
		return s.At(d)
	}
	switch policy {
	case TailStrict:
		return Sample{}, &SamplingError{Distance: d, Length: total}
	case TailExtrapolate:
		end, err := s.At(total)
		if err != nil {
			return Sample{}, err
		}
		Logger().Warn("track: terminal frame extrapolated", "distance", d, "length", total)
		end.Position = add(end.Position, scale(end.Tangent, d-total))
		return end, nil
	default:
		Logger().Warn("track: terminal frame clamped", "distance", d, "length", total)
		return s.At(total)
	}
}

func resolvedTailDistance(d, total float64, policy TailPolicy) float64 {
	if policy == TailClamp {
		return total
	}
	return d
}
