package track

// DefaultGauge is the default track gauge in meters (1520 mm broad gauge).
const DefaultGauge = 1.520

// Option configures a pipeline run.
// Use functional options to override the defaults from DefaultConfig.
//
// Example:
//
//	t, err := track.Build(ctx, left, right,
//	    track.WithSpacing(0.6),
//	    track.WithSampling(track.SamplingContinuous),
//	)
type Option func(*Config)

// Profiles are the opaque geometry references threaded through to the
// output. Terminal may be nil, in which case Sleeper is used for the last
// frame as well.
type Profiles struct {
	Rail     Profile
	Sleeper  Profile
	Terminal Profile
}

// Config holds every tunable of the pipeline.
type Config struct {
	// Gauge is the lateral distance between the two rails; each rail is
	// offset from the centerline by Gauge/2.
	Gauge float64

	// Spacing is the distance between consecutive sleepers.
	Spacing float64

	// HandleFraction scales automatic Bezier handles relative to the
	// adjacent segment length.
	HandleFraction float64

	// SmoothIterations and SmoothWeight control anchor relaxation of the
	// input paths. Zero iterations disables smoothing.
	SmoothIterations int
	SmoothWeight     float64

	// Sampling selects the arc-length strategy; Resolution is the number
	// of steps per segment for SamplingDiscrete.
	Sampling   SamplingMode
	Resolution int

	// Tail resolves a terminal frame beyond the path end. It guards
	// rounding slack only; see TailPolicy.
	Tail TailPolicy

	// UpAxis is the local sleeper axis turned toward WorldUp.
	UpAxis Axis

	Profiles Profiles
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Gauge:            DefaultGauge,
		Spacing:          DefaultSpacing,
		HandleFraction:   DefaultHandleFraction,
		SmoothIterations: 0,
		SmoothWeight:     DefaultSmoothWeight,
		Sampling:         SamplingDiscrete,
		Resolution:       DefaultResolution,
		Tail:             TailClamp,
		UpAxis:           AxisX,
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(o *Config) {
		*o = c
	}
}

// WithGauge sets the rail gauge in meters.
func WithGauge(g float64) Option {
	return func(o *Config) {
		o.Gauge = g
	}
}

// WithSpacing sets the sleeper spacing in meters.
func WithSpacing(s float64) Option {
	return func(o *Config) {
		o.Spacing = s
	}
}

// WithHandleFraction sets the automatic handle length fraction.
func WithHandleFraction(f float64) Option {
	return func(o *Config) {
		o.HandleFraction = f
	}
}

// WithSmoothing enables anchor relaxation of the input paths.
func WithSmoothing(iterations int, weight float64) Option {
	return func(o *Config) {
		o.SmoothIterations = iterations
		o.SmoothWeight = weight
	}
}

// WithSampling selects the arc-length strategy.
func WithSampling(m SamplingMode) Option {
	return func(o *Config) {
		o.Sampling = m
	}
}

// WithResolution sets the discrete sampler's steps per segment.
func WithResolution(n int) Option {
	return func(o *Config) {
		o.Resolution = n
	}
}

// WithTailPolicy sets the terminal frame policy. It guards rounding slack
// only; see TailPolicy.
func WithTailPolicy(p TailPolicy) Option {
	return func(o *Config) {
		o.Tail = p
	}
}

// WithUpAxis sets the local sleeper axis turned toward WorldUp.
func WithUpAxis(a Axis) Option {
	return func(o *Config) {
		o.UpAxis = a
	}
}

// WithProfiles sets the profile references passed through to the output.
func WithProfiles(p Profiles) Option {
	return func(o *Config) {
		o.Profiles = p
	}
}

func newConfig(opts []Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) buildOptions() []BuildOption {
	return []BuildOption{WithHandleLength(c.HandleFraction)}
}

func (c Config) placeOptions() []PlaceOption {
	return []PlaceOption{WithTail(c.Tail), WithUp(c.UpAxis)}
}
