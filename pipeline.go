package track

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Rail is one offset rail curve with the profile to sweep along it.
type Rail struct {
	Curve   Curve
	Offset  float64
	Profile Profile
}

// Track is the output of a pipeline run.
type Track struct {
	// Centerline is the path the sleepers follow.
	Centerline Curve

	// Left and Right are the rail curves. They are zero for BuildPath.
	Left, Right Rail

	// Length is the sampled length of the centerline.
	Length float64

	// Placements holds the interior sleeper frames followed by the
	// terminal frame.
	Placements []Placement
}

// HasRails reports whether the track carries rail curves.
func (t *Track) HasRails() bool {
	return t.Left.Curve.Len() > 0 && t.Right.Curve.Len() > 0
}

// Terminal returns the terminal placement, if any.
func (t *Track) Terminal() (Placement, bool) {
	if n := len(t.Placements); n > 0 && t.Placements[n-1].Terminal {
		return t.Placements[n-1], true
	}
	return Placement{}, false
}

// Build runs the two-rail pipeline: curves from the rail-edge polylines,
// optional smoothing, centerline, left/right rail offsets at ±Gauge/2 and
// sleeper placement along the centerline.
//
// Errors are wrapped in *StageError naming the failing stage. When a stage
// after the centerline fails, the returned Track still carries the
// centerline and any other completed parts.
func Build(ctx context.Context, left, right Polyline, opts ...Option) (*Track, error) {
	cfg := newConfig(opts)
	bopts := cfg.buildOptions()
	log := Logger()

	lc, err := NewCurve(left, bopts...)
	if err != nil {
		return nil, stageErr(StageBuild, fmt.Errorf("left: %w", err))
	}
	rc, err := NewCurve(right, bopts...)
	if err != nil {
		return nil, stageErr(StageBuild, fmt.Errorf("right: %w", err))
	}
	if cfg.SmoothIterations > 0 {
		lc = Smooth(lc, cfg.SmoothIterations, cfg.SmoothWeight, bopts...)
		rc = Smooth(rc, cfg.SmoothIterations, cfg.SmoothWeight, bopts...)
	}

	center, err := Centerline(lc, rc, bopts...)
	if err != nil {
		return nil, stageErr(StageCenterline, err)
	}
	if err := center.Validate(); err != nil {
		return nil, stageErr(StageCenterline, err)
	}
	log.Debug("track: centerline built", "anchors", center.Len())

	t := &Track{Centerline: center}

	// Both rails only read the shared centerline.
	half := cfg.Gauge / 2
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range []struct {
		dst *Rail
		d   float64
	}{{&t.Left, -half}, {&t.Right, half}} {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := Offset(center, r.d, bopts...)
			if err != nil {
				return err
			}
			*r.dst = Rail{Curve: c, Offset: r.d, Profile: cfg.Profiles.Rail}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Left, t.Right = Rail{}, Rail{}
		return t, stageErr(StageOffset, err)
	}

	if err := placeSleepers(ctx, t, cfg); err != nil {
		return t, err
	}
	log.Info("track: built",
		"anchors", center.Len(),
		"length", t.Length,
		"placements", len(t.Placements),
		"sampling", cfg.Sampling.String())
	return t, nil
}

// BuildPath places sleepers directly along a single path without rails.
// Smoothing defaults to DefaultSmoothIterations passes unless an option
// sets SmoothIterations explicitly.
func BuildPath(ctx context.Context, path Polyline, opts ...Option) (*Track, error) {
	cfg := DefaultConfig()
	cfg.SmoothIterations = DefaultSmoothIterations
	for _, opt := range opts {
		opt(&cfg)
	}
	bopts := cfg.buildOptions()

	c, err := NewCurve(path, bopts...)
	if err != nil {
		return nil, stageErr(StageBuild, err)
	}
	if cfg.SmoothIterations > 0 {
		c = Smooth(c, cfg.SmoothIterations, cfg.SmoothWeight, bopts...)
	}
	if err := c.Validate(); err != nil {
		return nil, stageErr(StageBuild, err)
	}

	t := &Track{Centerline: c}
	if err := placeSleepers(ctx, t, cfg); err != nil {
		return t, err
	}
	Logger().Info("track: path built", "anchors", c.Len(), "length", t.Length, "placements", len(t.Placements))
	return t, nil
}

func placeSleepers(ctx context.Context, t *Track, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s, err := NewSampler(t.Centerline, cfg.Sampling, cfg.Resolution)
	if err != nil {
		return stageErr(StageSample, err)
	}
	t.Length = s.Length()

	ps, err := Place(s, cfg.Spacing, cfg.Profiles.Sleeper, cfg.Profiles.Terminal, cfg.placeOptions()...)
	if err != nil {
		return stageErr(StagePlace, err)
	}
	t.Placements = ps
	return nil
}
