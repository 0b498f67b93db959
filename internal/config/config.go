// Package config loads the trackgen configuration file.
//
// The file is YAML. Values from the file are overlaid by "key=value"
// overrides from the command line, then decoded into Config. Unknown keys
// are rejected so typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	track "github.com/lytkinsa96/101-Digital-Modeling"
)

// Profiles names the external geometry files threaded through to the output.
type Profiles struct {
	Rail     string `yaml:"rail" mapstructure:"rail"`
	Sleeper  string `yaml:"sleeper" mapstructure:"sleeper"`
	Terminal string `yaml:"terminal" mapstructure:"terminal"`
}

// Config is the file representation of track.Config.
type Config struct {
	Gauge            float64  `yaml:"gauge" mapstructure:"gauge"`
	Spacing          float64  `yaml:"spacing" mapstructure:"spacing"`
	HandleFraction   float64  `yaml:"handle_fraction" mapstructure:"handle_fraction"`
	SmoothIterations int      `yaml:"smooth_iterations" mapstructure:"smooth_iterations"`
	SmoothWeight     float64  `yaml:"smooth_weight" mapstructure:"smooth_weight"`
	Sampling         string   `yaml:"sampling" mapstructure:"sampling"`
	Resolution       int      `yaml:"resolution" mapstructure:"resolution"`
	Tail             string   `yaml:"tail" mapstructure:"tail"`
	UpAxis           string   `yaml:"up_axis" mapstructure:"up_axis"`
	Profiles         Profiles `yaml:"profiles" mapstructure:"profiles"`

	smoothSet bool
}

// SmoothIterationsSet reports whether smooth_iterations was given in the
// file or an override, including an explicit 0.
func (c Config) SmoothIterationsSet() bool {
	return c.smoothSet
}

// Default mirrors track.DefaultConfig.
func Default() Config {
	d := track.DefaultConfig()
	return Config{
		Gauge:            d.Gauge,
		Spacing:          d.Spacing,
		HandleFraction:   d.HandleFraction,
		SmoothIterations: d.SmoothIterations,
		SmoothWeight:     d.SmoothWeight,
		Sampling:         d.Sampling.String(),
		Resolution:       d.Resolution,
		Tail:             d.Tail.String(),
		UpAxis:           d.UpAxis.String(),
	}
}

// Load reads path (optional; "" means defaults only) and applies overrides
// of the form "key=value" or "profiles.rail=value".
func Load(path string, overrides []string) (Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}
	for _, o := range overrides {
		if err := set(raw, o); err != nil {
			return Config{}, err
		}
	}
	return decode(raw)
}

// set applies one "key=value" override, descending into nested maps on dots.
func set(raw map[string]any, override string) error {
	key, value, ok := strings.Cut(override, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid override %q: want key=value", override)
	}
	parts := strings.Split(key, ".")
	m := raw
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = strings.TrimSpace(value)
	return nil
}

func decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	_, cfg.smoothSet = raw["smooth_iterations"]
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enum names.
func (c Config) Validate() error {
	var errs []error
	if !(c.Gauge > 0) {
		errs = append(errs, fmt.Errorf("gauge must be positive, got %v", c.Gauge))
	}
	if !(c.Spacing > 0) {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %v", c.Spacing))
	}
	if !(c.HandleFraction > 0) {
		errs = append(errs, fmt.Errorf("handle_fraction must be positive, got %v", c.HandleFraction))
	}
	if c.SmoothIterations < 0 {
		errs = append(errs, fmt.Errorf("smooth_iterations must not be negative, got %d", c.SmoothIterations))
	}
	if c.SmoothWeight < 0 || c.SmoothWeight > 1 {
		errs = append(errs, fmt.Errorf("smooth_weight must be in [0, 1], got %v", c.SmoothWeight))
	}
	if c.Resolution < 1 {
		errs = append(errs, fmt.Errorf("resolution must be at least 1, got %d", c.Resolution))
	}
	if _, err := track.ParseSamplingMode(c.Sampling); err != nil {
		errs = append(errs, err)
	}
	if _, err := track.ParseTailPolicy(c.Tail); err != nil {
		errs = append(errs, err)
	}
	if _, err := track.ParseAxis(c.UpAxis); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts c into pipeline options. Profile references are the
// configured file names. Call Validate first; invalid enum names fall back
// to their defaults here.
func (c Config) Options() []track.Option {
	mode, _ := track.ParseSamplingMode(c.Sampling)
	tail, _ := track.ParseTailPolicy(c.Tail)
	up, _ := track.ParseAxis(c.UpAxis)

	opts := []track.Option{
		track.WithGauge(c.Gauge),
		track.WithSpacing(c.Spacing),
		track.WithHandleFraction(c.HandleFraction),
		track.WithSampling(mode),
		track.WithResolution(c.Resolution),
		track.WithTailPolicy(tail),
		track.WithUpAxis(up),
		track.WithSmoothing(c.SmoothIterations, c.SmoothWeight),
	}
	var p track.Profiles
	if c.Profiles.Rail != "" {
		p.Rail = c.Profiles.Rail
	}
	if c.Profiles.Sleeper != "" {
		p.Sleeper = c.Profiles.Sleeper
	}
	if c.Profiles.Terminal != "" {
		p.Terminal = c.Profiles.Terminal
	}
	return append(opts, track.WithProfiles(p))
}
