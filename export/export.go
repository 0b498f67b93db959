// Package export serializes a track for the host that builds renderable
// geometry from it.
//
// The document lists the rail curves as Bezier control points (for bevel or
// extrusion with the rail profile) and every sleeper placement as a position,
// an [x y z w] quaternion and the profile to instance there.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	track "github.com/lytkinsa96/101-Digital-Modeling"
)

// Format is an output encoding.
type Format int

const (
	// JSON encodes with encoding/json, indented.
	JSON Format = iota
	// YAML encodes with gopkg.in/yaml.v3.
	YAML
)

// FormatFor picks the format from a file extension; anything other than
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Vec is a point as [x, y, z].
type Vec [3]float64

// ControlPoint is a Bezier anchor with its handles.
type ControlPoint struct {
	Anchor Vec `json:"anchor" yaml:"anchor"`
	Left   Vec `json:"left" yaml:"left"`
	Right  Vec `json:"right" yaml:"right"`
}

// Rail is one rail curve.
type Rail struct {
	Name    string         `json:"name" yaml:"name"`
	Offset  float64        `json:"offset" yaml:"offset"`
	Profile string         `json:"profile,omitempty" yaml:"profile,omitempty"`
	Points  []ControlPoint `json:"points" yaml:"points"`
}

// Placement is one sleeper instance.
type Placement struct {
	Index    int        `json:"index" yaml:"index"`
	Distance float64    `json:"distance" yaml:"distance"`
	Position Vec        `json:"position" yaml:"position"`
	Rotation [4]float64 `json:"rotation" yaml:"rotation"`
	Profile  string     `json:"profile,omitempty" yaml:"profile,omitempty"`
	Terminal bool       `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

// Document is the serialized form of a track.
type Document struct {
	Length     float64        `json:"length" yaml:"length"`
	Centerline []ControlPoint `json:"centerline" yaml:"centerline"`
	Rails      []Rail         `json:"rails,omitempty" yaml:"rails,omitempty"`
	Placements []Placement    `json:"placements" yaml:"placements"`
}

// FromTrack converts t to a Document.
func FromTrack(t *track.Track) Document {
	doc := Document{
		Length:     t.Length,
		Centerline: controlPoints(t.Centerline),
		Placements: make([]Placement, len(t.Placements)),
	}
	if t.HasRails() {
		doc.Rails = []Rail{rail("left", t.Left), rail("right", t.Right)}
	}
	for i, p := range t.Placements {
		doc.Placements[i] = Placement{
			Index:    i,
			Distance: p.Distance,
			Position: Vec(p.Position),
			Rotation: [4]float64(p.Orientation),
			Profile:  ProfileName(p.Profile),
			Terminal: p.Terminal,
		}
	}
	return doc
}

// ProfileName renders an opaque profile reference for output: strings as
// is, fmt.Stringer through String, nil as "".
func ProfileName(p track.Profile) string {
	switch v := p.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func rail(name string, r track.Rail) Rail {
	return Rail{
		Name:    name,
		Offset:  r.Offset,
		Profile: ProfileName(r.Profile),
		Points:  controlPoints(r.Curve),
	}
}

func controlPoints(c track.Curve) []ControlPoint {
	out := make([]ControlPoint, c.Len())
	for i := range out {
		cp := c.Point(i)
		out[i] = ControlPoint{
			Anchor: Vec(cp.Anchor),
			Left:   Vec(cp.LeftHandle),
			Right:  Vec(cp.RightHandle),
		}
	}
	return out
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: json: %w", err)
		}
		return nil
	}
}

// WriteFile writes t to path, choosing the format from the extension.
func WriteFile(path string, t *track.Track) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Encode(f, FromTrack(t), FormatFor(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
