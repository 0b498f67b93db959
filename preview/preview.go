// Package preview draws a plan view (top-down, X right, Y up) of a track
// into an image, for quick visual checks of generated geometry.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/image/vector"

	track "github.com/lytkinsa96/101-Digital-Modeling"
)

// ErrEmptyTrack is returned when there is nothing to draw.
var ErrEmptyTrack = errors.New("preview: track has no geometry")

// Options controls the rendering.
type Options struct {
	Width, Height int
	// Margin is the border in pixels kept free around the geometry.
	Margin float64
	// LineWidth is the stroke width of rails and centerline in pixels.
	LineWidth float64
	// SleeperLength and SleeperWidth are the sleeper footprint in meters.
	SleeperLength, SleeperWidth float64
	// Resolution is the number of steps per Bezier segment.
	Resolution int

	Background, Rail, Centerline, Sleeper, Terminal color.Color
}

// DefaultOptions returns a 1024x768 preview with standard sleeper size.
func DefaultOptions() Options {
	return Options{
		Width:         1024,
		Height:        768,
		Margin:        16,
		LineWidth:     1.5,
		SleeperLength: 2.75,
		SleeperWidth:  0.25,
		Resolution:    16,
		Background:    color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff},
		Rail:          color.RGBA{R: 0x33, G: 0x3a, B: 0x44, A: 0xff},
		Centerline:    color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0x80},
		Sleeper:       color.RGBA{R: 0x8e, G: 0x6b, B: 0x3e, A: 0xff},
		Terminal:      color.RGBA{R: 0x27, G: 0x60, B: 0xae, A: 0xff},
	}
}

// view maps track XY to pixel coordinates.
type view struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

func (v view) pt(p track.Point3) (float32, float32) {
	x := v.offX + (p[0]-v.minX)*v.scale
	y := v.height - (v.offY + (p[1]-v.minY)*v.scale)
	return float32(x), float32(y)
}

// Render draws t into a new RGBA image.
func Render(t *track.Track, o Options) (*image.RGBA, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, errors.New("preview: image size must be positive")
	}
	if o.Resolution <= 0 {
		o.Resolution = 1
	}

	center := track.Densify(t.Centerline, o.Resolution)
	if len(center) < 2 {
		return nil, ErrEmptyTrack
	}
	var lines []track.Polyline
	if t.HasRails() {
		lines = append(lines,
			track.Densify(t.Left.Curve, o.Resolution),
			track.Densify(t.Right.Curve, o.Resolution))
	}

	v := fit(append([]track.Polyline{center}, lines...), t.Placements, o)

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(o.Width, o.Height)
	for _, p := range t.Placements {
		if !p.Terminal {
			sleeper(z, v, p, o)
		}
	}
	fill(z, img, o.Sleeper)
	for _, p := range t.Placements {
		if p.Terminal {
			sleeper(z, v, p, o)
		}
	}
	fill(z, img, o.Terminal)

	for _, l := range lines {
		stroke(z, v, l, o.LineWidth)
	}
	fill(z, img, o.Rail)
	stroke(z, v, center, o.LineWidth/2)
	fill(z, img, o.Centerline)

	return img, nil
}

// SaveFile renders t and writes it as PNG.
func SaveFile(path string, t *track.Track, o Options) error {
	img, err := Render(t, o)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fit(lines []track.Polyline, ps []track.Placement, o Options) view {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p track.Point3) {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	for _, l := range lines {
		for _, p := range l {
			grow(p)
		}
	}
	for _, p := range ps {
		grow(p.Position)
	}
	// Leave room for half a sleeper on each side.
	pad := o.SleeperLength / 2
	minX, minY, maxX, maxY = minX-pad, minY-pad, maxX+pad, maxY+pad

	w := float64(o.Width) - 2*o.Margin
	h := float64(o.Height) - 2*o.Margin
	dx, dy := math.Max(maxX-minX, 1e-9), math.Max(maxY-minY, 1e-9)
	s := math.Min(w/dx, h/dy)
	return view{
		minX:   minX,
		minY:   minY,
		scale:  s,
		offX:   o.Margin + (w-dx*s)/2,
		offY:   o.Margin + (h-dy*s)/2,
		height: float64(o.Height),
	}
}

// stroke adds one quad per polyline segment.
func stroke(z *vector.Rasterizer, v view, l track.Polyline, width float64) {
	hw := width / 2
	for i := 1; i < len(l); i++ {
		x0, y0 := v.pt(l[i-1])
		x1, y1 := v.pt(l[i])
		dx, dy := float64(x1-x0), float64(y1-y0)
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		nx, ny := float32(-dy/n*hw), float32(dx/n*hw)
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}
}

// sleeper adds the footprint of one placement: its long side runs across
// the track, perpendicular to the local -Z axis.
func sleeper(z *vector.Rasterizer, v view, p track.Placement, o Options) {
	back := vec3.T{0, 0, -1}
	q := p.Orientation
	fwd := q.RotatedVec3(&back)
	fx, fy := fwd[0], fwd[1]
	n := math.Hypot(fx, fy)
	if n == 0 {
		return
	}
	fx, fy = fx/n, fy/n
	ax, ay := -fy*o.SleeperLength/2, fx*o.SleeperLength/2
	bx, by := fx*o.SleeperWidth/2, fy*o.SleeperWidth/2

	c := p.Position
	corners := [4]track.Point3{
		{c[0] + ax + bx, c[1] + ay + by, 0},
		{c[0] - ax + bx, c[1] - ay + by, 0},
		{c[0] - ax - bx, c[1] - ay - by, 0},
		{c[0] + ax - bx, c[1] + ay - by, 0},
	}
	x, y := v.pt(corners[0])
	z.MoveTo(x, y)
	for _, cp := range corners[1:] {
		x, y = v.pt(cp)
		z.LineTo(x, y)
	}
	z.ClosePath()
}

// fill composites the accumulated paths in col and clears the rasterizer.
func fill(z *vector.Rasterizer, dst *image.RGBA, col color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
	z.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
}
