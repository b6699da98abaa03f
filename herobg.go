// Package herobg renders a hero-section background image: a layered
// composition of a blue depth gradient, sinusoidal wave strokes, triangulated
// mesh clusters, a vortex flow field, math annotations, concentric circles, a
// faint reference grid, corner accents and dust particles. The result is
// exported twice, as a transparent PNG and as a JPEG flattened onto an opaque
// fill that matches the gradient's dark tone.
package herobg

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Scene coordinates run [0,10] on both axes, y up. The scene square is
// mapped onto the canvas with equal aspect and centered, so a wide canvas
// keeps transparent bands left and right of the artwork.
const sceneSize = 10.0

// Fixed output file names; existing files are overwritten.
const (
	PNGName  = "hero-background.png"
	JPEGName = "hero-background.jpg"
)

type Options struct {
	// Figure size in inches. The pixel canvas is FigWidth*DPI by
	// FigHeight*DPI.
	FigWidth  float64
	FigHeight float64
	// Dots per inch. Also converts typographic point sizes (line widths,
	// fonts, particle diameters) to pixels. Lower values render the same
	// scene smaller; 200 is the production resolution.
	DPI float64
	// Seeds for the two random layers. Renders are deterministic for fixed
	// seeds.
	MeshSeed     int64
	ParticleSeed int64
	// Opaque fill behind the JPEG export. The default matches the darkest
	// gradient color so the flattened bands blend into the artwork.
	BackgroundFill color.Color
	JPEGQuality    int
}

func DefaultOptions() Options {
	return Options{
		FigWidth:       19.2,
		FigHeight:      10.8,
		DPI:            200,
		MeshSeed:       42,
		ParticleSeed:   123,
		BackgroundFill: color.RGBA{R: 25, G: 55, B: 180, A: 255}, // #1937b4
		JPEGQuality:    95,
	}
}

// Renderer paints the layer stack onto a single canvas. Later layers occlude
// earlier ones; no other control flow exists between them.
type Renderer struct {
	opt Options
	dc  *gg.Context

	w, h   int
	scale  float64 // pixels per scene unit
	ox, oy float64 // pixel offset of the scene square
}

func NewRenderer(opt Options) *Renderer {
	w := int(math.Round(opt.FigWidth * opt.DPI))
	h := int(math.Round(opt.FigHeight * opt.DPI))
	side := min(w, h)
	return &Renderer{
		opt:   opt,
		dc:    gg.NewContext(w, h),
		w:     w,
		h:     h,
		scale: float64(side) / sceneSize,
		ox:    float64(w-side) / 2,
		oy:    float64(h-side) / 2,
	}
}

type layer struct {
	name string
	draw func(*Renderer) error
}

// layers returns the pipeline in draw order.
func layers() []layer {
	return []layer{
		{"gradient", (*Renderer).paintGradient},
		{"waves", (*Renderer).strokeWaves},
		{"meshes", (*Renderer).strokeMeshes},
		{"flowfield", (*Renderer).drawFlowField},
		{"annotations", (*Renderer).drawAnnotations},
		{"circles", (*Renderer).strokeCircles},
		{"grid", (*Renderer).strokeGrid},
		{"corners", (*Renderer).strokeCorners},
		{"particles", (*Renderer).drawParticles},
	}
}

func (r *Renderer) Render() (image.Image, error) {
	for _, l := range layers() {
		if err := l.draw(r); err != nil {
			return nil, fmt.Errorf("draw %s layer: %w", l.name, err)
		}
	}
	return r.dc.Image(), nil
}

// Generate renders with DefaultOptions and writes both output files into dir.
func Generate(dir string) error {
	return GenerateWith(dir, DefaultOptions())
}

func GenerateWith(dir string, opt Options) error {
	img, err := NewRenderer(opt).Render()
	if err != nil {
		return err
	}
	if err := SavePNG(filepath.Join(dir, PNGName), img); err != nil {
		return err
	}
	return SaveJPEG(filepath.Join(dir, JPEGName), Flatten(img, opt.BackgroundFill), opt.JPEGQuality)
}

// px and py map scene coordinates onto the pixel canvas; scene y grows upward.
func (r *Renderer) px(x float64) float64 { return r.ox + x*r.scale }
func (r *Renderer) py(y float64) float64 { return float64(r.h) - r.oy - y*r.scale }

// pt converts a size in typographic points to pixels at the canvas DPI.
func (r *Renderer) pt(p float64) float64 { return p * r.opt.DPI / 72 }

func uniforms(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
