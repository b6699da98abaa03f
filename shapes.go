package herobg

import (
	"math/rand"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"
)

// Concentric domain outlines; each spec strokes an outer ring plus a fainter,
// thinner inner ring at 0.6 of the radius. width is in typographic points.
type circleSpec struct {
	cx, cy, radius, alpha, width float64
}

var circleSpecs = []circleSpec{
	{2.2, 7.2, 0.8, 0.10, 2.5},
	{7.8, 3.0, 0.7, 0.12, 2.2},
	{5.0, 5.2, 1.0, 0.08, 2.8},
}

func (r *Renderer) strokeCircles() error {
	for _, c := range circleSpecs {
		r.dc.SetRGBA(1, 1, 1, c.alpha)
		r.dc.SetLineWidth(r.pt(c.width))
		r.dc.DrawCircle(r.px(c.cx), r.py(c.cy), c.radius*r.scale)
		r.dc.Stroke()

		r.dc.SetRGBA(1, 1, 1, c.alpha*0.5)
		r.dc.SetLineWidth(r.pt(c.width * 0.6))
		r.dc.DrawCircle(r.px(c.cx), r.py(c.cy), c.radius*0.6*r.scale)
		r.dc.Stroke()
	}
	return nil
}

const (
	gridLines = 15
	gridAlpha = 0.04
	gridWidth = 0.3 // points
)

// strokeGrid lays a faint full-span reference grid over the scene.
func (r *Renderer) strokeGrid() error {
	pos := floats.Span(make([]float64, gridLines), 0.5, 9.5)
	r.dc.SetRGBA(1, 1, 1, gridAlpha)
	r.dc.SetLineWidth(r.pt(gridWidth))
	for _, p := range pos {
		r.dc.DrawLine(r.px(p), r.py(0), r.px(p), r.py(sceneSize))
		r.dc.DrawLine(r.px(0), r.py(p), r.px(sceneSize), r.py(p))
	}
	r.dc.Stroke()
	return nil
}

// Corner accents: two perpendicular arms anchored near opposite corners.
type cornerMark struct {
	x, y, dx, dy float64
}

var cornerMarks = []cornerMark{
	{0.3, 0.3, 0.5, 0.5},
	{9.7, 9.7, -0.5, -0.5},
}

func (r *Renderer) strokeCorners() error {
	r.dc.SetRGBA(1, 1, 1, 0.2)
	r.dc.SetLineWidth(r.pt(3))
	r.dc.SetLineCap(gg.LineCapRound)
	for _, m := range cornerMarks {
		r.dc.DrawLine(r.px(m.x), r.py(m.y), r.px(m.x+m.dx), r.py(m.y))
		r.dc.DrawLine(r.px(m.x), r.py(m.y), r.px(m.x), r.py(m.y+m.dy))
	}
	r.dc.Stroke()
	return nil
}

const particleCount = 80

// drawParticles scatters the seeded dust layer. Positions, diameters (in
// points) and opacities are each drawn from rng as a full run before the
// next attribute.
func (r *Renderer) drawParticles() error {
	rng := rand.New(rand.NewSource(r.opt.ParticleSeed))
	xs := uniforms(rng, particleCount, 0, sceneSize)
	ys := uniforms(rng, particleCount, 0, sceneSize)
	sizes := uniforms(rng, particleCount, 1, 4)
	alphas := uniforms(rng, particleCount, 0.05, 0.15)
	for i := range particleCount {
		r.dc.SetRGBA(1, 1, 1, alphas[i])
		r.dc.DrawCircle(r.px(xs[i]), r.py(ys[i]), r.pt(sizes[i])/2)
		r.dc.Fill()
	}
	return nil
}
