package herobg

import (
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Quiver styling: shaft width and arrow scale are fractions of the scene
// width, head sizes are multiples of the shaft width.
const (
	fieldGridN     = 12
	fieldGridMin   = 0.8
	fieldGridMax   = 9.2
	fieldAlpha     = 0.15
	fieldShaftFrac = 0.004
	fieldScale     = 12.0
	fieldHeadWidth = 3.5
	fieldHeadLen   = 4.5
)

// flowField samples the vortex-plus-sink velocity field on an n×n grid
// spanning [lo,hi] on both axes. Rows of u and v index y, columns index x.
// The swirl circulates counterclockwise around (5,5) and decays with radius;
// the sink term pulls uniformly toward the center.
func flowField(n int, lo, hi float64) (xs []float64, u, v *mat.Dense) {
	xs = floats.Span(make([]float64, n), lo, hi)
	u = mat.NewDense(n, n, nil)
	v = mat.NewDense(n, n, nil)
	const cx, cy = 5.0, 5.0
	for i, y := range xs {
		for j, x := range xs {
			dx := x - cx
			dy := y - cy
			rr := math.Hypot(dx, dy) + 0.1
			swirl := math.Exp(-rr / 4)
			u.Set(i, j, -dy/rr*swirl-0.15*dx)
			v.Set(i, j, dx/rr*swirl-0.15*dy)
		}
	}
	return xs, u, v
}

func (r *Renderer) drawFlowField() error {
	xs, u, v := flowField(fieldGridN, fieldGridMin, fieldGridMax)
	shaft := fieldShaftFrac * sceneSize // scene units
	r.dc.SetRGBA(1, 1, 1, fieldAlpha)
	r.dc.SetLineCap(gg.LineCapButt)
	r.dc.SetLineWidth(shaft * r.scale)
	for i, y := range xs {
		for j, x := range xs {
			r.drawArrow(x, y, u.At(i, j), v.At(i, j), shaft)
		}
	}
	return nil
}

// drawArrow renders one arrow pivoted at its tail, in scene units: a stroked
// shaft and a filled triangular head. Arrow length is magnitude/fieldScale
// scene widths; heads shrink when the shaft is shorter than the head.
func (r *Renderer) drawArrow(x, y, u, v, shaft float64) {
	mag := math.Hypot(u, v)
	if mag == 0 {
		return
	}
	length := mag / fieldScale * sceneSize
	ux, uy := u/mag, v/mag
	headLen := math.Min(fieldHeadLen*shaft, length)
	headW := fieldHeadWidth * shaft

	tipX, tipY := x+ux*length, y+uy*length
	baseX, baseY := tipX-ux*headLen, tipY-uy*headLen
	if length > headLen {
		r.dc.DrawLine(r.px(x), r.py(y), r.px(baseX), r.py(baseY))
		r.dc.Stroke()
	}

	wx, wy := -uy*headW/2, ux*headW/2
	r.dc.MoveTo(r.px(tipX), r.py(tipY))
	r.dc.LineTo(r.px(baseX+wx), r.py(baseY+wy))
	r.dc.LineTo(r.px(baseX-wx), r.py(baseY-wy))
	r.dc.ClosePath()
	r.dc.Fill()
}
