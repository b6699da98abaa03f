package herobg

import (
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"
)

// One stroked sinusoid: y = offset + 1.2*sin(freq*t+phase) + 0.3*sin(2*freq*t)
// over t in [0, 10]. width is in typographic points.
type waveConfig struct {
	freq, phase, alpha, width, offset float64
}

var waveConfigs = []waveConfig{
	{1.8, 0, 0.20, 2.5, 5.0},
	{2.4, math.Pi / 3, 0.18, 2.0, 4.5},
	{3.2, math.Pi / 2, 0.15, 1.8, 5.5},
	{2.0, math.Pi, 0.12, 2.2, 6.0},
	{3.8, 3 * math.Pi / 4, 0.10, 1.5, 4.0},
}

const waveSamples = 2000

func (r *Renderer) strokeWaves() error {
	t := floats.Span(make([]float64, waveSamples), 0, sceneSize)
	r.dc.SetLineCap(gg.LineCapRound)
	for _, w := range waveConfigs {
		r.dc.SetRGBA(1, 1, 1, w.alpha)
		r.dc.SetLineWidth(r.pt(w.width))
		for i, tv := range t {
			y := w.offset + 1.2*math.Sin(w.freq*tv+w.phase) + 0.3*math.Sin(2*w.freq*tv)
			if i == 0 {
				r.dc.MoveTo(r.px(tv), r.py(y))
			} else {
				r.dc.LineTo(r.px(tv), r.py(y))
			}
		}
		r.dc.Stroke()
	}
	return nil
}
