package herobg

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// The gradient is computed on a coarse grid and upscaled bilinearly; the
// analytic fields below vary slowly enough that 200 samples per axis are
// indistinguishable from per-pixel evaluation.
const gradientGrid = 200

var (
	gradientDark  = colorful.Color{R: 25.0 / 255, G: 55.0 / 255, B: 180.0 / 255}
	gradientLight = colorful.Color{R: 14.0 / 255, G: 165.0 / 255, B: 233.0 / 255}
)

// Radial darkening center, in normalized grid coordinates (row 0 is the top
// of the scene square).
const (
	radialCX = 0.3
	radialCY = 0.6
)

// paintGradient fills the scene square with the opaque background: a vertical
// dark-to-light blend, attenuated per channel toward the right, with a soft
// radial dip for depth.
func (r *Renderer) paintGradient() error {
	n := gradientGrid
	grid := image.NewNRGBA(image.Rect(0, 0, n, n))
	for row := range n {
		fy := float64(row) / float64(n-1)
		c := gradientDark.BlendRgb(gradientLight, fy)
		for col := range n {
			fx := float64(col) / float64(n-1)
			cr := c.R * (1 - 0.2*fx)
			cg := c.G * (1 - 0.15*fx)
			cb := c.B * (1 - 0.1*fx)

			d := math.Hypot(fx-radialCX, fy-radialCY)
			f := 1 - 0.15*math.Exp(-d*3)

			off := grid.PixOffset(col, row)
			grid.Pix[off+0] = uint8(cr*f*255 + 0.5)
			grid.Pix[off+1] = uint8(cg*f*255 + 0.5)
			grid.Pix[off+2] = uint8(cb*f*255 + 0.5)
			grid.Pix[off+3] = 0xff
		}
	}

	side := int(math.Round(r.scale * sceneSize))
	full := image.NewNRGBA(image.Rect(0, 0, side, side))
	xdraw.BiLinear.Scale(full, full.Bounds(), grid, grid.Bounds(), xdraw.Src, nil)
	r.dc.DrawImage(full, int(math.Round(r.ox)), int(math.Round(r.oy)))
	return nil
}
