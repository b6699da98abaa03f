package herobg

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// A positioned label in scene coordinates; size is in typographic points.
// The labels read as set math notation, so they use the italic face.
type annotation struct {
	text string
	x, y float64
	size float64
}

var annotations = []annotation{
	{"∇·u = 0", 1.2, 8.8, 16},
	{"∇²p = −ω²c⁻²p", 8.2, 1.5, 14},
	{"min J(m)", 8.5, 8.5, 16},
	{"g = ∇J", 1.5, 1.8, 14},
}

const annotationAlpha = 0.18

// The embedded font is parsed once for the process; faces still depend on
// the renderer's DPI, so they are built per render and shared per size.
var italicFont = sync.OnceValues(func() (*sfnt.Font, error) {
	return opentype.Parse(goitalic.TTF)
})

func (r *Renderer) drawAnnotations() error {
	ft, err := italicFont()
	if err != nil {
		return err
	}
	faces := make(map[float64]font.Face, len(annotations))
	defer func() {
		for _, f := range faces {
			f.Close()
		}
	}()
	r.dc.SetRGBA(1, 1, 1, annotationAlpha)
	for _, a := range annotations {
		face := faces[a.size]
		if face == nil {
			face, err = opentype.NewFace(ft, &opentype.FaceOptions{
				Size:    a.size,
				DPI:     r.opt.DPI,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return err
			}
			faces[a.size] = face
		}
		r.dc.SetFontFace(face)
		// Anchor at the left end of the baseline, like an axis label.
		r.dc.DrawStringAnchored(a.text, r.px(a.x), r.py(a.y), 0, 0)
	}
	return nil
}
