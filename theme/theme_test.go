package theme

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// blocksImage paints vertical bands of the given colors.
func blocksImage(w, h int, cols ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	band := w / len(cols)
	for y := range h {
		for x := range w {
			i := min(x/band, len(cols)-1)
			img.SetRGBA(x, y, cols[i])
		}
	}
	return img
}

// noisyImage jitters pixels around two well separated colors.
func noisyImage(w, h int) *image.RGBA {
	rng := rand.New(rand.NewSource(7))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			jitter := uint8(rng.Intn(24))
			if x < w/2 {
				img.SetRGBA(x, y, color.RGBA{R: 20 + jitter, G: 40 + jitter, B: 160 + jitter, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 220 - jitter, G: 200 - jitter, B: 80 + jitter, A: 255})
			}
		}
	}
	return img
}

func assertDarkToBright(t *testing.T, th Theme) {
	t.Helper()
	prev, _, _ := th.Background.Lab()
	for i, c := range th.Accents {
		l, _, _ := c.Lab()
		if l < prev {
			t.Errorf("accent %d is darker than the color before it", i+1)
		}
		prev = l
	}
}

func TestExtractDominant(t *testing.T) {
	img := blocksImage(90, 30,
		color.RGBA{R: 10, G: 10, B: 40, A: 255},
		color.RGBA{R: 200, G: 40, B: 40, A: 255},
		color.RGBA{R: 240, G: 240, B: 200, A: 255},
	)
	th, err := Extract(img, 1, MethodDominant)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(th.Accents) != 1 {
		t.Fatalf("got %d accents, want 1", len(th.Accents))
	}
	assertDarkToBright(t, th)
}

func TestExtractKMeans(t *testing.T) {
	th, err := Extract(noisyImage(64, 64), 3, MethodKMeans)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(th.Accents) != 3 {
		t.Fatalf("got %d accents, want 3", len(th.Accents))
	}
	assertDarkToBright(t, th)
}

func TestExtractRejectsBadAccentCount(t *testing.T) {
	if _, err := Extract(noisyImage(16, 16), 0, MethodDominant); err == nil {
		t.Error("expected error for zero accents")
	}
}

func TestExtractKMeansSkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16)) // fully transparent
	if _, err := Extract(img, 2, MethodKMeans); err == nil {
		t.Error("expected error for a fully transparent image")
	}
}

func TestPickDistinctPrefersSpread(t *testing.T) {
	cands := []candidate{
		{col: colorful.Color{R: 0.1, G: 0.1, B: 0.5}, weight: 10},
		{col: colorful.Color{R: 0.11, G: 0.1, B: 0.5}, weight: 9},
		{col: colorful.Color{R: 0.9, G: 0.9, B: 0.2}, weight: 2},
	}
	picked := pickDistinct(cands, 2)
	if len(picked) != 2 {
		t.Fatalf("got %d picks, want 2", len(picked))
	}
	if picked[1] != cands[2].col {
		t.Errorf("second pick %v, want the far yellow %v over the near-duplicate blue", picked[1], cands[2].col)
	}
}

func TestSwatch(t *testing.T) {
	th := Theme{
		Background: colorful.Color{R: 0.1, G: 0.2, B: 0.7},
		Accents: []colorful.Color{
			{R: 0.2, G: 0.5, B: 0.9},
			{R: 0.9, G: 0.9, B: 0.9},
		},
	}
	img := Swatch(th, 8)
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 8 {
		t.Fatalf("swatch is %dx%d, want 24x8", b.Dx(), b.Dy())
	}
	r, g, b := th.Background.RGB255()
	if got := img.RGBAAt(4, 4); got != (color.RGBA{R: r, G: g, B: b, A: 255}) {
		t.Errorf("first tile is %v, want background color", got)
	}
}

func TestCSS(t *testing.T) {
	th := Theme{
		Background: colorful.Color{R: 0, G: 0, B: 1},
		Accents:    []colorful.Color{{R: 1, G: 1, B: 1}},
	}
	css := th.CSS()
	if !strings.Contains(css, "--hero-background: #0000ff;") {
		t.Errorf("CSS missing background variable:\n%s", css)
	}
	if !strings.Contains(css, "--hero-accent-1: #ffffff;") {
		t.Errorf("CSS missing accent variable:\n%s", css)
	}
}

func TestMethodString(t *testing.T) {
	if MethodDominant.String() != "dominant" || MethodKMeans.String() != "kmeans" {
		t.Errorf("unexpected method names: %q, %q", MethodDominant.String(), MethodKMeans.String())
	}
}
