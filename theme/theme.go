// Package theme derives website theme colors from a rendered hero background:
// one background color plus a set of accent colors, ordered dark to bright.
package theme

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type Method int

const (
	// MethodDominant ranks colors by pixel population.
	MethodDominant Method = iota
	// MethodKMeans clusters subsampled pixels in RGB space. Slower, but
	// tends to find smoother mid tones on gradient-heavy images.
	MethodKMeans
)

func (m Method) String() string {
	if m == MethodKMeans {
		return "kmeans"
	}
	return "dominant"
}

// Theme is a background color plus accents, all ordered dark to bright. The
// background is always the darkest extracted color.
type Theme struct {
	Background colorful.Color
	Accents    []colorful.Color
}

type candidate struct {
	col    colorful.Color
	weight float64
}

// Extract pulls accents+1 distinct colors from img. Fully transparent pixels
// are ignored; pass a flattened image if the render has transparent margins.
func Extract(img image.Image, accents int, method Method) (Theme, error) {
	if accents < 1 {
		return Theme{}, fmt.Errorf("theme: accents must be at least 1, got %d", accents)
	}
	want := accents + 1

	var cands []candidate
	var err error
	switch method {
	case MethodKMeans:
		cands, err = kmeansCandidates(img, want*4)
	default:
		cands = dominantCandidates(img, want*8)
	}
	if err != nil {
		return Theme{}, err
	}
	if len(cands) < want {
		return Theme{}, errors.New("theme: not enough distinct colors in image")
	}

	picked := pickDistinct(cands, want)
	slices.SortFunc(picked, func(a, b colorful.Color) int {
		la, _, _ := a.Lab()
		lb, _, _ := b.Lab()
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
	return Theme{Background: picked[0], Accents: picked[1:]}, nil
}

func dominantCandidates(img image.Image, n int) []candidate {
	found := dominantcolor.FindWeight(img, n)
	cands := make([]candidate, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, candidate{col: col.Clamped(), weight: math.Max(c.Weight, 1e-6)})
	}
	return cands
}

func kmeansCandidates(img image.Image, k int) ([]candidate, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("theme: empty image")
	}

	// Subsample to keep the clustering tractable on large renders.
	const maxSamples = 12000
	step := 1
	if area := b.Dx() * b.Dy(); area > maxSamples {
		step = int(math.Sqrt(float64(area)/maxSamples)) + 1
	}
	dataset := make(clusters.Observations, 0, maxSamples)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, errors.New("theme: image is fully transparent")
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("theme: kmeans: %w", err)
	}
	cands := make([]candidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		cands = append(cands, candidate{col: col, weight: float64(len(c.Observations))})
	}
	return cands, nil
}

// pickDistinct greedily selects n candidates, seeding with the heaviest and
// then maximizing Lab-space distance from the picks so far, biased toward
// well-populated colors.
func pickDistinct(cands []candidate, n int) []colorful.Color {
	if n > len(cands) {
		n = len(cands)
	}
	maxW := 0.0
	for _, c := range cands {
		maxW = math.Max(maxW, c.weight)
	}
	if maxW == 0 {
		maxW = 1
	}

	seed := 0
	for i, c := range cands {
		if c.weight > cands[seed].weight {
			seed = i
		}
	}
	picked := []colorful.Color{cands[seed].col}
	used := make([]bool, len(cands))
	used[seed] = true

	for len(picked) < n {
		best, bestScore := -1, -1.0
		for i, c := range cands {
			if used[i] {
				continue
			}
			nearest := math.MaxFloat64
			for _, p := range picked {
				nearest = math.Min(nearest, c.col.DistanceLab(p))
			}
			score := nearest * (0.5 + 0.5*math.Sqrt(c.weight/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, cands[best].col)
	}
	return picked
}

// Swatch renders the theme as a horizontal strip of square tiles, background
// first.
func Swatch(t Theme, tile int) *image.RGBA {
	if tile <= 0 {
		tile = 64
	}
	cols := append([]colorful.Color{t.Background}, t.Accents...)
	img := image.NewRGBA(image.Rect(0, 0, tile*len(cols), tile))
	for i, c := range cols {
		r, g, b := c.RGB255()
		fill := color.RGBA{R: r, G: g, B: b, A: 255}
		for y := range tile {
			for x := i * tile; x < (i+1)*tile; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// CSS renders the theme as CSS custom properties for a hero section.
func (t Theme) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --hero-background: %s;\n", t.Background.Hex())
	for i, c := range t.Accents {
		fmt.Fprintf(&b, "  --hero-accent-%d: %s;\n", i+1, c.Hex())
	}
	b.WriteString("}\n")
	return b.String()
}
