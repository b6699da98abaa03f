package herobg

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/fogleman/gg"
)

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func SaveJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
}

// Flatten composites img over an opaque fill, for encoders without an alpha
// channel.
func Flatten(img image.Image, fill color.Color) image.Image {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(fill)
	dc.Clear()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
