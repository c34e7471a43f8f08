package mipgen

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stampLabel draws the label centered near the bottom edge of the icon.
// The fixed 7x13 face stays legible even on the smallest density bucket.
func stampLabel(img *image.NRGBA, label string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		Face: basicfont.Face7x13,
	}

	b := img.Bounds()
	d.Dot = fixed.Point26_6{
		X: (fixed.I(b.Dx()) - d.MeasureString(label)) / 2,
		Y: fixed.I(b.Dy() - 4),
	}
	d.DrawString(label)
}
