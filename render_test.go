package mipgen

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	iconGreen = color.NRGBA{R: 0x3d, G: 0xdc, B: 0x84, A: 0xff}
	iconWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	iconRed   = color.NRGBA{R: 0xff, G: 0x52, B: 0x52, A: 0xff}
)

func TestRaster_IconGeometry(t *testing.T) {
	assert := assert.New(t)

	r := &Raster{}
	img, err := r.Image(192)
	assert.NoError(err)
	assert.Equal(192, img.Bounds().Dx())
	assert.Equal(192, img.Bounds().Dy())

	// The center lies on the cross.
	assert.EqualValues(iconRed, img.NRGBAAt(96, 96))

	// Above the disc and outside the cross bars only the background is visible.
	assert.EqualValues(iconGreen, img.NRGBAAt(96, 20))

	// The corners stay on the background plate.
	assert.EqualValues(iconGreen, img.NRGBAAt(0, 0))
	assert.EqualValues(iconGreen, img.NRGBAAt(191, 0))
	assert.EqualValues(iconGreen, img.NRGBAAt(0, 191))
	assert.EqualValues(iconGreen, img.NRGBAAt(191, 191))

	// Inside the disc but outside the cross the plate is white.
	assert.EqualValues(iconWhite, img.NRGBAAt(60, 60))
	assert.EqualValues(iconWhite, img.NRGBAAt(132, 132))

	// The cross bars span half of the icon size, centered.
	assert.EqualValues(iconRed, img.NRGBAAt(96, 48))  // top end of the vertical bar
	assert.EqualValues(iconRed, img.NRGBAAt(96, 143)) // bottom end of the vertical bar
	assert.EqualValues(iconRed, img.NRGBAAt(48, 96))   // left end of the horizontal bar
	assert.EqualValues(iconWhite, img.NRGBAAt(96, 47)) // the disc shows right above the bar
	assert.EqualValues(iconWhite, img.NRGBAAt(96, 144))
}

func TestRaster_RenderedSizes(t *testing.T) {
	assert := assert.New(t)
	r := &Raster{}

	for _, d := range Densities {
		var buf bytes.Buffer
		err := r.Render(&buf, d.Size)
		assert.NoError(err)

		img, err := png.Decode(&buf)
		assert.NoError(err)
		assert.Equal(d.Size, img.Bounds().Dx(), d.Name)
		assert.Equal(d.Size, img.Bounds().Dy(), d.Name)
	}
}

func TestRaster_Deterministic(t *testing.T) {
	assert := assert.New(t)
	r := &Raster{}

	var first, second bytes.Buffer
	assert.NoError(r.Render(&first, 96))
	assert.NoError(r.Render(&second, 96))
	assert.Equal(first.Bytes(), second.Bytes())
}

func TestRaster_InvalidSize(t *testing.T) {
	assert := assert.New(t)
	r := &Raster{}

	_, err := r.Image(0)
	assert.Error(err)

	err = r.Render(&bytes.Buffer{}, -48)
	assert.Error(err)
}

func TestRaster_Label(t *testing.T) {
	assert := assert.New(t)

	plain, err := (&Raster{}).Image(48)
	assert.NoError(err)
	labeled, err := (&Raster{Label: true}).Image(48)
	assert.NoError(err)

	// The stamped label must alter the bottom edge without touching
	// the upper half of the icon.
	assert.NotEqual(plain.Pix, labeled.Pix)

	half := 48 * labeled.Stride / 2
	assert.Equal(plain.Pix[:half], labeled.Pix[:half])
}
