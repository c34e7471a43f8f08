package mipgen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/droidres/mipgen/compose"
	"github.com/droidres/mipgen/utils"
)

// The fixed icon palette.
const (
	backgroundColor = "#3DDC84"
	plateColor      = "#FFFFFF"
	crossColor      = "#FF5252"
)

// Raster draws the health themed launcher icon: a white disc on the
// brand green background plate with a red cross on top. The proportions
// are relative to the icon size, so every density bucket receives the
// same motif.
type Raster struct {
	// Label stamps the pixel size near the bottom edge when enabled.
	Label bool
}

// Name returns the strategy name.
func (r *Raster) Name() string {
	return RasterRenderer
}

// Image draws the icon at the requested square size.
// The disc radius is a third of the icon size, the cross bars span half
// of the icon with an eighth of it as their thickness, all centered.
func (r *Raster) Image(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %v", size)
	}

	var (
		rect   = image.Rect(0, 0, size, size)
		cx, cy = size / 2, size / 2
		op     = compose.InitOp()
	)

	// Background plate.
	base := image.NewNRGBA(rect)
	draw.Draw(base, rect, &image.Uniform{utils.HexToRGBA(backgroundColor)}, image.Point{}, draw.Src)

	// The disc and the cross are drawn on transparent overlays and
	// flattened with the src-over operation. The layers are binary
	// alpha, compositing does not shift their colors.
	disc := image.NewNRGBA(rect)
	fillCircle(disc, cx, cy, size/3, utils.HexToRGBA(plateColor))

	flat := compose.NewBitmap(rect)
	op.Draw(flat, disc, base)

	cross := image.NewNRGBA(rect)
	red := utils.HexToRGBA(crossColor)
	width, length := size/8, size/2
	vertical := image.Rect(cx-width/2, cy-length/2, cx-width/2+width, cy-length/2+length)
	horizontal := image.Rect(cx-length/2, cy-width/2, cx-length/2+length, cy-width/2+width)
	draw.Draw(cross, vertical, &image.Uniform{red}, image.Point{}, draw.Src)
	draw.Draw(cross, horizontal, &image.Uniform{red}, image.Point{}, draw.Src)

	icon := compose.NewBitmap(rect)
	op.Draw(icon, cross, flat.Img)

	if r.Label {
		stampLabel(icon.Img, strconv.Itoa(size))
	}

	return icon.Img, nil
}

// Render encodes the icon into w in PNG format.
func (r *Raster) Render(w io.Writer, size int) error {
	img, err := r.Image(size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// fillCircle draws a filled circle onto img without anti-aliasing:
// a pixel is painted when its center falls inside the radius.
func fillCircle(img *image.NRGBA, cx, cy, r int, col color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}
