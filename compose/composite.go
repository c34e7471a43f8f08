// Package compose implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operations,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// The icon rasterizer relies on it to flatten the shape layers onto the
// background plate without altering the layer colors.
package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/droidres/mipgen/utils"
)

// The supported composition operations.
const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the composition result.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new Bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite operator with SrcOver as the default operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %v", cop)
	}
	op.current = cop

	return nil
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw applies the active composition operation over the source and
// backdrop image and stores the result into the destination bitmap.
// The general Porter-Duff equation operates on premultiplied components:
//
//	co = Cs x Fa + Cb x Fb
//	ao = as x Fa + ab x Fb
//
// where the Fa and Fb factors depend on the active operation.
func (op *Composite) Draw(bitmap *Bitmap, src, backdrop *image.NRGBA) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			csr, csg, csb, csa := normalize(src.At(x, y))
			cbr, cbg, cbb, cba := normalize(backdrop.At(x, y))

			var fa, fb float64
			switch op.current {
			case Clear:
				fa, fb = 0, 0
			case Copy:
				fa, fb = 1, 0
			case Dst:
				fa, fb = 0, 1
			case SrcOver:
				fa, fb = 1, 1-csa
			case DstOver:
				fa, fb = 1-cba, 1
			case SrcIn:
				fa, fb = cba, 0
			case DstIn:
				fa, fb = 0, csa
			case SrcOut:
				fa, fb = 1-cba, 0
			case DstOut:
				fa, fb = 0, 1-csa
			case SrcAtop:
				fa, fb = cba, 1-csa
			case DstAtop:
				fa, fb = 1-cba, csa
			case Xor:
				fa, fb = 1-cba, 1-csa
			}

			co := [3]float64{
				csr*fa + cbr*fb,
				csg*fa + cbg*fb,
				csb*fa + cbb*fb,
			}
			ao := csa*fa + cba*fb

			// Convert the premultiplied result back to straight alpha.
			var col color.NRGBA
			if ao > 0 {
				col = color.NRGBA{
					R: uint8(math.Round(co[0] / ao * 255)),
					G: uint8(math.Round(co[1] / ao * 255)),
					B: uint8(math.Round(co[2] / ao * 255)),
					A: uint8(math.Round(ao * 255)),
				}
			}
			bitmap.Img.SetNRGBA(x, y, col)
		}
	}
}

// normalize returns the premultiplied color components of a pixel scaled to the [0, 1] interval.
func normalize(c color.Color) (r, g, b, a float64) {
	cr, cg, cb, ca := c.RGBA()

	r = float64(cr>>8) / 255
	g = float64(cg>>8) / 255
	b = float64(cb>>8) / 255
	a = float64(ca>>8) / 255

	return r, g, b, a
}
