package mipgen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Scaler resamples a user provided master image to every requested icon
// size. The aspect ratio is preserved, the remainder of the quadratic
// canvas stays transparent. Masters smaller than the target size are
// centered without upscaling.
type Scaler struct {
	src *image.NRGBA
}

// NewScaler returns a Scaler rendering scaled down copies of img.
func NewScaler(img image.Image) *Scaler {
	return &Scaler{src: imgToNRGBA(img)}
}

// Name returns the strategy name.
func (s *Scaler) Name() string {
	return ScalerRenderer
}

// Image resamples the master image into a size x size canvas.
func (s *Scaler) Image(size int) (*image.NRGBA, error) {
	if s.src == nil {
		return nil, errors.New("no master image was provided")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %v", size)
	}

	fitted := imaging.Fit(s.src, size, size, imaging.Lanczos)
	canvas := imaging.New(size, size, color.NRGBA{})

	return imaging.PasteCenter(canvas, fitted), nil
}

// Render encodes the rescaled master into w in PNG format.
func (s *Scaler) Render(w io.Writer, size int) error {
	img, err := s.Image(size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
