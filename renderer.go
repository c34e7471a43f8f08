package mipgen

import (
	"image"
	"io"
)

// The strategy names as reported by Renderer.Name.
const (
	RasterRenderer  = "raster"
	MinimalRenderer = "minimal"
	ScalerRenderer  = "scale"
)

// Renderer produces launcher icons of a requested square size.
// The active implementation is resolved once at startup and is used
// for every output file of the run.
type Renderer interface {
	// Render encodes the icon into w.
	Render(w io.Writer, size int) error
	// Name returns the short strategy name.
	Name() string
}

// Imager is implemented by the renderers able to expose the icon as an
// in-memory image. The preview window relies on it, the minimal
// placeholder strategy deliberately does not satisfy it.
type Imager interface {
	Image(size int) (*image.NRGBA, error)
}
