//go:build !minimal

package mipgen

// RasterAvailable reports whether the drawing path was selected at build time.
const RasterAvailable = true

// NewRenderer returns the rendering strategy the binary was built with.
func NewRenderer() Renderer {
	return &Raster{}
}
