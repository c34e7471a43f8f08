//go:build minimal

package mipgen

// RasterAvailable reports whether the drawing path was selected at build time.
const RasterAvailable = false

// NewRenderer returns the rendering strategy the binary was built with.
// Minimal builds leave the drawing path unused and fall back to the
// pre-encoded placeholder icon.
func NewRenderer() Renderer {
	return &Minimal{}
}
