package mipgen

import "io"

// minimalPNG is a pre-encoded single pixel PNG written when the raster
// drawing path is left out of the build. The 68 byte sequence is frozen,
// checksum quirks included, so the emitted files stay byte for byte
// stable across releases. It must never be regenerated through an encoder.
var minimalPNG = []byte{
	// signature
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	// IHDR, 1x1 pixel, 8 bit truecolor
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
	0xde,
	// IDAT
	0x00, 0x00, 0x00, 0x0c, 0x49, 0x44, 0x41, 0x54,
	0x78, 0x9c, 0x63, 0xf8, 0x0f, 0x00, 0x00, 0x01,
	0x01, 0x00, 0x05, 0x18, 0x0d, 0x0a, 0x1d,
	// IEND
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44,
	0xae, 0x42, 0x60, 0x82,
}

// Minimal emits the fixed placeholder PNG regardless of the requested
// size. The undersized icon is still accepted by the Android resource
// compiler, which keeps the application buildable until real icons are
// dropped in.
type Minimal struct{}

// Name returns the strategy name.
func (m *Minimal) Name() string {
	return MinimalRenderer
}

// Render writes the placeholder bytes into w. The size argument is ignored.
func (m *Minimal) Render(w io.Writer, size int) error {
	_, err := w.Write(minimalPNG)
	return err
}
