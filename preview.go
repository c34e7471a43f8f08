package mipgen

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/droidres/mipgen/utils"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// ShowPreview spawns a Gio window displaying the generated launcher
// icon. It blocks until the window is closed or ESC is pressed, so it
// is expected to run on its own goroutine while app.Main holds the
// main thread.
func ShowPreview(img image.Image) error {
	bounds := img.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())

	// Retain the image aspect ratio in case it exceeds the predefined window.
	if width > maxScreenX && height > maxScreenY {
		ratio := utils.Min(maxScreenX/width, maxScreenY/height)
		width *= ratio
		height *= ratio
	}

	w := app.NewWindow(
		app.Title("Launcher icon preview"),
		app.Size(unit.Dp(width), unit.Dp(height)),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			key.InputOp{Tag: w, Keys: key.NameEscape}.Add(gtx.Ops)
			for _, ev := range gtx.Events(w) {
				if ke, ok := ev.(key.Event); ok && ke.Name == key.NameEscape {
					w.Perform(system.ActionClose)
				}
			}

			widget.Image{
				Src:      paint.NewImageOp(img),
				Fit:      widget.Contain,
				Position: layout.Center,
				Scale:    1,
			}.Layout(gtx)

			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}

	return nil
}
