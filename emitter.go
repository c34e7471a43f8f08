package mipgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Emitter writes one launcher icon per density bucket and icon name
// into an Android resource tree.
type Emitter struct {
	// BaseDir is the resource tree root the mipmap directories are created under.
	BaseDir string
	// Names holds the emitted icon file names.
	Names []string
	// Renderer is the strategy producing the icon files.
	Renderer Renderer
	// Log receives one progress line per emitted file.
	Log io.Writer
}

// NewEmitter returns an Emitter covering the default icon names with
// the progress output wired to stdout.
func NewEmitter(baseDir string, r Renderer) *Emitter {
	return &Emitter{
		BaseDir:  baseDir,
		Names:    IconNames,
		Renderer: r,
		Log:      os.Stdout,
	}
}

// EmitAll generates every density and icon name combination
// sequentially, walking the density table in order and creating the
// mipmap directories as needed. Existing files are overwritten, so
// rerunning the generator converges to the same tree. It returns the
// number of emitted files. The first failure aborts the run, files
// written until then are left in place.
func (em *Emitter) EmitAll() (int, error) {
	var count int

	for _, d := range Densities {
		dir := filepath.Join(em.BaseDir, d.Dir())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return count, fmt.Errorf("unable to create the mipmap directory: %w", err)
		}

		for _, name := range em.Names {
			path := filepath.Join(dir, name)
			if err := em.emit(path, d.Size); err != nil {
				return count, err
			}
			count++

			if em.Log != nil {
				if em.Renderer.Name() == MinimalRenderer {
					fmt.Fprintf(em.Log, "Created minimal PNG: %s\n", path)
				} else {
					fmt.Fprintf(em.Log, "Created: %s\n", path)
				}
			}
		}
	}

	return count, nil
}

// emit renders a single icon file.
func (em *Emitter) emit(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the icon file: %w", err)
	}

	if err := em.Renderer.Render(f, size); err != nil {
		f.Close()
		return fmt.Errorf("unable to render %s: %w", path, err)
	}

	return f.Close()
}
