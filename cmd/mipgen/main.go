package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/droidres/mipgen"
	"github.com/droidres/mipgen/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬┌─┐┌─┐┌─┐┌┐┌
│││││├─┘│ ┬├┤ │││
┴ ┴┴┴  └─┘└─┘┘└┘

Android launcher icon placeholder generator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir  = flag.String("out", mipgen.DefaultResDir, "Resource directory the mipmap folders are written into")
	source  = flag.String("src", "", "Master image to rescale instead of drawing the icon (file, URL or - for stdin)")
	label   = flag.Bool("label", false, "Stamp the pixel size onto the drawn icons")
	preview = flag.Bool("preview", false, "Show the biggest generated icon in a window")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	renderer := newRenderer()

	fmt.Println("Generating Android app icons...")
	if renderer.Name() == mipgen.MinimalRenderer {
		fmt.Println(utils.DecorateText("Raster drawing is not compiled in. Minimal placeholder files will be created.", utils.StatusMessage))
	}

	now := time.Now()

	em := mipgen.NewEmitter(*outDir, renderer)
	count, err := em.EmitAll()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the launcher icons: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Printf("\n%s %s\n",
		utils.DecorateText("✓ Icon generation complete!", utils.SuccessMessage),
		fmt.Sprintf("(%d files in %s)", count, utils.FormatTime(time.Since(now))),
	)

	if renderer.Name() == mipgen.MinimalRenderer {
		fmt.Println("\nNote: minimal placeholder icons were created.")
		fmt.Println("For drawn icons rebuild the binary without the minimal build tag and run it again.")
	}

	if *preview {
		showPreview(renderer)
	}
}

// newRenderer resolves the rendering strategy for this run. The built-in
// drawing is replaced by the rescaling renderer when a master image is
// provided.
func newRenderer() mipgen.Renderer {
	if *source == "" {
		r := mipgen.NewRenderer()
		if raster, ok := r.(*mipgen.Raster); ok {
			raster.Label = *label
		}
		return r
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ MIPGEN", utils.StatusMessage),
		utils.DecorateText("is loading the master image...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*100, true)

	// Capture the CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	spinner.Start()
	img, err := loadMasterImage(*source)
	spinner.Stop()

	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the master image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	return mipgen.NewScaler(img)
}

// loadMasterImage reads the master image from a local file, an URL or a stdin pipe.
func loadMasterImage(src string) (image.Image, error) {
	if utils.IsValidUrl(src) {
		tmp, err := utils.DownloadImage(src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
			defer tmp.Close()
		}
		if err != nil {
			return nil, err
		}
		return mipgen.DecodeImage(tmp.Name())
	}

	if src == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return mipgen.DecodeReader(os.Stdin)
	}

	return mipgen.DecodeImage(src)
}

// showPreview displays the biggest generated icon until the window is
// closed or ESC is pressed.
func showPreview(r mipgen.Renderer) {
	imgr, ok := r.(mipgen.Imager)
	if !ok {
		fmt.Println(utils.DecorateText("The preview is not available for minimal placeholder icons.", utils.StatusMessage))
		return
	}

	img, err := imgr.Image(mipgen.MaxDensity().Size)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to render the preview image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	go func() {
		if err := mipgen.ShowPreview(img); err != nil {
			log.Fatalf(
				utils.DecorateText("Preview window error: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		os.Exit(0)
	}()
	app.Main()
}
