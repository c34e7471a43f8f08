package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// samplePNG encodes a small uniform image used as download payload.
func samplePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 0xff
	}
	img.Set(1, 1, color.NRGBA{R: 0x3d, G: 0xdc, B: 0x84, A: 0xff})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode the sample image: %v", err)
	}
	return buf.Bytes()
}

func TestUtils_ShouldDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(samplePNG(t))
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL)
	if err != nil {
		t.Fatalf("couldn't download test file: %v", err)
	}
	defer os.Remove(f.Name())

	if !strings.Contains(f.Name(), "image") {
		t.Errorf("The downloaded image should have been saved in a temporary file")
	}
}

func TestUtils_ShouldRejectNonImageDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL)
	if f != nil {
		defer os.Remove(f.Name())
	}
	if err == nil {
		t.Errorf("Downloading a non image file should have been rejected")
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://github.com/droidres/mipgen/")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}

	ok = IsValidUrl("app/src/main/res")
	if ok {
		t.Errorf("A plain file path should not be reported as a valid URL")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleImg := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(sampleImg, samplePNG(t), 0644); err != nil {
		t.Fatalf("could not write the sample image: %v", err)
	}

	ftype, err := DetectContentType(sampleImg)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype.(string), "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}
