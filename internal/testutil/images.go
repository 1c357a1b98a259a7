// Package testutil generates image fixtures for tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// Gradient returns a smooth RGB gradient.
func Gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// Photo returns a gradient with seeded grain, closer to photographic content
// than a flat gradient when comparing encoded sizes.
func Photo(width, height int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := Gradient(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := int(img.Pix[i+c]) + rng.Intn(49) - 24
			img.Pix[i+c] = uint8(max(0, min(255, v)))
		}
	}
	return img
}

func EncodePNG(tb testing.TB, img image.Image) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func EncodeJPEG(tb testing.TB, img image.Image, quality int) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		tb.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data under a fresh temp dir and returns the path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write fixture: %v", err)
	}
	return path
}

// WritePNG writes a PNG fixture. The name may use any extension since
// loading sniffs content.
func WritePNG(tb testing.TB, name string, img image.Image) string {
	tb.Helper()
	return WriteFile(tb, name, EncodePNG(tb, img))
}
