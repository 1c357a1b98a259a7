package models

import (
	"fmt"
	"image"
	"math"
	"time"
)

// SourceImage is the decoded original. It is replaced wholesale on every load
// and never mutated.
type SourceImage struct {
	Image    image.Image
	Name     string
	Format   string
	Width    int
	Height   int
	FileSize int64
	Digest   string
}

// EncodedResult is the JPEG produced for one (source, quality) pair.
type EncodedResult struct {
	Data         []byte
	Quality      float64
	SourceDigest string
	Digest       string
	EncodeTime   time.Duration
}

// Len returns the encoded size in bytes.
func (r *EncodedResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Data)
}

// KB is the display size: integer division by 1000, not 1024.
func (r *EncodedResult) KB() int {
	return r.Len() / 1000
}

// PreviewBitmap is the decoded, viewport-fitted rendering of an EncodedResult.
type PreviewBitmap struct {
	Image          image.Image
	Width          int
	Height         int
	ViewportWidth  int
	ViewportHeight int
}

// SizeLabel renders the status text for the latest result.
func SizeLabel(r *EncodedResult) string {
	if r == nil {
		return "Image size: N/A"
	}
	return fmt.Sprintf("Image size: %dKB", r.KB())
}

// ClampQuality forces q into [0,1]; NaN becomes 0.
func ClampQuality(q float64) float64 {
	switch {
	case math.IsNaN(q) || q < 0:
		return 0
	case q > 1:
		return 1
	default:
		return q
	}
}

// CodecQuality maps a normalized quality linearly onto the 0-100 codec scale.
func CodecQuality(q float64) int {
	return int(math.Round(ClampQuality(q) * 100))
}
