package codec

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Filter names a resampling kernel.
type Filter string

const (
	// FilterArea averages every source pixel under the destination pixel.
	FilterArea    Filter = "area"
	FilterLanczos Filter = "lanczos"
)

// Filters picks a kernel by scale direction. Area averaging only has
// something to average when shrinking; enlarging uses Up.
type Filters struct {
	Down Filter
	Up   Filter
}

// DefaultFilters is area averaging for reduction and Lanczos for enlargement.
var DefaultFilters = Filters{Down: FilterArea, Up: FilterLanczos}

// ParseFilters parses the downscale and upscale kernel names. Empty names
// fall back to DefaultFilters.
func ParseFilters(down, up string) (Filters, error) {
	d, err := parseFilter(down, DefaultFilters.Down)
	if err != nil {
		return Filters{}, err
	}
	u, err := parseFilter(up, DefaultFilters.Up)
	if err != nil {
		return Filters{}, err
	}
	return Filters{Down: d, Up: u}, nil
}

func parseFilter(s string, fallback Filter) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterArea, FilterLanczos:
		return f, nil
	case "":
		return fallback, nil
	default:
		return "", fmt.Errorf("unknown resample filter %q", s)
	}
}

// For returns the kernel for scaling src to width x height. A target that
// grows in either dimension counts as enlargement.
func (f Filters) For(src image.Rectangle, width, height int) Filter {
	if enlarges(src, width, height) {
		return f.Up
	}
	return f.Down
}

func enlarges(src image.Rectangle, width, height int) bool {
	return width > src.Dx() || height > src.Dy()
}

// resample scales img to width x height with the pure Go kernels.
func resample(img image.Image, width, height int, filter Filter) image.Image {
	switch filter {
	case FilterLanczos:
		return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	default:
		// imaging widens the box support by the scale factor on downscale,
		// which makes it an area average.
		return imaging.Resize(img, width, height, imaging.Box)
	}
}
