// Package codec provides the image decode, JPEG encode and resample
// collaborators the compression pipeline calls into.
package codec

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnsupportedFormat is returned when bytes do not decode as any registered format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrUnknownBackend    = errors.New("unknown codec backend")
)

// Codec decodes arbitrary raster formats, encodes JPEG and resamples.
type Codec interface {
	Name() string

	// Decode sniffs the format from the content, never from a file name.
	Decode(data []byte) (image.Image, string, error)

	// EncodeJPEG encodes img at quality 0-100 (0 = smallest, 100 = best).
	EncodeJPEG(img image.Image, quality int) ([]byte, error)

	// Resize resamples img to exactly width x height.
	Resize(img image.Image, width, height int) (image.Image, error)

	// Extensions lists the dotted, lower-case file extensions Decode accepts.
	Extensions() []string
}

// Factory builds a codec backend for a pair of resample filters.
type Factory func(filters Filters) (Codec, error)

type backend struct {
	priority int
	factory  Factory
}

var (
	registryMu sync.RWMutex
	registry   = map[string]backend{}
)

// Register makes a backend available to New. Backends behind build tags
// register themselves from init; the highest priority one becomes
// DefaultBackend.
func Register(name string, priority int, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = backend{priority: priority, factory: factory}
}

func unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, strings.ToLower(name))
}

// DefaultBackend is the highest priority backend compiled into the binary.
// Ties resolve alphabetically.
func DefaultBackend() string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	best, bestPriority := "", 0
	for name, b := range registry {
		if best == "" || b.priority > bestPriority || (b.priority == bestPriority && name < best) {
			best, bestPriority = name, b.priority
		}
	}
	return best
}

// New creates the named backend with the named downscale and upscale
// filters. An empty backend selects DefaultBackend.
func New(name, down, up string) (Codec, error) {
	filters, err := ParseFilters(down, up)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultBackend()
	}

	registryMu.RLock()
	b, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return b.factory(filters)
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("native", 0, newNative)
}
