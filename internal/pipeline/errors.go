package pipeline

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the pipeline wraps exactly one of
// ErrIO, ErrInvalidImage or ErrEncoding, or is one of the precondition errors.
var (
	ErrIO           = errors.New("i/o error")
	ErrInvalidImage = errors.New("invalid image")
	ErrEncoding     = errors.New("encoding error")

	ErrNoSource      = errors.New("no image loaded")
	ErrNoResult      = errors.New("no compressed image available")
	ErrEmptyViewport = errors.New("viewport has no size")
)

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

func invalidImageError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidImage, name, err)
}

func encodingError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrEncoding, op, err)
}

// Describe renders err as a sentence suitable for a modal dialog.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSource):
		return "Please upload an image first."
	case errors.Is(err, ErrNoResult):
		return "No image to download."
	case errors.Is(err, ErrInvalidImage):
		return "The selected file is not a valid image."
	case errors.Is(err, ErrEncoding):
		return "An error occurred while compressing the image."
	case errors.Is(err, ErrIO):
		return fmt.Sprintf("An error occurred while accessing the file (%v).", err)
	default:
		return err.Error()
	}
}
