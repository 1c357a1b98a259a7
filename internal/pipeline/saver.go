package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"image-compressor/internal/models"
)

// HasJPEGExtension reports whether path already ends in .jpg or .jpeg,
// ignoring case.
func HasJPEGExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

// EnsureExtension appends ext unless path already has a JPEG extension.
func EnsureExtension(path, ext string) string {
	if HasJPEGExtension(path) {
		return path
	}
	return path + ext
}

// SaveEncoded writes the encoded bytes verbatim and returns the path actually
// written, which may carry an appended default extension.
func (p *Pipeline) SaveEncoded(result *models.EncodedResult, path string) (string, error) {
	if result == nil || result.Len() == 0 {
		return "", ErrNoResult
	}

	target := EnsureExtension(path, p.defaultExtension)

	ctx := p.timings.StartTiming("save_encoded")
	err := os.WriteFile(target, result.Data, 0o644)
	p.timings.EndTiming(ctx)
	if err != nil {
		p.logger.Error(component, err, map[string]interface{}{
			"operation": "save",
			"path":      target,
		})
		return "", ioError("write", target, err)
	}

	p.logger.Info(component, "image saved", map[string]interface{}{
		"path":       target,
		"size_bytes": result.Len(),
		"digest":     result.Digest,
	})
	return target, nil
}

// WriteEncoded streams the encoded bytes to w.
func (p *Pipeline) WriteEncoded(w io.Writer, result *models.EncodedResult) error {
	if result == nil || result.Len() == 0 {
		return ErrNoResult
	}
	if _, err := w.Write(result.Data); err != nil {
		return ioError("write", "stream", err)
	}
	return nil
}
