package pipeline

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"image-compressor/internal/hasher"
	"image-compressor/internal/models"
)

// LoadSource reads and decodes the file at path. The format is sniffed from
// the content; the extension is ignored.
func (p *Pipeline) LoadSource(path string) (*models.SourceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Error(component, err, map[string]interface{}{
			"operation": "read_source",
			"path":      path,
		})
		return nil, ioError("read", path, err)
	}
	return p.decodeSource(data, filepath.Base(path))
}

// LoadSourceFrom decodes an image streamed from r, e.g. a dialog or drop URI.
func (p *Pipeline) LoadSourceFrom(r io.Reader, name string) (*models.SourceImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		p.logger.Error(component, err, map[string]interface{}{
			"operation": "read_source",
			"name":      name,
		})
		return nil, ioError("read", name, err)
	}
	return p.decodeSource(data, name)
}

func (p *Pipeline) decodeSource(data []byte, name string) (*models.SourceImage, error) {
	if len(data) == 0 {
		return nil, invalidImageError(name, errors.New("file is empty"))
	}

	ctx := p.timings.StartTiming("load_source")
	img, format, err := p.codec.Decode(data)
	elapsed := p.timings.EndTiming(ctx)
	if err != nil {
		p.logger.Warning(component, "file is not a decodable image", map[string]interface{}{
			"name":  name,
			"error": err.Error(),
		})
		return nil, invalidImageError(name, err)
	}

	bounds := img.Bounds()
	source := &models.SourceImage{
		Image:    img,
		Name:     name,
		Format:   format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		FileSize: int64(len(data)),
		Digest:   hasher.ContentHash(data),
	}

	p.logger.Info(component, "image loaded", map[string]interface{}{
		"name":       name,
		"format":     format,
		"width":      source.Width,
		"height":     source.Height,
		"size_bytes": source.FileSize,
		"digest":     source.Digest,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	return source, nil
}
