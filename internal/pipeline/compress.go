package pipeline

import (
	"errors"

	"image-compressor/internal/hasher"
	"image-compressor/internal/models"
)

// Compress re-encodes source as JPEG. quality is clamped to [0,1] and mapped
// linearly onto the codec's 0-100 scale. Nothing is written to disk.
func (p *Pipeline) Compress(source *models.SourceImage, quality float64) (*models.EncodedResult, error) {
	if source == nil || source.Image == nil {
		return nil, ErrNoSource
	}

	ctx := p.timings.StartTiming("compress")
	q := models.ClampQuality(quality)
	codecQuality := models.CodecQuality(q)

	data, err := p.codec.EncodeJPEG(source.Image, codecQuality)
	elapsed := p.timings.EndTiming(ctx)
	if err != nil {
		p.logger.Error(component, err, map[string]interface{}{
			"operation": "compress",
			"quality":   codecQuality,
		})
		return nil, encodingError("encode jpeg", err)
	}
	if len(data) == 0 {
		return nil, encodingError("encode jpeg", errors.New("encoder produced no data"))
	}

	result := &models.EncodedResult{
		Data:         data,
		Quality:      q,
		SourceDigest: source.Digest,
		Digest:       hasher.ContentHash(data),
		EncodeTime:   elapsed,
	}

	p.logger.Debug(component, "image compressed", map[string]interface{}{
		"quality":    codecQuality,
		"size_bytes": result.Len(),
		"size_kb":    result.KB(),
		"elapsed_ms": elapsed.Milliseconds(),
	})

	return result, nil
}
