package pipeline

import (
	"fmt"
	"math"

	"image-compressor/internal/models"
)

// FitDimensions picks the preview box from the viewport's own aspect ratio.
// A landscape viewport (ratio > 1) keeps its width, anything else keeps its
// height. The source image's aspect ratio is deliberately not consulted.
func FitDimensions(viewportWidth, viewportHeight int) (int, int) {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return 0, 0
	}

	ratio := float64(viewportWidth) / float64(viewportHeight)

	var width, height int
	if ratio > 1.0 {
		width = viewportWidth
		height = int(math.Round(float64(viewportWidth) / ratio))
	} else {
		height = viewportHeight
		width = int(math.Round(float64(viewportHeight) * ratio))
	}

	// Guard the box against float rounding pushing past the viewport.
	width = max(1, min(width, viewportWidth))
	height = max(1, min(height, viewportHeight))
	return width, height
}

// FitToViewport decodes the encoded bytes and resamples them into the box
// chosen by FitDimensions.
func (p *Pipeline) FitToViewport(encoded *models.EncodedResult, viewportWidth, viewportHeight int) (*models.PreviewBitmap, error) {
	if encoded == nil || encoded.Len() == 0 {
		return nil, ErrNoResult
	}
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyViewport, viewportWidth, viewportHeight)
	}

	ctx := p.timings.StartTiming("fit_to_viewport")
	defer p.timings.EndTiming(ctx)

	decoded, _, err := p.codec.Decode(encoded.Data)
	if err != nil {
		p.logger.Error(component, err, map[string]interface{}{
			"operation": "decode_preview",
		})
		return nil, encodingError("decode compressed image", err)
	}

	width, height := FitDimensions(viewportWidth, viewportHeight)
	scaled, err := p.codec.Resize(decoded, width, height)
	if err != nil {
		return nil, encodingError("resize preview", err)
	}

	p.logger.Debug(component, "preview fitted", map[string]interface{}{
		"viewport": fmt.Sprintf("%dx%d", viewportWidth, viewportHeight),
		"preview":  fmt.Sprintf("%dx%d", width, height),
	})

	return &models.PreviewBitmap{
		Image:          scaled,
		Width:          width,
		Height:         height,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}, nil
}
