package services

import (
	"io"
	"sync"

	"image-compressor/internal/logger"
	"image-compressor/internal/models"
	"image-compressor/internal/pipeline"
)

const component = "CompressionService"

// Snapshot is the state the view renders after every operation.
type Snapshot struct {
	Source    *models.SourceImage
	Result    *models.EncodedResult
	Preview   *models.PreviewBitmap
	Quality   float64
	SizeLabel string
}

// Stats counts pipeline runs.
type Stats struct {
	Compressions int
	Coalesced    int
	Failures     int
}

// CompressionService is the session: it owns the current source image,
// quality, latest encoded result and preview. Each operation either commits
// all of its outputs or leaves the previous state untouched.
type CompressionService struct {
	mu       sync.Mutex
	pipeline *pipeline.Pipeline
	logger   logger.Logger

	source  *models.SourceImage
	result  *models.EncodedResult
	preview *models.PreviewBitmap
	quality float64

	viewportWidth  int
	viewportHeight int

	stats Stats
}

func NewCompressionService(p *pipeline.Pipeline, log logger.Logger, quality float64) *CompressionService {
	if log == nil {
		log = logger.Nop()
	}
	return &CompressionService{
		pipeline: p,
		logger:   log,
		quality:  models.ClampQuality(quality),
	}
}

// Load decodes the file at path and compresses it at the current quality.
func (s *CompressionService) Load(path string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.pipeline.LoadSource(path)
	if err != nil {
		s.stats.Failures++
		return s.snapshotLocked(), err
	}
	return s.applyLocked(source, s.quality)
}

// LoadFrom is Load for streamed content such as dialog readers and dropped URIs.
func (s *CompressionService) LoadFrom(r io.Reader, name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.pipeline.LoadSourceFrom(r, name)
	if err != nil {
		s.stats.Failures++
		return s.snapshotLocked(), err
	}
	return s.applyLocked(source, s.quality)
}

// SetQuality records q and recompresses the current source. Without a source
// it only records the value.
func (s *CompressionService) SetQuality(q float64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = models.ClampQuality(q)
	if s.source == nil {
		s.quality = q
		return s.snapshotLocked(), nil
	}
	return s.applyLocked(s.source, q)
}

// SetViewport records the preview area size and refits the current result.
// A zero-sized viewport is recorded but the preview is left as is.
func (s *CompressionService) SetViewport(width, height int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewportWidth, s.viewportHeight = width, height
	if s.result == nil || width <= 0 || height <= 0 || s.previewCurrentLocked() {
		return s.snapshotLocked(), nil
	}

	preview, err := s.pipeline.FitToViewport(s.result, width, height)
	if err != nil {
		s.stats.Failures++
		return s.snapshotLocked(), err
	}
	s.preview = preview
	return s.snapshotLocked(), nil
}

// Recompress reruns the pipeline for the current source and quality. When the
// source digest, quality and viewport all match the last successful run the
// work is skipped and counted in Stats.Coalesced.
func (s *CompressionService) Recompress() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return s.snapshotLocked(), pipeline.ErrNoSource
	}
	return s.applyLocked(s.source, s.quality)
}

// Save writes the latest encoded result and returns the path written.
func (s *CompressionService) Save(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pipeline.SaveEncoded(s.result, path)
}

// WriteTo streams the latest encoded result to w.
func (s *CompressionService) WriteTo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pipeline.WriteEncoded(w, s.result)
}

func (s *CompressionService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CompressionService) HasResult() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result != nil
}

func (s *CompressionService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// SupportedExtensions lists extensions for the open dialog filter.
func (s *CompressionService) SupportedExtensions() []string {
	return s.pipeline.SupportedExtensions()
}

// applyLocked compresses and fits source at q, committing source, quality,
// result and preview together only when every step succeeds.
func (s *CompressionService) applyLocked(source *models.SourceImage, q float64) (Snapshot, error) {
	if s.sameInputsLocked(source, q) {
		s.source = source
		s.stats.Coalesced++
		return s.snapshotLocked(), nil
	}

	result, err := s.pipeline.Compress(source, q)
	if err != nil {
		s.stats.Failures++
		return s.snapshotLocked(), err
	}

	// Until the viewport is laid out there is no preview; an older preview
	// would belong to a different (source, quality) pair.
	var preview *models.PreviewBitmap
	if s.viewportWidth > 0 && s.viewportHeight > 0 {
		preview, err = s.pipeline.FitToViewport(result, s.viewportWidth, s.viewportHeight)
		if err != nil {
			s.stats.Failures++
			return s.snapshotLocked(), err
		}
	}

	s.source = source
	s.quality = q
	s.result = result
	s.preview = preview
	s.stats.Compressions++

	s.logger.Debug(component, "session updated", map[string]interface{}{
		"source":    source.Name,
		"quality":   models.CodecQuality(q),
		"size":      models.SizeLabel(result),
		"encode_ms": result.EncodeTime.Milliseconds(),
	})

	return s.snapshotLocked(), nil
}

func (s *CompressionService) sameInputsLocked(source *models.SourceImage, q float64) bool {
	if s.source == nil || s.result == nil || s.quality != q {
		return false
	}
	if s.source != source && (source.Digest == "" || s.source.Digest != source.Digest) {
		return false
	}
	return s.previewCurrentLocked()
}

// previewCurrentLocked reports whether the preview matches the viewport, or
// no preview is possible yet.
func (s *CompressionService) previewCurrentLocked() bool {
	if s.viewportWidth <= 0 || s.viewportHeight <= 0 {
		return true
	}
	return s.preview != nil &&
		s.preview.ViewportWidth == s.viewportWidth &&
		s.preview.ViewportHeight == s.viewportHeight
}

func (s *CompressionService) snapshotLocked() Snapshot {
	return Snapshot{
		Source:    s.source,
		Result:    s.result,
		Preview:   s.preview,
		Quality:   s.quality,
		SizeLabel: models.SizeLabel(s.result),
	}
}
