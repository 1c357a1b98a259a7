// Package pipeline turns a decoded source image and a quality value into
// JPEG bytes and a viewport-fitted preview, and moves those bytes to and from
// disk.
package pipeline

import (
	"image-compressor/internal/codec"
	"image-compressor/internal/logger"
)

const component = "Pipeline"

// Pipeline is stateless apart from its timing statistics; the caller keeps
// the latest result.
type Pipeline struct {
	codec            codec.Codec
	logger           logger.Logger
	timings          *Tracker
	defaultExtension string
}

type Option func(*Pipeline)

// WithDefaultExtension sets the suffix appended to save paths that lack one.
func WithDefaultExtension(ext string) Option {
	return func(p *Pipeline) {
		if ext != "" {
			p.defaultExtension = ext
		}
	}
}

func WithTracker(t *Tracker) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.timings = t
		}
	}
}

func New(c codec.Codec, log logger.Logger, opts ...Option) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	p := &Pipeline{
		codec:            c,
		logger:           log,
		timings:          NewTracker(),
		defaultExtension: ".jpg",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SupportedExtensions lists the file extensions the open dialog should offer.
func (p *Pipeline) SupportedExtensions() []string {
	return p.codec.Extensions()
}

func (p *Pipeline) Timings() *Tracker {
	return p.timings
}
