package config

import (
	"fmt"
	"time"

	"image-compressor/internal/codec"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

const (
	AppName    = "Image Uploader"
	AppID      = "com.imageprocessing.image-compressor"
	AppVersion = "1.0.0"
)

// Config holds the compiled-in application settings.
type Config struct {
	Window   WindowConfig
	Quality  QualityConfig
	Codec    CodecConfig
	Output   OutputConfig
	LogLevel string `default:"info" validate:"oneof=debug info warn error"`
}

type WindowConfig struct {
	Width  float32 `default:"800" validate:"gte=320"`
	Height float32 `default:"600" validate:"gte=240"`
}

// QualityConfig describes the integer slider; its value divided by Max is the
// normalized quality handed to the pipeline.
type QualityConfig struct {
	Min     int     `default:"0" validate:"gte=0"`
	Max     int     `default:"100" validate:"gtfield=Min"`
	Default int     `default:"75" validate:"gtefield=Min,ltefield=Max"`
	Step    float64 `default:"1" validate:"gt=0"`
	// Debounce of 0 recompresses on every slider event.
	Debounce time.Duration `default:"0s" validate:"gte=0"`
}

// CodecConfig selects the codec. An empty Backend is filled from
// codec.DefaultBackend, so a build with -tags opencv uses OpenCV.
type CodecConfig struct {
	Backend   string `validate:"oneof=native opencv"`
	Downscale string `default:"area" validate:"oneof=area lanczos"`
	Upscale   string `default:"lanczos" validate:"oneof=area lanczos"`
}

type OutputConfig struct {
	DefaultExtension string `default:".jpg" validate:"oneof=.jpg .jpeg"`
	DefaultFileName  string `default:"compressed" validate:"required"`
}

var validate = validator.New()

// Load returns the compiled-in configuration after validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if cfg.Codec.Backend == "" {
		cfg.Codec.Backend = codec.DefaultBackend()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NormalizedDefault returns the default slider position as a [0,1] quality.
func (q QualityConfig) NormalizedDefault() float64 {
	return q.Normalize(q.Default)
}

// Normalize maps a slider value onto [0,1].
func (q QualityConfig) Normalize(value int) float64 {
	if value <= q.Min {
		return 0
	}
	if value >= q.Max {
		return 1
	}
	return float64(value-q.Min) / float64(q.Max-q.Min)
}
