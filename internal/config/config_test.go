package config

import (
	"testing"
	"time"

	"image-compressor/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Quality.Min)
	assert.Equal(t, 100, cfg.Quality.Max)
	assert.Equal(t, 75, cfg.Quality.Default)
	assert.Equal(t, time.Duration(0), cfg.Quality.Debounce)
	assert.Equal(t, codec.DefaultBackend(), cfg.Codec.Backend)
	assert.Equal(t, "area", cfg.Codec.Downscale)
	assert.Equal(t, "lanczos", cfg.Codec.Upscale)
	assert.Equal(t, ".jpg", cfg.Output.DefaultExtension)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 0.75, cfg.Quality.NormalizedDefault(), 1e-9)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Quality.Default = 150
	assert.Error(t, cfg.Validate())

	cfg, _ = Load()
	cfg.Codec.Backend = "magick"
	assert.Error(t, cfg.Validate())

	cfg, _ = Load()
	cfg.Codec.Upscale = "nearest"
	assert.Error(t, cfg.Validate())

	cfg, _ = Load()
	cfg.Output.DefaultExtension = ".png"
	assert.Error(t, cfg.Validate())
}

func TestNormalize(t *testing.T) {
	q := QualityConfig{Min: 0, Max: 100}
	assert.Equal(t, 0.0, q.Normalize(-5))
	assert.Equal(t, 1.0, q.Normalize(101))
	assert.InDelta(t, 0.42, q.Normalize(42), 1e-9)
}

func TestLoadBuildsUsableCodec(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	c, err := codec.New(cfg.Codec.Backend, cfg.Codec.Downscale, cfg.Codec.Upscale)
	require.NoError(t, err)
	assert.Equal(t, cfg.Codec.Backend, c.Name())
}
