package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"image-compressor/internal/codec"
	"image-compressor/internal/config"
	"image-compressor/internal/models"
	"image-compressor/internal/pipeline"
	"image-compressor/internal/services"
	"image-compressor/internal/testutil"
	"image-compressor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileReader and fileWriter stand in for the storage repository.
type fileReader struct {
	*os.File
	uri fyne.URI
}

func (f fileReader) URI() fyne.URI { return f.uri }

type fileWriter struct {
	*os.File
	uri fyne.URI
}

func (f fileWriter) URI() fyne.URI { return f.uri }

type harness struct {
	controller *MainController
	service    *services.CompressionService
	view       *views.MainView
	window     fyne.Window
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	cfg, err := config.Load()
	require.NoError(t, err)

	c, err := codec.New(cfg.Codec.Backend, cfg.Codec.Downscale, cfg.Codec.Upscale)
	require.NoError(t, err)
	service := services.NewCompressionService(pipeline.New(c, nil), nil, cfg.Quality.NormalizedDefault())

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(800, 600))

	view := views.NewMainView(w, views.QualityRange{
		Min: cfg.Quality.Min, Max: cfg.Quality.Max, Default: cfg.Quality.Default, Step: cfg.Quality.Step,
	})

	mc := NewMainController(service, cfg, nil, nil)
	mc.openURI = func(u fyne.URI) (fyne.URIReadCloser, error) {
		f, err := os.Open(u.Path())
		if err != nil {
			return nil, err
		}
		return fileReader{File: f, uri: u}, nil
	}
	mc.deleteURI = func(u fyne.URI) error { return os.Remove(u.Path()) }
	mc.SetMainView(view)

	return &harness{controller: mc, service: service, view: view, window: w}
}

func (h *harness) hasDialog() bool {
	return h.window.Canvas().Overlays().Top() != nil
}

func imageURI(t *testing.T, name string, w, h int) fyne.URI {
	t.Helper()
	return storage.NewFileURI(testutil.WritePNG(t, name, testutil.Photo(w, h, int64(w*h))))
}

func TestInitialRender(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "Image size: N/A", h.view.SizeText())
	assert.Nil(t, h.view.PreviewImage())
}

func TestLoadURIRendersPreview(t *testing.T) {
	h := newHarness(t)
	h.controller.ResizeViewport(400, 300)

	h.controller.LoadURI(imageURI(t, "photo.png", 160, 120))

	snap := h.service.Snapshot()
	require.NotNil(t, snap.Result)
	require.NotNil(t, snap.Preview)
	assert.Equal(t, models.SizeLabel(snap.Result), h.view.SizeText())
	assert.Equal(t, snap.Preview.Image, h.view.PreviewImage())
	assert.Equal(t, "photo.png: 160x120, png", h.view.ImageInfo())
	assert.Empty(t, h.view.DropMessage())
	assert.False(t, h.hasDialog())
}

func TestDropLoadsOnlyFirstFile(t *testing.T) {
	h := newHarness(t)

	h.controller.HandleDrop([]fyne.URI{
		imageURI(t, "first.png", 100, 50),
		imageURI(t, "second.png", 30, 30),
	})

	assert.Equal(t, "first.png: 100x50, png", h.view.ImageInfo())
	assert.Equal(t, 1, h.service.Stats().Compressions)

	h.controller.HandleDrop(nil)
	assert.Equal(t, 1, h.service.Stats().Compressions)
}

func TestDropNonImageKeepsPreview(t *testing.T) {
	h := newHarness(t)
	h.controller.ResizeViewport(400, 300)
	h.controller.LoadURI(imageURI(t, "photo.png", 120, 90))

	previewBefore := h.view.PreviewImage()
	sizeBefore := h.view.SizeText()
	require.NotNil(t, previewBefore)

	notes := testutil.WriteFile(t, "notes.txt", []byte("shopping list"))
	h.controller.HandleDrop([]fyne.URI{storage.NewFileURI(notes)})

	assert.True(t, h.hasDialog())
	assert.Equal(t, previewBefore, h.view.PreviewImage())
	assert.Equal(t, sizeBefore, h.view.SizeText())
	assert.Equal(t, "photo.png: 120x90, png", h.view.ImageInfo())
}

func TestLoadMissingFileShowsError(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(storage.NewFileURI(filepath.Join(t.TempDir(), "gone.png")))

	assert.True(t, h.hasDialog())
	assert.Nil(t, h.service.Snapshot().Source)
}

func TestChangeQualityRecompresses(t *testing.T) {
	h := newHarness(t)
	h.controller.ResizeViewport(200, 200)
	h.controller.LoadURI(imageURI(t, "photo.png", 120, 120))

	h.controller.ChangeQuality(10)

	snap := h.service.Snapshot()
	assert.InDelta(t, 0.10, snap.Result.Quality, 1e-9)
	assert.Equal(t, models.SizeLabel(snap.Result), h.view.SizeText())
	assert.Equal(t, 2, h.service.Stats().Compressions)
}

func TestChangeQualityWithoutImageIsSilent(t *testing.T) {
	h := newHarness(t)
	h.controller.ChangeQuality(30)

	assert.False(t, h.hasDialog())
	assert.Equal(t, "Image size: N/A", h.view.SizeText())
	assert.InDelta(t, 0.30, h.service.Snapshot().Quality, 1e-9)
}

func TestSliderDrivesController(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(imageURI(t, "photo.png", 64, 64))

	h.view.SetQualityValue(5)
	assert.InDelta(t, 0.05, h.service.Snapshot().Result.Quality, 1e-9)
}

func TestDownloadWithoutResultShowsError(t *testing.T) {
	h := newHarness(t)
	h.controller.DownloadImage()
	assert.True(t, h.hasDialog())
}

func TestSaveToPathAppendsExtension(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(imageURI(t, "photo.png", 50, 40))

	target := filepath.Join(t.TempDir(), "holiday")
	written, ok := h.controller.SaveToPath(target)
	require.True(t, ok)
	assert.Equal(t, target+".jpg", written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, h.service.Snapshot().Result.Data, data)
}

func TestSaveChosenRemovesPlaceholder(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(imageURI(t, "photo.png", 50, 40))

	dir := t.TempDir()
	placeholder := filepath.Join(dir, "shot")
	f, err := os.Create(placeholder)
	require.NoError(t, err)

	h.controller.onSaveChosen(fileWriter{File: f, uri: storage.NewFileURI(placeholder)}, nil)

	assert.NoFileExists(t, placeholder)
	assert.FileExists(t, placeholder+".jpg")
}

func TestSaveChosenKeepsJPEGName(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(imageURI(t, "photo.png", 50, 40))

	target := filepath.Join(t.TempDir(), "shot.JPG")
	f, err := os.Create(target)
	require.NoError(t, err)

	h.controller.onSaveChosen(fileWriter{File: f, uri: storage.NewFileURI(target)}, nil)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, h.service.Snapshot().Result.Data, data)
}

func TestSaveCancelledDoesNothing(t *testing.T) {
	h := newHarness(t)
	h.controller.onSaveChosen(nil, nil)
	assert.False(t, h.hasDialog())
}

func TestFailedSaveRemovesPlaceholder(t *testing.T) {
	h := newHarness(t)
	h.controller.LoadURI(imageURI(t, "photo.png", 50, 40))

	dir := t.TempDir()
	placeholder := filepath.Join(dir, "shot")
	f, err := os.Create(placeholder)
	require.NoError(t, err)
	// The suffixed target is a directory, so the write fails.
	require.NoError(t, os.Mkdir(placeholder+".jpg", 0o755))

	h.controller.onSaveChosen(fileWriter{File: f, uri: storage.NewFileURI(placeholder)}, nil)

	assert.True(t, h.hasDialog())
	assert.NoFileExists(t, placeholder)
	assert.DirExists(t, placeholder+".jpg")
}

func TestWindowTitleFollowsSource(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, config.AppName, h.window.Title())

	h.controller.LoadURI(imageURI(t, "beach.png", 30, 20))
	assert.Equal(t, config.AppName+" - beach.png", h.window.Title())

	notes := testutil.WriteFile(t, "notes.txt", []byte("not pixels"))
	h.controller.HandleDrop([]fyne.URI{storage.NewFileURI(notes)})
	assert.Equal(t, config.AppName+" - beach.png", h.window.Title())
}
