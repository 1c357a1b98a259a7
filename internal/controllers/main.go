package controllers

import (
	"fmt"

	"image-compressor/internal/config"
	"image-compressor/internal/debounce"
	"image-compressor/internal/logger"
	"image-compressor/internal/pipeline"
	"image-compressor/internal/services"
	"image-compressor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

const component = "MainController"

// MainController turns view events into session operations and renders the
// resulting state. All handlers run on the UI goroutine.
type MainController struct {
	service   *services.CompressionService
	config    *config.Config
	logger    logger.Logger
	debouncer *debounce.Debouncer

	mainView *views.MainView

	openURI   func(fyne.URI) (fyne.URIReadCloser, error)
	deleteURI func(fyne.URI) error
}

// NewMainController wires the session to the UI. dispatch delivers debounced
// quality changes back to the UI goroutine (fyne.Do in the app).
func NewMainController(service *services.CompressionService, cfg *config.Config, log logger.Logger, dispatch func(func())) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	return &MainController{
		service:   service,
		config:    cfg,
		logger:    log,
		debouncer: debounce.New(cfg.Quality.Debounce, dispatch),
		openURI:   storage.Reader,
		deleteURI: storage.Delete,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()

	// The preview area may already be laid out before the handler exists.
	if w, h := view.ViewportSize(); w > 0 && h > 0 {
		mc.ResizeViewport(w, h)
		return
	}
	mc.render(mc.service.Snapshot())
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetUploadHandler(mc.UploadImage)
	mc.mainView.SetDownloadHandler(mc.DownloadImage)
	mc.mainView.SetQualityChangeHandler(mc.ChangeQuality)
	mc.mainView.SetViewportHandler(mc.ResizeViewport)
	mc.mainView.SetDropHandler(mc.HandleDrop)
}

// UploadImage opens the file picker filtered to decodable extensions.
func (mc *MainController) UploadImage() {
	mc.mainView.ShowOpenDialog(mc.service.SupportedExtensions(), func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("Image selection failed", fmt.Errorf("%w: %w", pipeline.ErrIO, err))
			return
		}
		if reader == nil {
			return
		}
		mc.LoadReader(reader)
	})
}

// HandleDrop loads the first dropped file and ignores the rest.
func (mc *MainController) HandleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	if len(uris) > 1 {
		mc.logger.Debug(component, "ignoring extra dropped files", map[string]interface{}{
			"dropped": len(uris),
			"loaded":  uris[0].String(),
		})
	}
	mc.LoadURI(uris[0])
}

func (mc *MainController) LoadURI(uri fyne.URI) {
	reader, err := mc.openURI(uri)
	if err != nil {
		mc.handleError("Image load failed", fmt.Errorf("%w: open %s: %w", pipeline.ErrIO, uri.Name(), err))
		return
	}
	mc.LoadReader(reader)
}

func (mc *MainController) LoadReader(reader fyne.URIReadCloser) {
	defer reader.Close()

	snap, err := mc.service.LoadFrom(reader, reader.URI().Name())
	if err != nil {
		mc.handleError("Image load failed", err)
		return
	}
	mc.render(snap)
}

// ChangeQuality handles a slider move to an integer position.
func (mc *MainController) ChangeQuality(value int) {
	q := mc.config.Quality.Normalize(value)
	mc.debouncer.Trigger(func() {
		snap, err := mc.service.SetQuality(q)
		if err != nil {
			mc.handleError("Compression failed", err)
			return
		}
		mc.render(snap)
	})
}

// ResizeViewport refits the preview to a new preview area size in pixels.
func (mc *MainController) ResizeViewport(width, height int) {
	snap, err := mc.service.SetViewport(width, height)
	if err != nil {
		mc.handleError("Preview failed", err)
		return
	}
	mc.render(snap)
}

// DownloadImage asks for a destination and writes the latest result.
func (mc *MainController) DownloadImage() {
	if !mc.service.HasResult() {
		mc.handleError("Download failed", pipeline.ErrNoResult)
		return
	}

	fileName := mc.config.Output.DefaultFileName + mc.config.Output.DefaultExtension
	mc.mainView.ShowSaveDialog(fileName, mc.onSaveChosen)
}

func (mc *MainController) onSaveChosen(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		mc.handleError("Image save failed", fmt.Errorf("%w: %w", pipeline.ErrIO, err))
		return
	}
	if writer == nil {
		return
	}

	uri := writer.URI()
	if uri.Scheme() != "file" {
		mc.writeToURI(writer)
		return
	}

	// The dialog has already created the chosen file; close it and write by
	// path so a missing .jpg suffix can be appended.
	if err := writer.Close(); err != nil {
		mc.handleError("Image save failed", fmt.Errorf("%w: %w", pipeline.ErrIO, err))
		return
	}

	// A name without a JPEG extension is only a placeholder: the bytes go to
	// the suffixed path, or nowhere if the save fails.
	written, ok := mc.SaveToPath(uri.Path())
	if (ok && written != uri.Path()) || (!ok && !pipeline.HasJPEGExtension(uri.Path())) {
		mc.removePlaceholder(uri)
	}
}

func (mc *MainController) removePlaceholder(uri fyne.URI) {
	if err := mc.deleteURI(uri); err != nil {
		mc.logger.Warning(component, "could not remove placeholder file", map[string]interface{}{
			"path":  uri.Path(),
			"error": err.Error(),
		})
	}
}

func (mc *MainController) writeToURI(writer fyne.URIWriteCloser) {
	err := mc.service.WriteTo(writer)
	if closeErr := writer.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %w", pipeline.ErrIO, closeErr)
	}
	if err != nil {
		mc.handleError("Image save failed", err)
		return
	}
	mc.mainView.ShowInfo("Success", "Image saved successfully.")
}

// SaveToPath writes the latest result to path, appending the default
// extension if needed, and returns the path written.
func (mc *MainController) SaveToPath(path string) (string, bool) {
	written, err := mc.service.Save(path)
	if err != nil {
		mc.handleError("Image save failed", err)
		return "", false
	}
	mc.mainView.ShowInfo("Success", "Image saved successfully.")
	return written, true
}

func (mc *MainController) render(snap services.Snapshot) {
	if mc.mainView == nil {
		return
	}
	mc.mainView.Render(snap)

	title := config.AppName
	if snap.Source != nil {
		title = fmt.Sprintf("%s - %s", config.AppName, snap.Source.Name)
	}
	mc.mainView.SetWindowTitle(title)
}

// handleError logs err and shows it in a modal dialog. State is untouched.
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"action": title,
	})
	if mc.mainView != nil {
		mc.mainView.ShowError(pipeline.Describe(err))
	}
}

// Shutdown drops any pending debounced work.
func (mc *MainController) Shutdown() {
	mc.debouncer.Stop()
}
