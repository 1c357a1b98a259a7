package views

import (
	"errors"
	"image"

	"image-compressor/internal/services"
	"image-compressor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// QualityRange configures the quality slider.
type QualityRange struct {
	Min, Max, Default int
	Step              float64
}

// MainView is the single application window: size readout on top, preview
// in the middle, controls at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	statusBar     *components.StatusBar
	imageDisplay  *components.ImageDisplay
	quality       *components.QualitySlider
	toolbar       *components.Toolbar

	viewportHandler func(width, height int)
}

func NewMainView(window fyne.Window, qr QualityRange) *MainView {
	view := &MainView{window: window}

	view.initializeComponents(qr)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(qr QualityRange) {
	mv.statusBar = components.NewStatusBar()
	mv.imageDisplay = components.NewImageDisplay()
	mv.quality = components.NewQualitySlider(qr.Min, qr.Max, qr.Default, qr.Step)
	mv.toolbar = components.NewToolbar(mv.quality)
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.statusBar.GetContainer(),
		mv.toolbar.GetContainer(),
		nil,
		nil,
		mv.imageDisplay.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.imageDisplay.SetResizeHandler(func(size fyne.Size) {
		if mv.viewportHandler == nil {
			return
		}
		w, h := mv.toPixels(size)
		mv.viewportHandler(w, h)
	})
}

// toPixels converts a canvas size into device pixels.
func (mv *MainView) toPixels(size fyne.Size) (int, int) {
	scale := float32(1)
	if c := mv.window.Canvas(); c != nil && c.Scale() > 0 {
		scale = c.Scale()
	}
	return int(size.Width * scale), int(size.Height * scale)
}

// Event handler setters - called by controller

func (mv *MainView) SetUploadHandler(handler func()) {
	mv.toolbar.SetUploadHandler(handler)
}

func (mv *MainView) SetDownloadHandler(handler func()) {
	mv.toolbar.SetDownloadHandler(handler)
}

func (mv *MainView) SetQualityChangeHandler(handler func(int)) {
	mv.quality.SetChangeHandler(handler)
}

// SetViewportHandler receives the preview area size in pixels.
func (mv *MainView) SetViewportHandler(handler func(width, height int)) {
	mv.viewportHandler = handler
}

// SetDropHandler receives the URIs of files dropped onto the window.
func (mv *MainView) SetDropHandler(handler func([]fyne.URI)) {
	mv.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		handler(uris)
	})
}

// UI update methods - called by controller

// Render shows the session state.
func (mv *MainView) Render(snap services.Snapshot) {
	var preview image.Image
	if snap.Preview != nil {
		preview = snap.Preview.Image
	}
	mv.imageDisplay.SetPreview(preview)
	mv.statusBar.SetImageSize(snap.SizeLabel)

	if snap.Source == nil {
		mv.statusBar.Reset()
		return
	}
	mv.imageDisplay.SetMessage("")
	mv.statusBar.SetImageInfo(snap.Source.Name, snap.Source.Width, snap.Source.Height, snap.Source.Format)
}

// ViewportSize returns the current preview area size in pixels.
func (mv *MainView) ViewportSize() (int, int) {
	return mv.toPixels(mv.imageDisplay.Size())
}

func (mv *MainView) ShowError(message string) {
	dialog.ShowError(errors.New(message), mv.window)
}

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowOpenDialog lets the user pick an image with one of the given extensions.
func (mv *MainView) ShowOpenDialog(extensions []string, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	if len(extensions) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	d.Show()
}

func (mv *MainView) ShowSaveDialog(fileName string, callback func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(callback, mv.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg"}))
	d.SetFileName(fileName)
	d.Show()
}

func (mv *MainView) QualityValue() int {
	return mv.quality.Value()
}

func (mv *MainView) SetQualityValue(value int) {
	mv.quality.SetValue(value)
}

func (mv *MainView) PreviewImage() image.Image {
	return mv.imageDisplay.Preview()
}

func (mv *MainView) SizeText() string {
	return mv.statusBar.ImageSize()
}

func (mv *MainView) ImageInfo() string {
	return mv.statusBar.ImageInfo()
}

func (mv *MainView) DropMessage() string {
	return mv.imageDisplay.Message()
}

func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) Show() {
	mv.window.Show()
}
