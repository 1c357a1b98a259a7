package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ImageAreaMinWidth  = 320
	ImageAreaMinHeight = 240

	DropMessage = "Drag and Drop Here"
)

// ImageDisplay shows the compressed preview and reports its own size, which
// is the viewport the preview is fitted to.
type ImageDisplay struct {
	container    *fyne.Container
	preview      *canvas.Image
	messageLabel *canvas.Text
	layout       *viewportLayout

	hasPreview bool
}

func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{}
	display.createComponents()
	display.setupLayout()
	return display
}

func (id *ImageDisplay) createComponents() {
	id.preview = canvas.NewImageFromImage(nil)
	id.preview.FillMode = canvas.ImageFillContain
	id.preview.ScaleMode = canvas.ImageScaleSmooth
	id.preview.Hide()

	id.messageLabel = canvas.NewText(DropMessage, color.Gray{Y: 128})
	id.messageLabel.TextSize = 20
	id.messageLabel.TextStyle = fyne.TextStyle{Bold: true}
	id.messageLabel.Alignment = fyne.TextAlignCenter
}

func (id *ImageDisplay) setupLayout() {
	background := canvas.NewRectangle(color.RGBA{R: 252, G: 252, B: 252, A: 255})

	content := container.NewStack(
		background,
		id.preview,
		container.NewVBox(id.messageLabel),
	)

	id.layout = &viewportLayout{}
	id.container = container.New(id.layout, content)
}

// SetResizeHandler is called with the new size every time the area is laid out
// at a different size.
func (id *ImageDisplay) SetResizeHandler(handler func(fyne.Size)) {
	id.layout.onResize = handler
}

// SetPreview replaces the displayed bitmap; nil clears it.
func (id *ImageDisplay) SetPreview(img image.Image) {
	if img != nil {
		id.preview.Image = img
		id.preview.Show()
		id.hasPreview = true
	} else {
		id.preview.Image = nil
		id.preview.Hide()
		id.hasPreview = false
	}
	id.preview.Refresh()
}

func (id *ImageDisplay) Preview() image.Image {
	return id.preview.Image
}

func (id *ImageDisplay) HasPreview() bool {
	return id.hasPreview
}

func (id *ImageDisplay) SetMessage(text string) {
	id.messageLabel.Text = text
	id.messageLabel.Refresh()
}

func (id *ImageDisplay) Message() string {
	return id.messageLabel.Text
}

// Size returns the last laid-out size of the preview area.
func (id *ImageDisplay) Size() fyne.Size {
	return id.layout.last
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}

// viewportLayout stretches its children over the whole area and reports size
// changes.
type viewportLayout struct {
	last     fyne.Size
	onResize func(fyne.Size)
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Resize(size)
		obj.Move(fyne.NewPos(0, 0))
	}

	if size == l.last {
		return
	}
	l.last = size
	if l.onResize != nil {
		l.onResize(size)
	}
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(ImageAreaMinWidth, ImageAreaMinHeight)
}
