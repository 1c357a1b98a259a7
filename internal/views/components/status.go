package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const NoImageSize = "Image size: N/A"

// StatusBar shows the compressed size and details of the loaded image.
type StatusBar struct {
	container *fyne.Container
	sizeLabel *widget.Label
	imageInfo *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.sizeLabel = widget.NewLabel(NoImageSize)
	sb.sizeLabel.TextStyle = fyne.TextStyle{Bold: true}
	sb.imageInfo = widget.NewLabel("No image loaded")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.sizeLabel,
		widget.NewSeparator(),
		sb.imageInfo,
	)
}

func (sb *StatusBar) SetImageSize(text string) {
	sb.sizeLabel.SetText(text)
}

func (sb *StatusBar) ImageSize() string {
	return sb.sizeLabel.Text
}

func (sb *StatusBar) SetImageInfo(name string, width, height int, format string) {
	sb.imageInfo.SetText(fmt.Sprintf("%s: %dx%d, %s", name, width, height, format))
}

func (sb *StatusBar) ImageInfo() string {
	return sb.imageInfo.Text
}

func (sb *StatusBar) Reset() {
	sb.sizeLabel.SetText(NoImageSize)
	sb.imageInfo.SetText("No image loaded")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
