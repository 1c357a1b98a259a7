package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the upload and download buttons around the quality slider.
type Toolbar struct {
	container      *fyne.Container
	uploadButton   *widget.Button
	downloadButton *widget.Button

	uploadHandler   func()
	downloadHandler func()
}

func NewToolbar(quality *QualitySlider) *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout(quality)
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.uploadButton = widget.NewButtonWithIcon("Upload Image", theme.FolderOpenIcon(), func() {
		if t.uploadHandler != nil {
			t.uploadHandler()
		}
	})
	t.uploadButton.Importance = widget.HighImportance

	t.downloadButton = widget.NewButtonWithIcon("Download Image", theme.DownloadIcon(), func() {
		if t.downloadHandler != nil {
			t.downloadHandler()
		}
	})
	t.downloadButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout(quality *QualitySlider) {
	t.container = container.NewBorder(
		nil, nil,
		container.NewCenter(t.uploadButton),
		container.NewCenter(t.downloadButton),
		quality.GetContainer(),
	)
}

func (t *Toolbar) SetUploadHandler(handler func()) {
	t.uploadHandler = handler
}

func (t *Toolbar) SetDownloadHandler(handler func()) {
	t.downloadHandler = handler
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
