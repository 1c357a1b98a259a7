package components

import (
	"testing"

	"image-compressor/internal/testutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestViewportLayoutReportsChangesOnce(t *testing.T) {
	var sizes []fyne.Size
	l := &viewportLayout{onResize: func(s fyne.Size) { sizes = append(sizes, s) }}

	l.Layout(nil, fyne.NewSize(100, 50))
	l.Layout(nil, fyne.NewSize(100, 50))
	l.Layout(nil, fyne.NewSize(200, 50))

	assert.Equal(t, []fyne.Size{fyne.NewSize(100, 50), fyne.NewSize(200, 50)}, sizes)
	assert.Equal(t, fyne.NewSize(ImageAreaMinWidth, ImageAreaMinHeight), l.MinSize(nil))
}

func TestImageDisplayPreview(t *testing.T) {
	test.NewApp()
	d := NewImageDisplay()

	assert.False(t, d.HasPreview())
	img := testutil.Gradient(4, 4)
	d.SetPreview(img)
	assert.True(t, d.HasPreview())
	assert.Equal(t, img, d.Preview())

	d.SetPreview(nil)
	assert.False(t, d.HasPreview())
	assert.Nil(t, d.Preview())
}

func TestStatusBar(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()

	assert.Equal(t, NoImageSize, sb.ImageSize())
	sb.SetImageSize("Image size: 3KB")
	sb.SetImageInfo("a.png", 10, 20, "png")
	assert.Equal(t, "Image size: 3KB", sb.ImageSize())
	assert.Equal(t, "a.png: 10x20, png", sb.ImageInfo())

	sb.Reset()
	assert.Equal(t, NoImageSize, sb.ImageSize())
}

func TestToolbarButtons(t *testing.T) {
	test.NewApp()
	tb := NewToolbar(NewQualitySlider(0, 100, 75, 1))

	uploads, downloads := 0, 0
	tb.SetUploadHandler(func() { uploads++ })
	tb.SetDownloadHandler(func() { downloads++ })

	test.Tap(tb.uploadButton)
	test.Tap(tb.downloadButton)
	test.Tap(tb.downloadButton)

	assert.Equal(t, 1, uploads)
	assert.Equal(t, 2, downloads)
}

func TestQualitySliderLabel(t *testing.T) {
	test.NewApp()
	qs := NewQualitySlider(0, 100, 75, 1)
	assert.Equal(t, "Compression quality: 75", qs.valueLabel.Text)

	qs.SetValue(20)
	assert.Equal(t, 20, qs.Value())
	assert.Equal(t, "Compression quality: 20", qs.valueLabel.Text)
}
