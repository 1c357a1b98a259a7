package components

import (
	"fmt"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const qualityTickSpacing = 25

// QualitySlider is the integer compression quality control.
type QualitySlider struct {
	container  *fyne.Container
	slider     *widget.Slider
	valueLabel *widget.Label

	min, max      int
	changeHandler func(int)
}

func NewQualitySlider(min, max, initial int, step float64) *QualitySlider {
	qs := &QualitySlider{min: min, max: max}
	qs.createComponents(initial, step)
	qs.buildLayout()
	return qs
}

func (qs *QualitySlider) createComponents(initial int, step float64) {
	qs.slider = widget.NewSlider(float64(qs.min), float64(qs.max))
	qs.slider.Step = step
	qs.slider.SetValue(float64(initial))
	qs.valueLabel = widget.NewLabel(qs.labelText(initial))

	qs.slider.OnChanged = func(v float64) {
		value := int(math.Round(v))
		qs.valueLabel.SetText(qs.labelText(value))
		if qs.changeHandler != nil {
			qs.changeHandler(value)
		}
	}
}

func (qs *QualitySlider) buildLayout() {
	ticks := container.NewHBox()
	for v := qs.min; v <= qs.max; v += qualityTickSpacing {
		if v > qs.min {
			ticks.Add(layout.NewSpacer())
		}
		ticks.Add(widget.NewLabel(strconv.Itoa(v)))
	}

	qs.container = container.NewVBox(
		container.NewCenter(qs.valueLabel),
		qs.slider,
		ticks,
	)
}

func (qs *QualitySlider) labelText(value int) string {
	return fmt.Sprintf("Compression quality: %d", value)
}

func (qs *QualitySlider) SetChangeHandler(handler func(int)) {
	qs.changeHandler = handler
}

// SetValue moves the slider, firing the change handler like a user drag.
func (qs *QualitySlider) SetValue(value int) {
	qs.slider.SetValue(float64(value))
}

func (qs *QualitySlider) Value() int {
	return int(math.Round(qs.slider.Value))
}

func (qs *QualitySlider) GetContainer() *fyne.Container {
	return qs.container
}
