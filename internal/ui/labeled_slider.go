package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/formkit/internal/model"
	"github.com/ytget/formkit/internal/numeric"
)

// LabeledSlider edits a bounded number through a short text entry and a
// slider that stay in sync. Every accepted edit is passed to onCommit:
// slider moves as confirmed values, typed text as pending values that the
// owner resolves when it needs a number.
type LabeledSlider struct {
	widget.BaseWidget

	input  *numeric.Input
	label  *widget.Label
	entry  *numericEntry
	slider *widget.Slider
	track  *fyne.Container

	// onRevert runs after a blur that committed nothing
	onRevert func(model.Value)

	// syncing suppresses callbacks while one surface is updated from the other
	syncing bool
}

// NewLabeledSlider creates a slider over bounds showing current
func NewLabeledSlider(label string, current float64, bounds model.Bounds, onCommit func(model.Value), opts ...numeric.Option) *LabeledSlider {
	ls := &LabeledSlider{
		input: numeric.NewInput(current, bounds, onCommit, opts...),
		label: newFieldLabel(label),
	}

	ls.entry = newNumericEntry()
	ls.entry.SetText(ls.input.Pending())
	ls.entry.OnChanged = func(text string) {
		if ls.syncing {
			return
		}
		ls.HandleTextEdit(text)
	}
	ls.entry.onBlur = ls.HandleBlur

	ls.slider = widget.NewSlider(bounds.Min, bounds.Max)
	ls.slider.Step = bounds.Step
	ls.slider.Value = bounds.Clamp(current)
	ls.slider.OnChanged = func(v float64) {
		if ls.syncing {
			return
		}
		ls.HandleSliderEdit(v)
	}
	ls.track = container.NewStack(ls.slider)

	ls.ExtendBaseWidget(ls)
	return ls
}

// HandleTextEdit processes text typed into the entry. Rejected text is
// replaced by the previous content and false is returned. Accepted text
// that parses moves the slider.
func (ls *LabeledSlider) HandleTextEdit(raw string) bool {
	accepted := ls.input.TextEdit(raw)
	ls.showText(ls.input.Pending())
	if accepted {
		ls.showPosition(ls.input.Position())
	}
	return accepted
}

// HandleSliderEdit processes a slider move
func (ls *LabeledSlider) HandleSliderEdit(v float64) {
	ls.input.SliderEdit(v)
	ls.showText(ls.input.Pending())
	ls.showPosition(v)
}

// HandleBlur resolves the typed text when the entry loses focus
func (ls *LabeledSlider) HandleBlur() {
	v, committed := ls.input.Blur()
	ls.showText(ls.input.Pending())
	ls.showPosition(ls.input.Position())
	if !committed && ls.onRevert != nil {
		ls.onRevert(v)
	}
}

// SetOnRevert sets a callback run after a blur that committed nothing. It
// receives the value shown again, which differs from the last commit when
// typed text did not parse and was dropped.
func (ls *LabeledSlider) SetOnRevert(fn func(model.Value)) {
	ls.onRevert = fn
}

// SetValue shows v on both surfaces without calling onCommit
func (ls *LabeledSlider) SetValue(v float64) {
	ls.input.Reset(v)
	ls.showText(ls.input.Pending())
	ls.showPosition(v)
}

// Text returns the text shown in the entry
func (ls *LabeledSlider) Text() string {
	return ls.entry.Text
}

// SliderValue returns the slider position
func (ls *LabeledSlider) SliderValue() float64 {
	return ls.slider.Value
}

// Bounds returns the slider range
func (ls *LabeledSlider) Bounds() model.Bounds {
	return ls.input.Bounds()
}

// SetColor paints the slider track. nil restores the theme color.
func (ls *LabeledSlider) SetColor(c color.Color) {
	if c == nil {
		ls.track.Objects = []fyne.CanvasObject{ls.slider}
	} else {
		ls.track.Objects = []fyne.CanvasObject{container.NewThemeOverride(ls.slider, NewAccentTheme(nil, c))}
	}
	ls.track.Refresh()
}

// SetLabel changes the caption
func (ls *LabeledSlider) SetLabel(text string) {
	ls.label.SetText(text + LabelSuffix)
}

// Label returns the caption without the suffix
func (ls *LabeledSlider) Label() string {
	return trimLabel(ls.label.Text)
}

// CreateRenderer implements fyne.Widget
func (ls *LabeledSlider) CreateRenderer() fyne.WidgetRenderer {
	entry := container.NewGridWrap(fyne.NewSize(NumericEntryWidth, ls.entry.MinSize().Height), ls.entry)
	header := container.NewBorder(nil, nil, ls.label, entry)
	return widget.NewSimpleRenderer(container.NewVBox(header, ls.track))
}

func (ls *LabeledSlider) showText(text string) {
	if ls.entry.Text == text {
		return
	}
	ls.syncing = true
	ls.entry.SetText(text)
	ls.syncing = false
}

func (ls *LabeledSlider) showPosition(v float64) {
	if ls.slider.Value == v {
		return
	}
	ls.syncing = true
	ls.slider.SetValue(v)
	ls.syncing = false
}
