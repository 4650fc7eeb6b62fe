package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LabeledEntry is a single-line text field with a caption
type LabeledEntry struct {
	widget.BaseWidget
	controlledText

	label *widget.Label
}

// NewLabeledEntry creates a text field showing value. onChange receives
// every edit made by the user.
func NewLabeledEntry(label, value string, onChange func(string)) *LabeledEntry {
	le := &LabeledEntry{label: newFieldLabel(label)}
	le.attach(widget.NewEntry(), value, onChange)
	le.ExtendBaseWidget(le)
	return le
}

// SetLabel changes the caption
func (le *LabeledEntry) SetLabel(text string) {
	le.label.SetText(text + LabelSuffix)
}

// Label returns the caption without the suffix
func (le *LabeledEntry) Label() string {
	return trimLabel(le.label.Text)
}

// Entry exposes the underlying entry for focus handling
func (le *LabeledEntry) Entry() *widget.Entry {
	return le.entry
}

// CreateRenderer implements fyne.Widget
func (le *LabeledEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(le.label, le.entry))
}
