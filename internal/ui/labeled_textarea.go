package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// LabeledTextArea is a multi-line text field with a caption. Every text
// area carries an id that form code uses to find it again.
type LabeledTextArea struct {
	widget.BaseWidget
	controlledText

	id    string
	label *widget.Label
}

// NewLabeledTextArea creates a text area showing value, with a generated id
func NewLabeledTextArea(label, value string, onChange func(string)) *LabeledTextArea {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetMinRowsVisible(TextAreaRows)

	ta := &LabeledTextArea{
		id:    uuid.NewString(),
		label: newFieldLabel(label),
	}
	ta.attach(entry, value, onChange)
	ta.SetLocalization(nil)
	ta.ExtendBaseWidget(ta)
	return ta
}

// SetLocalization sets the language of the placeholder. nil means English.
func (ta *LabeledTextArea) SetLocalization(loc *Localization) {
	if loc == nil {
		loc = NewLocalization()
	}
	ta.entry.SetPlaceHolder(loc.GetText(KeyTextAreaPlaceholder))
}

// ID returns the text area id
func (ta *LabeledTextArea) ID() string {
	return ta.id
}

// SetID replaces the generated id. Empty ids are ignored.
func (ta *LabeledTextArea) SetID(id string) {
	if id != "" {
		ta.id = id
	}
}

// SetLabel changes the caption
func (ta *LabeledTextArea) SetLabel(text string) {
	ta.label.SetText(text + LabelSuffix)
}

// Label returns the caption without the suffix
func (ta *LabeledTextArea) Label() string {
	return trimLabel(ta.label.Text)
}

// Entry exposes the underlying entry for focus handling
func (ta *LabeledTextArea) Entry() *widget.Entry {
	return ta.entry
}

// CreateRenderer implements fyne.Widget
func (ta *LabeledTextArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(ta.label, nil, nil, nil, ta.entry))
}
