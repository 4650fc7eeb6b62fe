package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/formkit/internal/model"
)

// LabeledSelect is a dropdown with a caption
type LabeledSelect struct {
	widget.BaseWidget

	label    *widget.Label
	sel      *widget.Select
	options  model.Options
	onChange func(string)
	updating bool
}

// NewLabeledSelect creates a dropdown over options with value selected.
// Options must be unique and value should be one of them; violations are
// logged.
func NewLabeledSelect(label string, options model.Options, value string, onChange func(string)) *LabeledSelect {
	ls := &LabeledSelect{
		label:    newFieldLabel(label),
		onChange: onChange,
	}
	ls.sel = widget.NewSelect(nil, ls.changed)
	ls.SetOptions(options)
	ls.SetValue(value)
	ls.ExtendBaseWidget(ls)
	return ls
}

// SetOptions replaces the choices. The selection is kept if it is still
// one of them.
func (ls *LabeledSelect) SetOptions(options model.Options) {
	if err := options.Validate(); err != nil {
		log.Printf("Warning: select %q: %v", ls.Label(), err)
	}

	ls.options = options.Strings()
	selected := ls.sel.Selected

	ls.updating = true
	ls.sel.SetOptions(ls.options.Strings())
	if selected != "" && !ls.options.Contains(selected) {
		ls.sel.ClearSelected()
	}
	ls.updating = false
}

// Options returns a copy of the choices
func (ls *LabeledSelect) Options() model.Options {
	return ls.options.Strings()
}

// SetValue selects value without calling onChange. Values that are not an
// option clear the selection.
func (ls *LabeledSelect) SetValue(value string) {
	ls.updating = true
	defer func() { ls.updating = false }()

	if !ls.options.Contains(value) {
		if value != "" {
			log.Printf("Warning: select %q has no option %q", ls.Label(), value)
		}
		ls.sel.ClearSelected()
		return
	}
	ls.sel.SetSelected(value)
}

// Value returns the selected option, or an empty string
func (ls *LabeledSelect) Value() string {
	return ls.sel.Selected
}

// Select picks value as if the user chose it. It reports whether value is
// an option.
func (ls *LabeledSelect) Select(value string) bool {
	if !ls.options.Contains(value) {
		return false
	}
	ls.sel.SetSelected(value)
	return true
}

// SetLabel changes the caption
func (ls *LabeledSelect) SetLabel(text string) {
	ls.label.SetText(text + LabelSuffix)
}

// Label returns the caption without the suffix
func (ls *LabeledSelect) Label() string {
	if ls.label == nil {
		return ""
	}
	return trimLabel(ls.label.Text)
}

// CreateRenderer implements fyne.Widget
func (ls *LabeledSelect) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(ls.label, ls.sel))
}

func (ls *LabeledSelect) changed(value string) {
	if ls.updating {
		return
	}
	if ls.onChange != nil {
		ls.onChange(value)
	}
}
