package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// newFieldLabel creates the bold "Label:" caption shown above every field
func newFieldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text+LabelSuffix, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// controlledText connects an entry to an owner callback. Programmatic
// updates through SetValue do not call the owner back.
type controlledText struct {
	entry    *widget.Entry
	onChange func(string)
	updating bool
}

func (c *controlledText) attach(entry *widget.Entry, value string, onChange func(string)) {
	c.entry = entry
	c.onChange = onChange
	entry.SetText(value)
	entry.OnChanged = c.changed
}

func (c *controlledText) changed(text string) {
	if c.updating {
		return
	}
	if c.onChange != nil {
		c.onChange(text)
	}
}

// SetValue replaces the shown text without calling onChange
func (c *controlledText) SetValue(value string) {
	if c.entry.Text == value {
		return
	}
	c.updating = true
	c.entry.SetText(value)
	c.updating = false
}

// Value returns the shown text
func (c *controlledText) Value() string {
	return c.entry.Text
}

// SetPlaceHolder sets the hint shown while the field is empty
func (c *controlledText) SetPlaceHolder(text string) {
	c.entry.SetPlaceHolder(text)
}

// BindString keeps the field and data in sync. User edits are written to
// data before onChange runs.
func (c *controlledText) BindString(data binding.String) {
	if data == nil {
		return
	}

	next := c.onChange
	c.onChange = func(text string) {
		if err := data.Set(text); err != nil {
			log.Printf("Warning: failed to update bound value: %v", err)
		}
		if next != nil {
			next(text)
		}
	}

	data.AddListener(binding.NewDataListener(func() {
		value, err := data.Get()
		if err != nil {
			log.Printf("Warning: failed to read bound value: %v", err)
			return
		}
		c.SetValue(value)
	}))
}

func trimLabel(text string) string {
	if n := len(text) - len(LabelSuffix); n >= 0 && text[n:] == LabelSuffix {
		return text[:n]
	}
	return text
}
