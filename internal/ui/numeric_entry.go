package ui

import (
	"fyne.io/fyne/v2/widget"
)

// numericEntry is a single-line entry that reports focus loss, which is
// where typed numbers get resolved
type numericEntry struct {
	widget.Entry
	onBlur func()
}

func newNumericEntry() *numericEntry {
	e := &numericEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// FocusLost implements fyne.Focusable
func (e *numericEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}
