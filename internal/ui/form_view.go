package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/formkit/internal/formspec"
	"github.com/ytget/formkit/internal/model"
	"github.com/ytget/formkit/internal/numeric"
)

// maskedSummary stands in for secrets in the summary
const maskedSummary = "••••••"

// ValueStore persists committed field values between runs.
// config.Settings implements it on top of Fyne preferences.
type ValueStore interface {
	String(fieldID, fallback string) string
	SetString(fieldID, value string)
	Float(fieldID string, fallback float64) float64
	SetFloat(fieldID string, value float64)
}

// FormView renders a form with the labeled widgets and keeps the committed
// values. Text values are stored on every edit. Slider values are stored
// once they are confirmed; pending text stays in memory until it resolves.
type FormView struct {
	form         *formspec.Form
	store        ValueStore
	localization *Localization
	adaptive     *Adaptive

	widgets map[string]fyne.CanvasObject
	numbers map[string]model.Value
	content *fyne.Container

	onChange    func(fieldID string)
	onLinkError func(error)
}

// NewFormView builds widgets for every field of form. Stored values win
// over the defaults of the form.
func NewFormView(form *formspec.Form, store ValueStore, loc *Localization) *FormView {
	if loc == nil {
		loc = NewLocalization()
	}
	fv := &FormView{
		form:         form,
		store:        store,
		localization: loc,
		adaptive:     NewAdaptive(),
		widgets:      make(map[string]fyne.CanvasObject, len(form.Fields)),
		numbers:      make(map[string]model.Value),
	}
	fv.build()
	return fv
}

// Content returns the rendered form
func (fv *FormView) Content() fyne.CanvasObject {
	return fv.content
}

// Form returns the form description
func (fv *FormView) Form() *formspec.Form {
	return fv.form
}

// Widget returns the widget of a field
func (fv *FormView) Widget(fieldID string) (fyne.CanvasObject, bool) {
	w, ok := fv.widgets[fieldID]
	return w, ok
}

// SetOnChange sets a callback run after any field commits a value
func (fv *FormView) SetOnChange(fn func(fieldID string)) {
	fv.onChange = fn
}

// SetOnLinkError sets the handler for field links that fail to open
func (fv *FormView) SetOnLinkError(fn func(error)) {
	fv.onLinkError = fn
}

// Text returns the value of a text, textarea, password or select field
func (fv *FormView) Text(fieldID string) (string, bool) {
	switch w := fv.widgets[fieldID].(type) {
	case *LabeledEntry:
		return w.Value(), true
	case *LabeledTextArea:
		return w.Value(), true
	case *LabeledPassword:
		return w.Value(), true
	case *LabeledSelect:
		return w.Value(), true
	}
	return "", false
}

// Number returns the last value committed by a slider field. The value is
// pending while the user is typing; resolve it before computing with it.
func (fv *FormView) Number(fieldID string) (model.Value, bool) {
	v, ok := fv.numbers[fieldID]
	return v, ok
}

// Summary returns one "Label = value" line per field. Secrets are masked
// and unresolved numbers are marked as being edited.
func (fv *FormView) Summary() []string {
	lines := make([]string, 0, len(fv.form.Fields))
	for _, field := range fv.form.Fields {
		lines = append(lines, field.Label+SummarySeparator+fv.summaryValue(field))
	}
	return lines
}

// ResolvePending resolves numbers whose typed text was not confirmed yet,
// as if their entries lost focus. Parseable text is clamped and stored;
// anything else reverts to the last confirmed value.
func (fv *FormView) ResolvePending() {
	for _, field := range fv.form.Fields {
		if !field.Kind.IsNumeric() || !fv.numbers[field.ID].IsPending() {
			continue
		}
		if w, ok := fv.widgets[field.ID].(*LabeledSlider); ok {
			w.HandleBlur()
		}
	}
}

// SetLocalization updates the localized texts of the widgets
func (fv *FormView) SetLocalization(loc *Localization) {
	if loc == nil {
		return
	}
	fv.localization = loc
	for _, field := range fv.form.Fields {
		switch w := fv.widgets[field.ID].(type) {
		case *LabeledTextArea:
			if field.Placeholder == "" {
				w.SetLocalization(loc)
			}
		case *LabeledPassword:
			w.SetLocalization(loc)
		}
	}
}

func (fv *FormView) build() {
	objects := make([]fyne.CanvasObject, 0, len(fv.form.Fields))
	for _, field := range fv.form.Fields {
		w := fv.buildField(field)
		if w == nil {
			continue
		}
		fv.widgets[field.ID] = w
		objects = append(objects, w)
	}
	fv.content = container.NewPadded(fv.adaptive.FormContainer(objects...))
}

func (fv *FormView) buildField(field formspec.Field) fyne.CanvasObject {
	switch field.Kind {
	case formspec.KindText:
		w := NewLabeledEntry(field.Label, fv.store.String(field.ID, field.Text), fv.textChanged(field.ID))
		w.SetPlaceHolder(field.Placeholder)
		return w

	case formspec.KindTextArea:
		w := NewLabeledTextArea(field.Label, fv.store.String(field.ID, field.Text), fv.textChanged(field.ID))
		w.SetID(field.ID)
		w.SetLocalization(fv.localization)
		if field.Placeholder != "" {
			w.SetPlaceHolder(field.Placeholder)
		}
		return w

	case formspec.KindPassword:
		w := NewLabeledPassword(field.Label, fv.store.String(field.ID, field.Text), fv.textChanged(field.ID))
		w.SetLocalization(fv.localization)
		w.SetPlaceHolder(field.Placeholder)
		w.SetOnLinkError(fv.linkFailed)
		if field.Link != nil {
			if err := w.SetLink(field.Link.Label, field.Link.URL); err != nil {
				log.Printf("Warning: field %s: %v", field.ID, err)
			}
		}
		return w

	case formspec.KindSelect:
		value := fv.store.String(field.ID, field.Text)
		if !field.Options.Contains(value) {
			value = field.Text
		}
		return NewLabeledSelect(field.Label, field.Options, value, fv.textChanged(field.ID))

	case formspec.KindSlider:
		start := fv.store.Float(field.ID, field.Number)
		if !field.Bounds.Contains(start) {
			log.Printf("Warning: stored value %g of field %s is outside [%g, %g]", start, field.ID, field.Bounds.Min, field.Bounds.Max)
			start = field.Bounds.Clamp(start)
		}
		gate, ok := numeric.GateByName(field.Gate)
		if !ok {
			gate = numeric.Positional
		}

		fv.numbers[field.ID] = model.Confirmed(start)
		w := NewLabeledSlider(field.Label, start, field.Bounds, fv.numberCommitted(field.ID), numeric.WithGate(gate))
		w.SetOnRevert(fv.numberReverted(field.ID))
		if field.Color != nil {
			w.SetColor(field.Color)
		}
		return w
	}

	log.Printf("Warning: field %s has unsupported kind %q", field.ID, field.Kind)
	return nil
}

func (fv *FormView) textChanged(fieldID string) func(string) {
	return func(text string) {
		fv.store.SetString(fieldID, text)
		fv.notify(fieldID)
	}
}

func (fv *FormView) numberCommitted(fieldID string) func(model.Value) {
	return func(v model.Value) {
		fv.numbers[fieldID] = v
		if !v.IsPending() {
			n, _ := v.Float()
			fv.store.SetFloat(fieldID, n)
		}
		fv.notify(fieldID)
	}
}

func (fv *FormView) numberReverted(fieldID string) func(model.Value) {
	return func(v model.Value) {
		if !fv.numbers[fieldID].IsPending() {
			return
		}
		fv.numbers[fieldID] = v
		fv.notify(fieldID)
	}
}

func (fv *FormView) notify(fieldID string) {
	if fv.onChange != nil {
		fv.onChange(fieldID)
	}
}

func (fv *FormView) linkFailed(err error) {
	if fv.onLinkError != nil {
		fv.onLinkError(err)
	}
}

func (fv *FormView) summaryValue(field formspec.Field) string {
	if field.Kind.IsNumeric() {
		v := fv.numbers[field.ID]
		if v.IsPending() {
			return v.Text() + " (" + fv.localization.GetText(KeyEditing) + ")"
		}
		n, _ := v.Float()
		return field.Bounds.Format(n)
	}

	text, _ := fv.Text(field.ID)
	if field.Kind == formspec.KindPassword && text != "" {
		return maskedSummary
	}
	if field.Kind == formspec.KindTextArea {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	return text
}
