package formspec

import (
	"image/color"

	"github.com/ytget/formkit/internal/model"
)

// Kind names a field widget
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindPassword Kind = "password"
	KindSelect   Kind = "select"
	KindSlider   Kind = "slider"
)

// Kinds lists every supported field kind
var Kinds = []Kind{KindText, KindTextArea, KindPassword, KindSelect, KindSlider}

// IsNumeric returns true for kinds whose value is a number
func (k Kind) IsNumeric() bool {
	return k == KindSlider
}

// Link is an external link shown next to a field label
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Form is a validated form description
type Form struct {
	Title  string
	Fields []Field
}

// Field is one labeled input of a form. Only the members relevant to Kind
// are set.
type Field struct {
	ID          string
	Kind        Kind
	Label       string
	Placeholder string

	// Text is the default of text, textarea, password and select fields
	Text string

	// Number, Bounds, Gate and Color describe slider fields
	Number float64
	Bounds model.Bounds
	Gate   string
	Color  *color.NRGBA

	Options model.Options
	Link    *Link
}

// Field returns the field with the given id
func (f *Form) Field(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
