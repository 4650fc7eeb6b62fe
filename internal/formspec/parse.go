package formspec

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ytget/formkit/internal/model"
	"github.com/ytget/formkit/internal/numeric"
	"github.com/ytget/formkit/internal/platform"
)

// Slider defaults applied when a form omits them
const (
	DefaultSliderMin   = 0.0
	DefaultSliderSteps = 100
)

// GeneratedIDPrefix prefixes ids assigned to fields that have none
const GeneratedIDPrefix = "field-"

// maxSuggestionDistance bounds the edit distance of "did you mean" hints
const maxSuggestionDistance = 3

//go:embed default_form.yaml
var defaultForm []byte

// ErrInvalidForm matches every *ValidationError
var ErrInvalidForm = errors.New("invalid form")

// Issue is a single validation problem
type Issue struct {
	Field   string // e.g. `fields[2] "temperature"`, empty for document-level issues
	Message string
}

// String formats the issue for display
func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// ValidationError lists every problem found in a form document
type ValidationError struct {
	Source string
	Issues []Issue
}

// Error implements error
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", e.Source, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrInvalidForm) succeed
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}

type document struct {
	Title  string     `yaml:"title"`
	Fields []rawField `yaml:"fields"`
}

type rawField struct {
	ID          string    `yaml:"id"`
	Kind        string    `yaml:"kind"`
	Label       string    `yaml:"label"`
	Placeholder string    `yaml:"placeholder"`
	Default     yaml.Node `yaml:"default"`
	Min         *float64  `yaml:"min"`
	Max         *float64  `yaml:"max"`
	Step        *float64  `yaml:"step"`
	Precision   *int      `yaml:"precision"`
	Gate        string    `yaml:"gate"`
	Color       string    `yaml:"color"`
	Options     []string  `yaml:"options"`
	Link        *Link     `yaml:"link"`
}

// Load reads and parses a form file
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	return Parse(data, path)
}

// Default returns the built-in chat settings form
func Default() *Form {
	form, err := Parse(defaultForm, "default_form.yaml")
	if err != nil {
		panic(fmt.Sprintf("formspec: built-in form is invalid: %v", err))
	}
	return form
}

// Parse decodes a YAML form document. Unknown keys are rejected. Validation
// problems are collected into a *ValidationError.
func Parse(data []byte, source string) (*Form, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Source: source, Issues: []Issue{{Message: "document is empty"}}}
		}
		return nil, fmt.Errorf("%s: parse form: %w", source, err)
	}

	form := &Form{Title: strings.TrimSpace(doc.Title)}
	var issues []Issue
	if len(doc.Fields) == 0 {
		issues = append(issues, Issue{Message: "form has no fields"})
	}

	seen := make(map[string]int, len(doc.Fields))
	for i, raw := range doc.Fields {
		field, fieldIssues := normaliseField(i, raw)

		name := fieldName(i, field.ID)
		for _, msg := range fieldIssues {
			issues = append(issues, Issue{Field: name, Message: msg})
		}

		if first, exists := seen[field.ID]; exists {
			issues = append(issues, Issue{Field: name, Message: fmt.Sprintf("duplicate id, first used by fields[%d]", first)})
		} else {
			seen[field.ID] = i
		}

		form.Fields = append(form.Fields, field)
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Source: source, Issues: issues}
	}
	return form, nil
}

func fieldName(index int, id string) string {
	if strings.HasPrefix(id, GeneratedIDPrefix) {
		return fmt.Sprintf("fields[%d]", index)
	}
	return fmt.Sprintf("fields[%d] %q", index, id)
}

func normaliseField(index int, raw rawField) (Field, []string) {
	var issues []string

	field := Field{
		ID:          strings.TrimSpace(raw.ID),
		Kind:        Kind(strings.ToLower(strings.TrimSpace(raw.Kind))),
		Label:       strings.TrimSpace(raw.Label),
		Placeholder: raw.Placeholder,
	}
	if field.ID == "" {
		field.ID = generatedID(index, field.Kind, field.Label)
	}
	if field.Label == "" {
		issues = append(issues, "label is required")
	}

	if !raw.isSlider() {
		if raw.Min != nil || raw.Max != nil || raw.Step != nil || raw.Precision != nil || raw.Gate != "" || raw.Color != "" {
			issues = append(issues, "min, max, step, precision, gate and color are only valid for slider fields")
		}
	}
	if field.Kind != KindSelect && len(raw.Options) > 0 {
		issues = append(issues, "options are only valid for select fields")
	}
	if field.Kind != KindPassword && raw.Link != nil {
		issues = append(issues, "link is only valid for password fields")
	}

	switch field.Kind {
	case KindText, KindTextArea:
		issues = append(issues, decodeText(raw, &field)...)
	case KindPassword:
		issues = append(issues, decodeText(raw, &field)...)
		issues = append(issues, normaliseLink(raw, &field)...)
	case KindSelect:
		issues = append(issues, normaliseSelect(raw, &field)...)
	case KindSlider:
		issues = append(issues, normaliseSlider(raw, &field)...)
	case "":
		issues = append(issues, "kind is required")
	default:
		msg := fmt.Sprintf("unknown kind %q", raw.Kind)
		if suggestion := suggestKind(string(field.Kind)); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		issues = append(issues, msg)
	}

	return field, issues
}

// generatedID derives the id of a field that has none from its position,
// kind and label, so stored values survive reloads of the same file
func generatedID(index int, kind Kind, label string) string {
	name := fmt.Sprintf("formkit:field/%d/%s/%s", index, kind, label)
	return GeneratedIDPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func (raw rawField) isSlider() bool {
	return Kind(strings.ToLower(strings.TrimSpace(raw.Kind))) == KindSlider
}

func decodeText(raw rawField, field *Field) []string {
	if raw.Default.Kind == 0 {
		return nil
	}
	if raw.Default.Kind != yaml.ScalarNode {
		return []string{"default must be a scalar"}
	}
	field.Text = raw.Default.Value
	return nil
}

func normaliseLink(raw rawField, field *Field) []string {
	if raw.Link == nil {
		return nil
	}

	var issues []string
	link := &Link{Label: strings.TrimSpace(raw.Link.Label), URL: strings.TrimSpace(raw.Link.URL)}
	if link.Label == "" {
		issues = append(issues, "link label is required")
	}
	if _, err := platform.ParseLink(link.URL); err != nil {
		issues = append(issues, err.Error())
	}
	field.Link = link
	return issues
}

func normaliseSelect(raw rawField, field *Field) []string {
	field.Options = model.Options(raw.Options)
	if err := field.Options.Validate(); err != nil {
		return []string{err.Error()}
	}

	if issues := decodeText(raw, field); len(issues) > 0 {
		return issues
	}
	if raw.Default.Kind == 0 {
		field.Text = field.Options[0]
		return nil
	}
	if !field.Options.Contains(field.Text) {
		return []string{fmt.Sprintf("default %q is not one of the options", field.Text)}
	}
	return nil
}

func normaliseSlider(raw rawField, field *Field) []string {
	var issues []string

	bounds := model.NewBounds(DefaultSliderMin, 0, 0)
	if raw.Min != nil {
		bounds.Min = *raw.Min
	}
	if raw.Max == nil {
		issues = append(issues, "max is required")
	} else {
		bounds.Max = *raw.Max
	}
	if raw.Step != nil {
		bounds.Step = *raw.Step
	} else if raw.Max != nil {
		bounds.Step = (bounds.Max - bounds.Min) / DefaultSliderSteps
	}
	if raw.Precision != nil {
		bounds.Precision = *raw.Precision
	}
	if raw.Max != nil {
		if err := bounds.Validate(); err != nil {
			issues = append(issues, err.Error())
		}
	}
	field.Bounds = bounds

	field.Number = bounds.Min
	if raw.Default.Kind != 0 {
		n, err := strconv.ParseFloat(strings.TrimSpace(raw.Default.Value), 64)
		switch {
		case raw.Default.Kind != yaml.ScalarNode || err != nil:
			issues = append(issues, fmt.Sprintf("default %q is not a number", raw.Default.Value))
		case !bounds.Contains(n):
			issues = append(issues, fmt.Sprintf("default %g is outside [%g, %g]", n, bounds.Min, bounds.Max))
		default:
			field.Number = n
		}
	}

	field.Gate = strings.ToLower(strings.TrimSpace(raw.Gate))
	if _, ok := numeric.GateByName(field.Gate); !ok {
		issues = append(issues, fmt.Sprintf("unknown gate %q (expected %q or %q)", raw.Gate, numeric.GatePositional, numeric.GatePrefix))
	}

	if raw.Color != "" {
		c, err := parseHexColor(raw.Color)
		if err != nil {
			issues = append(issues, err.Error())
		} else {
			field.Color = c
		}
	}

	return issues
}

func suggestKind(kind string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, known := range Kinds {
		if d := levenshtein.ComputeDistance(kind, string(known)); d < bestDistance {
			best, bestDistance = string(known), d
		}
	}
	return best
}

// parseHexColor accepts #rgb and #rrggbb
func parseHexColor(s string) (*color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}
	return &color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
