package numeric

import (
	"log"

	"github.com/ytget/formkit/internal/model"
)

// Input mediates edits of one bounded value coming from two surfaces: a text
// entry and a slider. The value itself belongs to the caller; Input only keeps
// the text being typed and the last numeric position shown by the slider.
type Input struct {
	bounds   model.Bounds
	gate     Gate
	onCommit func(model.Value)

	pending  string
	position float64
	dirty    bool // pending text was committed but not yet resolved
}

// Option configures an Input
type Option func(*Input)

// WithGate replaces the default Positional gate
func WithGate(gate Gate) Option {
	return func(in *Input) {
		if gate != nil {
			in.gate = gate
		}
	}
}

// NewInput creates an input showing current. A current value outside the
// bounds or invalid bounds are caller errors: they are logged and the input
// is created anyway.
func NewInput(current float64, bounds model.Bounds, onCommit func(model.Value), opts ...Option) *Input {
	if err := bounds.Validate(); err != nil {
		log.Printf("Warning: numeric input created with %v", err)
	} else if !bounds.Contains(current) {
		log.Printf("Warning: numeric input value %g is outside [%g, %g]", current, bounds.Min, bounds.Max)
	}

	in := &Input{
		bounds:   bounds,
		gate:     Positional,
		onCommit: onCommit,
		pending:  bounds.Format(current),
		position: current,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// TextEdit runs raw through the gate. Accepted text becomes the pending text
// and is committed as a pending value; rejected text is dropped and the
// pending text keeps its previous content. Bounds are not enforced here.
func (in *Input) TextEdit(raw string) bool {
	if !in.gate.Accept(raw) {
		return false
	}

	in.pending = raw
	if n, ok := model.ParseNumber(raw); ok {
		in.position = in.bounds.Clamp(n)
	}
	in.dirty = true
	in.commit(model.Pending(raw))
	return true
}

// SliderEdit commits v as is. The slider already keeps v within its range
// and step.
func (in *Input) SliderEdit(v float64) {
	in.position = v
	in.pending = in.bounds.Format(v)
	in.dirty = false
	in.commit(model.Confirmed(v))
}

// Blur resolves the pending text when the entry loses focus. Parseable text
// is clamped, reformatted and committed as a confirmed value. Text that does
// not parse reverts to the slider position without a commit. The returned
// flag reports whether a commit happened.
func (in *Input) Blur() (model.Value, bool) {
	if !in.dirty {
		in.pending = in.bounds.Format(in.position)
		return model.Confirmed(in.position), false
	}
	in.dirty = false

	resolved, err := model.Pending(in.pending).Resolve(in.bounds)
	if err != nil {
		in.pending = in.bounds.Format(in.position)
		return model.Confirmed(in.position), false
	}

	n, _ := resolved.Float()
	in.position = n
	in.pending = in.bounds.Format(n)
	in.commit(resolved)
	return resolved, true
}

// Reset shows v on both surfaces without committing. Owners call it when
// the value changes outside the input.
func (in *Input) Reset(v float64) {
	in.position = v
	in.pending = in.bounds.Format(v)
	in.dirty = false
}

// Pending returns the text shown in the entry
func (in *Input) Pending() string {
	return in.pending
}

// Position returns the value shown by the slider
func (in *Input) Position() float64 {
	return in.position
}

// Bounds returns the range of the input
func (in *Input) Bounds() model.Bounds {
	return in.bounds
}

func (in *Input) commit(v model.Value) {
	if in.onCommit != nil {
		in.onCommit(v)
	}
}
