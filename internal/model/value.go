package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when a pending value cannot be resolved to a number
var ErrNotANumber = errors.New("value is not a number")

// ValueKind tells whether a Value holds a number or raw entry text
type ValueKind int

const (
	// ValueConfirmed holds a number, either from a slider or from a resolved edit
	ValueConfirmed ValueKind = iota

	// ValuePending holds text accepted from the numeric entry but not yet
	// coerced to a number
	ValuePending
)

// String returns the name of the kind
func (k ValueKind) String() string {
	switch k {
	case ValueConfirmed:
		return "confirmed"
	case ValuePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Value is what a numeric input commits: a confirmed number or the pending
// text the user is typing. Callers resolve pending values before using them
// in any computation.
type Value struct {
	kind   ValueKind
	number float64
	text   string
}

// Confirmed creates a value holding n
func Confirmed(n float64) Value {
	return Value{kind: ValueConfirmed, number: n}
}

// Pending creates a value holding raw entry text
func Pending(raw string) Value {
	return Value{kind: ValuePending, text: raw}
}

// Kind returns the kind of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsPending returns true if the value still holds raw text
func (v Value) IsPending() bool {
	return v.kind == ValuePending
}

// Text returns the raw text of a pending value, or the shortest
// representation of a confirmed number
func (v Value) Text() string {
	if v.kind == ValuePending {
		return v.text
	}
	return strconv.FormatFloat(v.number, 'g', -1, 64)
}

// Float returns the number held by the value. Pending text is parsed;
// false is returned when it is not a finite number.
func (v Value) Float() (float64, bool) {
	if v.kind == ValueConfirmed {
		return v.number, true
	}
	return ParseNumber(v.text)
}

// Resolve converts the value into a confirmed number clamped to b
func (v Value) Resolve(b Bounds) (Value, error) {
	n, ok := v.Float()
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrNotANumber, v.text)
	}
	return Confirmed(b.Clamp(n)), nil
}

// String implements fmt.Stringer
func (v Value) String() string {
	if v.kind == ValuePending {
		return fmt.Sprintf("pending(%q)", v.text)
	}
	return fmt.Sprintf("confirmed(%s)", v.Text())
}

// ParseNumber parses raw as a finite floating point number. Surrounding
// whitespace is ignored; empty text, NaN and infinities are rejected.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(n) {
		return 0, false
	}
	return n, true
}
