package numeric

import (
	"unicode/utf8"

	"github.com/ytget/formkit/internal/model"
)

// Gate decides whether a keystroke in the numeric entry is accepted
type Gate interface {
	Accept(raw string) bool
}

// GateFunc adapts a function to the Gate interface
type GateFunc func(raw string) bool

// Accept calls f(raw)
func (f GateFunc) Accept(raw string) bool {
	return f(raw)
}

// Gate names used in form files
const (
	GatePositional = "positional"
	GatePrefix     = "prefix"
)

var (
	// Positional accepts text that parses as a finite number, or whose second
	// character is a decimal point so that "0." can be typed. It does not
	// help with inputs such as "-" or "1e" that are incomplete at any other
	// position.
	Positional Gate = GateFunc(acceptPositional)

	// Prefix accepts any prefix of a decimal number token, including the
	// empty string.
	Prefix Gate = GateFunc(IsNumberPrefix)
)

// GateByName returns the gate registered under name. The empty name selects
// Positional.
func GateByName(name string) (Gate, bool) {
	switch name {
	case "", GatePositional:
		return Positional, true
	case GatePrefix:
		return Prefix, true
	default:
		return nil, false
	}
}

func acceptPositional(raw string) bool {
	if _, ok := model.ParseNumber(raw); ok {
		return true
	}
	// Second character, not second byte
	_, size := utf8.DecodeRuneInString(raw)
	return size < len(raw) && raw[size] == '.'
}

// IsNumberPrefix reports whether raw can still be completed into a decimal
// number: an optional sign, digits, at most one decimal point, more digits,
// and an exponent once the mantissa has at least one digit.
func IsNumberPrefix(raw string) bool {
	i := 0
	n := len(raw)

	if i < n && (raw[i] == '+' || raw[i] == '-') {
		i++
	}

	digits := 0
	for i < n && isDigit(raw[i]) {
		i++
		digits++
	}
	if i < n && raw[i] == '.' {
		i++
		for i < n && isDigit(raw[i]) {
			i++
			digits++
		}
	}
	if i == n {
		return true
	}

	if raw[i] != 'e' && raw[i] != 'E' {
		return false
	}
	if digits == 0 {
		return false
	}
	i++
	if i < n && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	for i < n && isDigit(raw[i]) {
		i++
	}
	return i == n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
