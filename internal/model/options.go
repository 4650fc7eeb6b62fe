package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateOption is returned when an option list repeats a value
var ErrDuplicateOption = errors.New("duplicate option")

// ErrNoOptions is returned when an option list is empty
var ErrNoOptions = errors.New("option list is empty")

// Options is the ordered list of choices offered by a dropdown. Each option
// is both the displayed text and the key of its entry.
type Options []string

// Index returns the position of value, or -1 if it is not an option
func (o Options) Index(value string) int {
	for i, opt := range o {
		if opt == value {
			return i
		}
	}
	return -1
}

// Contains returns true if value is one of the options
func (o Options) Contains(value string) bool {
	return o.Index(value) >= 0
}

// Validate checks that the list is non-empty and keyed uniquely
func (o Options) Validate() error {
	if len(o) == 0 {
		return ErrNoOptions
	}
	seen := make(map[string]int, len(o))
	for i, opt := range o {
		if first, exists := seen[opt]; exists {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateOption, opt, first, i)
		}
		seen[opt] = i
	}
	return nil
}

// Strings returns a copy of the options as a plain slice
func (o Options) Strings() []string {
	out := make([]string, len(o))
	copy(out, o)
	return out
}
