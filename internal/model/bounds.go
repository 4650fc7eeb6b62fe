package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimal digits shown in numeric entries
const DefaultPrecision = 2

// ErrInvalidBounds is returned by Bounds.Validate
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds describes the closed range, slider step and display precision of a
// numeric value.
type Bounds struct {
	Min       float64
	Max       float64
	Step      float64
	Precision int
}

// NewBounds creates bounds with the default display precision
func NewBounds(min, max, step float64) Bounds {
	return Bounds{Min: min, Max: max, Step: step, Precision: DefaultPrecision}
}

// Validate reports whether the bounds describe a usable range
func (b Bounds) Validate() error {
	if !isFinite(b.Min) || !isFinite(b.Max) {
		return fmt.Errorf("%w: min and max must be finite", ErrInvalidBounds)
	}
	if b.Min > b.Max {
		return fmt.Errorf("%w: min %g is greater than max %g", ErrInvalidBounds, b.Min, b.Max)
	}
	if !isFinite(b.Step) || b.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidBounds, b.Step)
	}
	if b.Precision < 0 {
		return fmt.Errorf("%w: precision must not be negative, got %d", ErrInvalidBounds, b.Precision)
	}
	return nil
}

// Contains returns true if v lies within [Min, Max]
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Clamp limits v to [Min, Max]
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Snap moves v to the nearest step counted from Min and clamps the result.
// Bounds with a non-positive step only clamp.
func (b Bounds) Snap(v float64) float64 {
	if b.Step <= 0 {
		return b.Clamp(v)
	}
	steps := math.Round((v - b.Min) / b.Step)
	snapped := b.Min + steps*b.Step
	// Trim float noise such as 0.30000000000000004 at the display precision.
	if p := b.precision(); p > 0 {
		scale := math.Pow(10, float64(p+4))
		snapped = math.Round(snapped*scale) / scale
	}
	return b.Clamp(snapped)
}

// Format renders v with the configured number of decimal digits
func (b Bounds) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', b.precision(), 64)
}

func (b Bounds) precision() int {
	if b.Precision < 0 {
		return DefaultPrecision
	}
	return b.Precision
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
