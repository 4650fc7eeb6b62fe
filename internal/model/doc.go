// Package model defines the value types shared by the widgets: numeric bounds,
// the confirmed/pending value union committed by numeric inputs, and ordered
// option lists for dropdowns. Types are plain values with no UI dependency.
package model
