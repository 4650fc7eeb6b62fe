// Package formspec reads declarative form descriptions: an ordered list of
// labeled fields (text, textarea, password, select, slider) with their
// defaults, bounds, options and links. Parse normalises and validates a
// document and reports every problem it finds, qualified by field.
package formspec
