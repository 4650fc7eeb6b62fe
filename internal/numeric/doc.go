// Package numeric holds the toolkit-independent logic of the bounded numeric
// input: the validation gates applied to every keystroke and the Input
// controller that keeps an entry field and a slider in sync.
package numeric
