// Package ui contains the Fyne widgets of the kit (labeled entry, text area,
// password field with link, dropdown, and the slider with numeric entry) and
// the playground window that renders a form description with them. Widget
// strings are localized via Localization.
package ui
