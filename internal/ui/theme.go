package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens paddings and text sizes so a whole form fits a
// small window
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 30, G: 136, B: 229, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // default 4
	case theme.SizeNameInnerPadding:
		return 6 // default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

// AccentTheme replaces the primary color of a base theme. Sliders use it
// to paint their track in the field's color.
type AccentTheme struct {
	fyne.Theme
	accent color.Color
}

// NewAccentTheme wraps base, or the current app theme when base is nil
func NewAccentTheme(base fyne.Theme, accent color.Color) *AccentTheme {
	if base == nil {
		base = currentTheme()
	}
	return &AccentTheme{Theme: base, accent: accent}
}

// Color returns the accent for primary and focus colors
func (t *AccentTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.accent
	case theme.ColorNameFocus:
		r, g, b, _ := t.accent.RGBA()
		return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0x7f}
	}
	return t.Theme.Color(name, variant)
}

func currentTheme() fyne.Theme {
	if app := fyne.CurrentApp(); app != nil {
		if th := app.Settings().Theme(); th != nil {
			return th
		}
	}
	return theme.DefaultTheme()
}
