package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeyFormPath    = "form_path"
	KeyFieldPrefix = "field."
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages persisted user settings and the committed values of
// form fields
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetFormPath returns the form file chosen by the user. An empty path means
// the built-in form.
func (s *Settings) GetFormPath() string {
	return s.app.Preferences().String(KeyFormPath)
}

// SetFormPath sets the form file path
func (s *Settings) SetFormPath(path string) {
	s.app.Preferences().SetString(KeyFormPath, path)
}

// String returns the committed text of a form field
func (s *Settings) String(fieldID, fallback string) string {
	return s.app.Preferences().StringWithFallback(fieldKey(fieldID), fallback)
}

// SetString stores the committed text of a form field
func (s *Settings) SetString(fieldID, value string) {
	s.app.Preferences().SetString(fieldKey(fieldID), value)
}

// Float returns the committed number of a form field
func (s *Settings) Float(fieldID string, fallback float64) float64 {
	return s.app.Preferences().FloatWithFallback(fieldKey(fieldID), fallback)
}

// SetFloat stores the committed number of a form field
func (s *Settings) SetFloat(fieldID string, value float64) {
	s.app.Preferences().SetFloat(fieldKey(fieldID), value)
}

// ClearField removes the stored value of a form field
func (s *Settings) ClearField(fieldID string) {
	s.app.Preferences().RemoveValue(fieldKey(fieldID))
}

func fieldKey(fieldID string) string {
	return KeyFieldPrefix + fieldID
}
