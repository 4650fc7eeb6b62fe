package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/formkit/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.Show()

	if sd.languageSelect.Value() != config.DefaultLanguage {
		t.Errorf("Expected default language selected, got %q", sd.languageSelect.Value())
	}

	sd.languageSelect.Select("ru")
	sd.formPathEntry.SetValue("/tmp/chat.yaml")
	sd.onSave(true)

	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
	if settings.GetFormPath() != "/tmp/chat.yaml" {
		t.Errorf("Expected form path to be stored, got %q", settings.GetFormPath())
	}
	if saved != 1 {
		t.Errorf("Expected one save callback, got %d", saved)
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	settings.SetFormPath("/tmp/keep.yaml")

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved = true })
	sd.Show()
	sd.formPathEntry.SetValue("")
	sd.onSave(false)

	if settings.GetFormPath() != "/tmp/keep.yaml" || saved {
		t.Errorf("Cancel should keep settings, got %q saved=%v", settings.GetFormPath(), saved)
	}
}

func TestSettingsDialog_LanguageOptions(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	sd := NewSettingsDialog(config.NewSettings(app), NewLocalization(), w, nil)
	options := sd.languageOptions()

	if len(options) != 4 || options[0] != config.DefaultLanguage {
		t.Errorf("Expected system default first among 4 options, got %v", options)
	}
}
