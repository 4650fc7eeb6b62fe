package ui

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/formkit/internal/config"
	"github.com/ytget/formkit/internal/formspec"
)

func writeForm(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write form: %v", err)
	}
}

func TestNewRootUI_DefaultForm(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})
	defer ui.Close()

	if ui.FormView() == nil {
		t.Fatal("Expected a form on screen")
	}
	if _, ok := ui.FormView().Widget("temperature"); !ok {
		t.Error("Built-in form should be shown")
	}
	if w.Title() != "Chat settings - Formkit Playground" {
		t.Errorf("Unexpected title %q", w.Title())
	}
	if w.MainMenu() == nil || len(w.MainMenu().Items) != 2 {
		t.Error("Expected File and Language menus")
	}
}

func TestRootUI_LoadForm(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})
	defer ui.Close()

	path := filepath.Join(t.TempDir(), "form.yaml")
	writeForm(t, path, "title: Profile\nfields:\n  - {id: nick, kind: text, label: Nick}\n")

	if err := ui.LoadForm(path); err != nil {
		t.Fatalf("LoadForm() error: %v", err)
	}
	if _, ok := ui.FormView().Widget("nick"); !ok {
		t.Error("Loaded form should be shown")
	}
	if w.Title() != "Profile - Formkit Playground" {
		t.Errorf("Unexpected title %q", w.Title())
	}

	writeForm(t, path, "title: Profile\nfields:\n  - {id: nick, kind: text, label: Nick}\n  - {id: age, kind: slider, label: Age, max: 120}\n")
	ui.reloadForm()
	if _, ok := ui.FormView().Widget("age"); !ok {
		t.Error("Reload should pick up the new field")
	}

	writeForm(t, path, "fields: []\n")
	ui.reloadForm()
	if _, ok := ui.FormView().Widget("age"); !ok {
		t.Error("Invalid forms should keep the current form on screen")
	}
	if !ui.notificationContainer.Visible() {
		t.Error("Invalid forms should be reported")
	}
}

func TestRootUI_LoadFormErrors(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})
	defer ui.Close()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeForm(t, path, "fields:\n  - {id: a, kind: slidr, label: A}\n")

	err := ui.LoadForm(path)
	if !errors.Is(err, formspec.ErrInvalidForm) {
		t.Fatalf("Expected ErrInvalidForm, got %v", err)
	}
	if _, ok := ui.FormView().Widget("temperature"); !ok {
		t.Error("Failed load should keep the built-in form")
	}
	if ui.notificationLabel.Text == "" {
		t.Error("Failed load should show a notification")
	}
}

func TestNewRootUI_MissingFormFallsBack(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	opts := config.Options{Form: config.FormOptions{Path: filepath.Join(t.TempDir(), "missing.yaml")}}
	ui := NewRootUI(w, app, opts)
	defer ui.Close()

	if _, ok := ui.FormView().Widget("temperature"); !ok {
		t.Error("Missing form file should fall back to the built-in form")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})
	defer ui.Close()

	ui.onLanguageChange("pt")

	if ui.settings.GetLanguage() != "pt" {
		t.Errorf("Language should be stored, got %s", ui.settings.GetLanguage())
	}
	if ui.summaryTitle.Text != "Valores Confirmados" {
		t.Errorf("Expected Portuguese summary title, got %q", ui.summaryTitle.Text)
	}
	password := mustWidget[*LabeledPassword](t, ui.FormView(), "api_key")
	if password.toggle.Text != "Mostrar" {
		t.Errorf("Expected Portuguese toggle text, got %q", password.toggle.Text)
	}
}

func TestRootUI_SummaryFollowsCommits(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})
	defer ui.Close()

	mustWidget[*LabeledSlider](t, ui.FormView(), "temperature").HandleSliderEdit(1.25)

	if !containsLine(ui.summaryLabel.Text, "Temperature = 1.25") {
		t.Errorf("Summary should show the committed value, got %q", ui.summaryLabel.Text)
	}
	if got := ui.settings.Float("temperature", 0); got != 1.25 {
		t.Errorf("Committed value should be stored, got %g", got)
	}
}

func containsLine(text, line string) bool {
	return slices.Contains(strings.Split(text, "\n"), line)
}

func TestRootUI_ResolvesPendingNumbers(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	ui := NewRootUI(w, app, config.Options{})

	mustWidget[*LabeledSlider](t, ui.FormView(), "temperature").HandleTextEdit("1.3")
	ui.reloadForm()
	if got := ui.settings.Float("temperature", 0); got != 1.3 {
		t.Errorf("Reload should store the typed value, got %g", got)
	}
	if v, _ := ui.FormView().Number("temperature"); v.String() != "confirmed(1.3)" {
		t.Errorf("Reloaded form should show the typed value, got %s", v)
	}

	mustWidget[*LabeledSlider](t, ui.FormView(), "temperature").HandleTextEdit("0.4")
	ui.Close()
	if got := ui.settings.Float("temperature", 0); got != 0.4 {
		t.Errorf("Close should store the typed value, got %g", got)
	}
}
