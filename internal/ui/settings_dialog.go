package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/formkit/internal/config"
	"github.com/ytget/formkit/internal/model"
	"github.com/ytget/formkit/internal/platform"
)

// SettingsDialog edits the language and the form file
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	languageSelect *LabeledSelect
	formPathEntry  *LabeledEntry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.languageSelect = NewLabeledSelect(loc.GetText(KeyLanguage), sd.languageOptions(), config.DefaultLanguage, nil)

	sd.formPathEntry = NewLabeledEntry(loc.GetText(KeyFormFile), "", nil)
	sd.formPathEntry.SetPlaceHolder(loc.GetText(KeyFormFileHint))
	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseForm)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(loc.GetText(KeyFormSettings)),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, container.NewVBox(widget.NewLabel(""), browseBtn), sd.formPathEntry),
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 320))
}

// languageOptions lists the language codes, system default first
func (sd *SettingsDialog) languageOptions() model.Options {
	options := model.Options{config.DefaultLanguage}
	for _, code := range sd.localization.LanguageCodes() {
		if _, ok := sd.settings.GetLanguageOptions()[code]; ok {
			options = append(options, code)
		}
	}
	return options
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetValue(sd.settings.GetLanguage())
	sd.formPathEntry.SetValue(sd.settings.GetFormPath())
}

func (sd *SettingsDialog) onBrowseForm() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.formPathEntry.SetValue(reader.URI().Path())
	}, sd.window)

	filter := make([]string, len(platform.FormFileExtensions))
	copy(filter, platform.FormFileExtensions)
	open.SetFilter(storage.NewExtensionFileFilter(filter))
	open.Show()
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if lang := sd.languageSelect.Value(); lang != "" {
		sd.settings.SetLanguage(lang)
	}
	sd.settings.SetFormPath(sd.formPathEntry.Value())

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
