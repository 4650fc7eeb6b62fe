package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/formkit/internal/config"
	"github.com/ytget/formkit/internal/formspec"
	"github.com/ytget/formkit/internal/platform"
)

// RootUI is the playground window: it renders a form, shows the committed
// values, and reloads the form file when it changes on disk
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	options      config.Options

	formView   *FormView
	formPath   string
	formHolder *fyne.Container

	summaryTitle *widget.Label
	summaryLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationMu        sync.Mutex
	notificationTimer     *time.Timer

	cancelWatch context.CancelFunc
}

// NewRootUI creates the playground window content. Process options take
// precedence over the stored settings.
func NewRootUI(window fyne.Window, app fyne.App, opts config.Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	if opts.UI.Language != "" {
		localization.SetLanguage(opts.UI.Language)
	} else {
		localization.SetLanguage(settings.GetLanguage())
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		options:      opts,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	formPath := opts.Form.Path
	if formPath == "" {
		formPath = settings.GetFormPath()
	}
	if err := ui.LoadForm(formPath); err != nil {
		log.Printf("Warning: %v; showing the built-in form", err)
		ui.showForm(formspec.Default(), "")
	}
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.formHolder = container.NewStack()

	ui.summaryTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyCommittedValues), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.summaryLabel = widget.NewLabel("")
	ui.summaryLabel.Wrapping = fyne.TextWrapWord
	summary := container.NewVBox(widget.NewSeparator(), ui.summaryTitle, ui.summaryLabel)

	scroll := container.NewVScroll(ui.formHolder)
	scroll.SetMinSize(fyne.NewSize(FormMinWidth, FormMinHeight))

	content := container.NewBorder(
		ui.notificationContainer, // top
		summary,                  // bottom
		nil,                      // left
		nil,                      // right
		scroll,                   // center
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReloadForm), ui.reloadForm)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// LoadForm shows the form stored at path, or the built-in form when path
// is empty. The current form stays on screen when loading fails.
func (ui *RootUI) LoadForm(path string) error {
	form, err := loadForm(path)
	if err != nil {
		ui.showNotification(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyFormLoadFailed), err))
		return err
	}

	ui.showForm(form, path)
	ui.watchForm(path)
	return nil
}

// FormView returns the form on screen
func (ui *RootUI) FormView() *FormView {
	return ui.formView
}

// Close stores numbers still being typed and stops watching the form file
func (ui *RootUI) Close() {
	if ui.formView != nil {
		ui.formView.ResolvePending()
	}
	ui.stopWatching()

	ui.notificationMu.Lock()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationMu.Unlock()
}

func loadForm(path string) (*formspec.Form, error) {
	if path == "" {
		return formspec.Default(), nil
	}
	return formspec.Load(path)
}

func (ui *RootUI) showForm(form *formspec.Form, path string) {
	if ui.formView != nil {
		ui.formView.ResolvePending()
	}
	ui.formPath = path
	ui.formView = NewFormView(form, ui.settings, ui.localization)
	ui.formView.SetOnChange(func(string) { ui.refreshSummary() })
	ui.formView.SetOnLinkError(func(err error) {
		ui.showNotification(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyErrorOpeningLink), err))
	})

	ui.formHolder.Objects = []fyne.CanvasObject{ui.formView.Content()}
	ui.formHolder.Refresh()
	ui.refreshTitle()
	ui.refreshSummary()
}

// reloadForm reads the current form file again
func (ui *RootUI) reloadForm() {
	form, err := loadForm(ui.formPath)
	if err != nil {
		ui.showNotification(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyFormLoadFailed), err))
		return
	}
	ui.showForm(form, ui.formPath)
	ui.showNotification(ui.localization.GetText(KeyFormReloaded))
}

func (ui *RootUI) watchForm(path string) {
	ui.stopWatching()
	if path == "" || !ui.options.Form.Watch {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	err := platform.WatchFile(ctx, path, platform.DefaultWatchDebounce, func() {
		fyne.Do(ui.reloadForm)
	})
	if err != nil {
		cancel()
		log.Printf("Warning: form changes will not be picked up: %v", err)
		return
	}
	ui.cancelWatch = cancel
}

func (ui *RootUI) stopWatching() {
	if ui.cancelWatch != nil {
		ui.cancelWatch()
		ui.cancelWatch = nil
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.refreshTitle()
	ui.summaryTitle.SetText(ui.localization.GetText(KeyCommittedValues))
	if ui.formView != nil {
		ui.formView.SetLocalization(ui.localization)
	}
	ui.refreshSummary()
}

func (ui *RootUI) refreshTitle() {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.formView != nil && ui.formView.Form().Title != "" {
		title = ui.formView.Form().Title + " - " + title
	}
	ui.window.SetTitle(title)
}

func (ui *RootUI) refreshSummary() {
	if ui.formView == nil {
		return
	}
	ui.summaryLabel.SetText(strings.Join(ui.formView.Summary(), "\n"))
}

// showNotification displays a message above the form and hides it after
// NotificationAutoHide
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
	})

	ui.notificationMu.Lock()
	defer ui.notificationMu.Unlock()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	if path := ui.settings.GetFormPath(); path != ui.formPath {
		if err := ui.LoadForm(path); err != nil {
			return
		}
	}
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}
