package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyFormFile            = "form_file"
	KeyFormFileHint        = "form_file_hint"
	KeyReloadForm          = "reload_form"
	KeyInterfaceSettings   = "interface_settings"
	KeyFormSettings        = "form_settings"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeyShow                = "show"
	KeyHide                = "hide"
	KeyTextAreaPlaceholder = "textarea_placeholder"
	KeySettingsSaved       = "settings_saved"
	KeyFormLoaded          = "form_loaded"
	KeyFormReloaded        = "form_reloaded"
	KeyFormLoadFailed      = "form_load_failed"
	KeyCommittedValues     = "committed_values"
	KeyEditing             = "editing"
	KeyErrorOpeningLink    = "error_opening_link"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		// System locale detection is not wired; English is the fallback.
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the available language codes in a stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Formkit Playground",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyFormFile:            "Form File",
		KeyFormFileHint:        "Leave empty for the built-in form",
		KeyReloadForm:          "Reload Form",
		KeyInterfaceSettings:   "Interface Settings",
		KeyFormSettings:        "Form Settings",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeyShow:                "Show",
		KeyHide:                "Hide",
		KeyTextAreaPlaceholder: "Enter text here...",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyFormLoaded:          "Form loaded",
		KeyFormReloaded:        "Form reloaded",
		KeyFormLoadFailed:      "Could not load form",
		KeyCommittedValues:     "Committed Values",
		KeyEditing:             "editing",
		KeyErrorOpeningLink:    "Error opening link",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Песочница Formkit",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyFormFile:            "Файл формы",
		KeyFormFileHint:        "Оставьте пустым для встроенной формы",
		KeyReloadForm:          "Перезагрузить форму",
		KeyInterfaceSettings:   "Настройки интерфейса",
		KeyFormSettings:        "Настройки формы",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeyShow:                "Показать",
		KeyHide:                "Скрыть",
		KeyTextAreaPlaceholder: "Введите текст...",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyFormLoaded:          "Форма загружена",
		KeyFormReloaded:        "Форма перезагружена",
		KeyFormLoadFailed:      "Не удалось загрузить форму",
		KeyCommittedValues:     "Сохранённые значения",
		KeyEditing:             "редактируется",
		KeyErrorOpeningLink:    "Ошибка открытия ссылки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Playground Formkit",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyFormFile:            "Arquivo de Formulário",
		KeyFormFileHint:        "Deixe vazio para o formulário embutido",
		KeyReloadForm:          "Recarregar Formulário",
		KeyInterfaceSettings:   "Configurações de Interface",
		KeyFormSettings:        "Configurações do Formulário",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeyShow:                "Mostrar",
		KeyHide:                "Ocultar",
		KeyTextAreaPlaceholder: "Digite o texto aqui...",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyFormLoaded:          "Formulário carregado",
		KeyFormReloaded:        "Formulário recarregado",
		KeyFormLoadFailed:      "Não foi possível carregar o formulário",
		KeyCommittedValues:     "Valores Confirmados",
		KeyEditing:             "editando",
		KeyErrorOpeningLink:    "Erro ao abrir link",
	}
}
