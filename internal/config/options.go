package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FORMKIT_FORM_PATH
const EnvPrefix = "FORMKIT"

// DefaultAppID is the Fyne application ID used when none is configured
const DefaultAppID = "com.ytget.formkit"

// Options holds process-level configuration. Persisted user choices live in
// Settings; Options only selects how the process starts.
type Options struct {
	App  AppOptions
	Form FormOptions
	UI   UIOptions
}

// AppOptions holds application identity settings.
type AppOptions struct {
	ID string
}

// FormOptions selects the form file and whether it is reloaded on change.
type FormOptions struct {
	Path  string
	Watch bool
}

// UIOptions holds presentation settings.
type UIOptions struct {
	Language string
	Compact  bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		App:  AppOptions{ID: DefaultAppID},
		Form: FormOptions{Watch: true},
		UI:   UIOptions{Compact: true},
	}
}

// LoadOptions reads options from defaults, an optional YAML config file and
// the environment. The config file is $FORMKIT_CONFIG when set, otherwise
// config.yaml in the user config directory.
func LoadOptions() (Options, error) {
	v := viper.New()

	defaults := DefaultOptions()
	v.SetDefault("app.id", defaults.App.ID)
	v.SetDefault("form.path", defaults.Form.Path)
	v.SetDefault("form.watch", defaults.Form.Watch)
	v.SetDefault("ui.language", defaults.UI.Language)
	v.SetDefault("ui.compact", defaults.UI.Compact)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "formkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// An explicitly named file must exist; the default location is optional.
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgPath != "" {
			return Options{}, fmt.Errorf("read config: %w", err)
		}
	}

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if o.App.ID == "" {
		o.App.ID = DefaultAppID
	}
	return o, nil
}
