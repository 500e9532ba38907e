// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"mesonwire/internal/issue"
	"mesonwire/pkg/platform"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName names the per-user config directory.
	AppName = "mesonwire"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix starts every environment override: MESONWIRE_TOOL,
	// MESONWIRE_UI_VERBOSE, and so on.
	EnvPrefix = "MESONWIRE"
)

// validate reports field names by their toml tag so validation failures read
// as config keys, not Go identifiers.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ConfigDir returns the per-user mesonwire configuration directory:
// %APPDATA% on Windows, ~/Library/Application Support on macOS,
// $XDG_CONFIG_HOME (or ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	// Fill unset environment variables from a local .env file before viper
	// binds the environment. Existing variables are never displaced.
	_ = godotenv.Load()

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("definitions_dir", defaults.DefinitionsDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("tool", defaults.Tool)
	v.SetDefault("list_format", defaults.ListFormat)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	// Environment overrides: MESONWIRE_<KEY>, nested keys flattened with "_".
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		// An explicit --config file is used exclusively; a missing one is an
		// error rather than a silent fallthrough to defaults.
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'mesonwire config show' to see the effective configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := readFileIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", wrapParseError(opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}

		// The config-directory file wins over a config.toml in the working
		// directory. Neither existing just means defaults apply.
		tomlPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		localPath := ConfigFileName + "." + ConfigFileExt
		switch {
		case fileExists(tomlPath):
			if err := readFileIntoViper(v, tomlPath); err != nil {
				return nil, "", wrapParseError(tomlPath, err)
			}
			resolvedPath = tomlPath
		case fileExists(localPath):
			if err := readFileIntoViper(v, localPath); err != nil {
				return nil, "", wrapParseError(localPath, err)
			}
			resolvedPath = localPath
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check the reported keys against 'mesonwire config show'").
			WithSuggestion("Valid list_format values are table, yaml, and json").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// Validate checks cfg against its declared field constraints and returns an
// InvalidConfigError naming every failing key.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &InvalidConfigError{FieldErrors: fields}
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// readFileIntoViper merges a TOML config file into Viper, preserving
// defaults and environment overrides.
func readFileIntoViper(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType(ConfigFileExt)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// wrapParseError decorates a config file read failure with remediation steps.
func wrapParseError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid TOML syntax").
		WithSuggestion("Verify the configuration keys match 'mesonwire config show'").
		WithSuggestion("See 'mesonwire config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory when missing and returns it.
func EnsureConfigDir() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return cfgDir, nil
}

// configFilePath resolves the config file location, creating its directory
// on the way.
func configFilePath() (string, error) {
	cfgDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig writes a default config file, leaving any existing
// file untouched.
func CreateDefaultConfig() error {
	cfgPath, err := configFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		return nil
	}
	return Save(DefaultConfig())
}

// Save renders cfg and writes it to the config file, replacing what was
// there.
func Save(cfg *Config) error {
	cfgPath, err := configFilePath()
	if err != nil {
		return err
	}

	content, err := GenerateTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateTOML renders cfg as a TOML document with a short header.
func GenerateTOML(cfg *Config) (string, error) {
	body, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Mesonwire Configuration File\n")
	sb.WriteString("# Keys and values are described in 'mesonwire config --help'.\n\n")
	sb.Write(body)

	return sb.String(), nil
}
