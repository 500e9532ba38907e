// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ListFormatTable renders the interface index as a styled terminal table.
	ListFormatTable ListFormat = "table"
	// ListFormatYAML renders the interface index as YAML.
	ListFormatYAML ListFormat = "yaml"
	// ListFormatJSON renders the interface index as JSON.
	ListFormatJSON ListFormat = "json"
)

var (
	// ErrInvalidListFormat is returned when a ListFormat value is not recognized.
	ErrInvalidListFormat = errors.New("invalid list format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ListFormat specifies the output rendering of the list command.
	ListFormat string

	// InvalidListFormatError is returned when a ListFormat value is not recognized.
	// It wraps ErrInvalidListFormat for errors.Is() compatibility.
	InvalidListFormatError struct {
		Value ListFormat
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation failures as "<key> (<rule>)" entries.
	InvalidConfigError struct {
		FieldErrors []string
	}

	// Config holds the application configuration.
	Config struct {
		// DefinitionsDir is the root directory scanned for definition files.
		DefinitionsDir string `json:"definitions_dir" mapstructure:"definitions_dir" toml:"definitions_dir" validate:"required"`
		// OutputDir is the root directory the build tree is written under.
		OutputDir string `json:"output_dir" mapstructure:"output_dir" toml:"output_dir" validate:"required"`
		// Tool is the generation tool binary invoked by the direct modes.
		Tool string `json:"tool" mapstructure:"tool" toml:"tool" validate:"required"`
		// ListFormat sets the default rendering of the list command.
		ListFormat ListFormat `json:"list_format" mapstructure:"list_format" toml:"list_format" validate:"required,oneof=table yaml json"`
		// UI configures terminal output behavior.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// UIConfig configures terminal output behavior.
	UIConfig struct {
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// String returns the string representation of the ListFormat.
func (f ListFormat) String() string { return string(f) }

// IsValid returns whether the ListFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f ListFormat) IsValid() (bool, []error) {
	switch f {
	case ListFormatTable, ListFormatYAML, ListFormatJSON:
		return true, nil
	default:
		return false, []error{&InvalidListFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidListFormatError.
func (e *InvalidListFormatError) Error() string {
	return fmt.Sprintf("invalid list format %q (valid: table, yaml, json)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidListFormatError) Unwrap() error {
	return ErrInvalidListFormat
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", strings.Join(e.FieldErrors, ", "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefinitionsDir: ".",
		OutputDir:      ".",
		Tool:           "mesonwire-gen",
		ListFormat:     ListFormatTable,
		UI: UIConfig{
			Verbose: false,
		},
	}
}
