// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/mesonwire/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/mesonwire/config.toml on macOS, %APPDATA%\mesonwire\config.toml
// on Windows), with MESONWIRE_* environment variables layered on top and a local .env file
// filling unset variables. The package provides type-safe access to the definition scan root,
// the output root, the generation tool path, and list rendering preferences.
//
// Loaded values are validated with go-playground/validator before use, so a malformed file
// fails fast with a field-by-field report instead of surfacing later as a bad tool invocation.
package config
