// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath matches any rejected path via errors.Is.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath names a location on disk, absolute or relative.
	// The only thing a path must not be is blank: empty strings and
	// whitespace-only strings point nowhere.
	FilesystemPath string

	// InvalidFilesystemPathError reports a blank path and keeps the
	// rejected value for display.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("filesystem path %q is blank", e.Value)
}

func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
