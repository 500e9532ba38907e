// SPDX-License-Identifier: MPL-2.0

package meson

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the build file path for a directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// CreateFile lays down a fresh build file under dir, truncating whatever a
// previous generation left behind, and writes content as its opening text.
// Parent directories are created as needed.
func CreateFile(dir, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", dir, err)
	}

	path := Path(dir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	return nil
}

// AppendFile appends content to the build file under dir. The file must
// already exist: appending never creates files, so an append against a
// directory the create phase skipped fails instead of leaving a build file
// without its header.
func AppendFile(dir, content string) error {
	path := Path(dir)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
