// SPDX-License-Identifier: MPL-2.0

package gentool

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mesonwire/pkg/types"
)

var (
	// ErrMissingDefinition indicates a direct mode found none of the
	// definition files it requires for the requested key.
	ErrMissingDefinition = errors.New("missing definition file")

	// ErrToolFailed indicates the generation tool exited non-zero.
	ErrToolFailed = errors.New("generation tool failed")
)

type (
	// MissingDefinitionError reports which requirement a direct-mode
	// lookup could not satisfy. Nothing is written when it is returned.
	MissingDefinitionError struct {
		// Key is the interface key the lookup ran for.
		Key string
		// Want describes the unmet requirement, e.g. "definition files"
		// or "events definition file".
		Want string
	}

	// ToolExitError reports a non-zero tool exit. The exit code is
	// propagated to this process's own exit and stderr is passed through
	// verbatim; the failed call is never retried.
	ToolExitError struct {
		// Tool is the generation tool binary that failed.
		Tool string
		// Args is the argument vector of the failed call.
		Args []string
		// ExitCode is the tool's exit code.
		ExitCode types.ExitCode
		// Stderr is the tool's error output.
		Stderr string
	}
)

// Error implements the error interface.
func (e *MissingDefinitionError) Error() string {
	return fmt.Sprintf("no %s for interface %s", e.Want, e.Key)
}

// Unwrap returns the sentinel for errors.Is matching.
func (e *MissingDefinitionError) Unwrap() error {
	return ErrMissingDefinition
}

// Error implements the error interface.
func (e *ToolExitError) Error() string {
	msg := fmt.Sprintf("%s %s exited with code %d",
		filepath.Base(e.Tool), strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap returns the sentinel for errors.Is matching.
func (e *ToolExitError) Unwrap() error {
	return ErrToolFailed
}
