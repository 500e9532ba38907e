// SPDX-License-Identifier: MPL-2.0

// Package types holds the small validated value kinds that mesonwire's
// domain packages hand to each other: process exit codes and filesystem
// paths. Each kind validates itself and reports violations through a
// typed error that wraps a package sentinel, so callers can branch with
// errors.Is or pull the offending value back out with errors.As.
//
// The package sits at the bottom of the import graph and stays there.
// Nothing here imports a mesonwire domain package.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode matches any out-of-range exit code via errors.Is.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status. POSIX confines it to 0-255,
	// and 0 alone means the process succeeded.
	ExitCode int

	// InvalidExitCodeError reports a code outside 0-255 and keeps the
	// offending value for display.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d out of range 0-255", e.Value)
}

func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate rejects codes that cannot be handed back to the operating system.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether the code signals a clean exit.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String renders the code in decimal.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
