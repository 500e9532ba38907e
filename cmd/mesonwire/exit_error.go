// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"mesonwire/pkg/types"
)

// ExitError carries a process exit code out of a RunE handler. Execute
// unwraps it after fang's error printing, so the direct modes can propagate
// the generation tool's own exit status instead of a flat 1.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
