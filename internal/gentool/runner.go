// SPDX-License-Identifier: MPL-2.0

package gentool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

type (
	// Invocation is one call of the external generation tool.
	Invocation struct {
		// Tool is the path of the generation tool binary.
		Tool string
		// Args is the argument vector after the binary name.
		Args []string
		// Dir is the working directory for the call. Direct modes pass
		// the definitions root so references between definition files
		// resolve the same way they do under the generated build tree.
		Dir string
	}

	// Result carries the captured output of one tool call.
	Result struct {
		// Stdout is the generated artifact.
		Stdout []byte
		// Stderr is the tool's error output, kept verbatim.
		Stderr string
		// ExitCode is the tool's exit code.
		ExitCode int
	}

	// Runner executes tool invocations. The production implementation
	// spawns subprocesses; tests substitute a scripted fake.
	Runner interface {
		Run(ctx context.Context, inv Invocation) (*Result, error)
	}

	// ExecRunner runs invocations as real subprocesses.
	ExecRunner struct{}
)

// Run executes the invocation and captures its output. A non-zero tool
// exit is reported through Result.ExitCode, not as an error; failing to
// spawn the tool at all is an error.
func (ExecRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("running %s: %w", inv.Tool, err)
	}

	return result, nil
}
