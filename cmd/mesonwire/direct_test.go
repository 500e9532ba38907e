// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"testing"

	"mesonwire/internal/config"
	"mesonwire/internal/gentool"
	"mesonwire/pkg/types"
)

func TestBuildInvoker(t *testing.T) {
	// Not parallel: subtests mutate the package-level rootCfg var.

	setConfig := func(t *testing.T) {
		t.Helper()
		orig := rootCfg
		t.Cleanup(func() { rootCfg = orig })
		rootCfg = &config.Config{
			DefinitionsDir: "/cfg/defs",
			OutputDir:      "/cfg/out",
			Tool:           "cfg-gen",
			ListFormat:     config.ListFormatTable,
		}
	}

	t.Run("flags win over config", func(t *testing.T) {
		setConfig(t)

		inv, err := buildInvoker("/flag/defs", "/flag/out", "flag-gen")
		if err != nil {
			t.Fatalf("buildInvoker() error = %v", err)
		}
		if inv.DefsDir != "/flag/defs" || inv.OutDir != "/flag/out" || inv.Tool != "flag-gen" {
			t.Errorf("invoker = %+v, want flag values", inv)
		}
	})

	t.Run("unset flags fall back to config", func(t *testing.T) {
		setConfig(t)

		inv, err := buildInvoker("", "", "")
		if err != nil {
			t.Fatalf("buildInvoker() error = %v", err)
		}
		if inv.DefsDir != "/cfg/defs" || inv.OutDir != "/cfg/out" || inv.Tool != "cfg-gen" {
			t.Errorf("invoker = %+v, want config values", inv)
		}
	})

	t.Run("whitespace-only flag is rejected", func(t *testing.T) {
		setConfig(t)

		_, err := buildInvoker("/flag/defs", "/flag/out", "   ")
		if !errors.Is(err, types.ErrInvalidFilesystemPath) {
			t.Errorf("buildInvoker() error = %v, want ErrInvalidFilesystemPath", err)
		}
	})
}

func TestClassifyDirectError(t *testing.T) {
	// Not parallel: subtests mutate the package-level issueWriter var.
	orig := issueWriter
	t.Cleanup(func() { issueWriter = orig })
	issueWriter = io.Discard

	t.Run("tool exit becomes ExitError with the tool's code", func(t *testing.T) {
		cause := &gentool.ToolExitError{
			Tool:     "mesonwire-gen",
			Args:     []string{"interface", "common-header", "net.foo"},
			ExitCode: 3,
			Stderr:   "boom",
		}

		err := classifyDirectError(cause, "mesonwire-gen")

		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("classifyDirectError() = %T, want *ExitError", err)
		}
		if exitErr.Code != 3 {
			t.Errorf("ExitError.Code = %d, want 3", exitErr.Code)
		}
		if !errors.Is(err, gentool.ErrToolFailed) {
			t.Errorf("classified error should still wrap ErrToolFailed: %v", err)
		}
	})

	t.Run("missing definition passes through", func(t *testing.T) {
		cause := &gentool.MissingDefinitionError{Key: "net/foo", Want: "definition files"}

		err := classifyDirectError(cause, "mesonwire-gen")
		if !errors.Is(err, gentool.ErrMissingDefinition) {
			t.Errorf("classifyDirectError() = %v, want ErrMissingDefinition", err)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			t.Errorf("missing definition must not carry a tool exit code")
		}
	})

	t.Run("unspawnable tool keeps exec.ErrNotFound in the chain", func(t *testing.T) {
		cause := fmt.Errorf("running mesonwire-gen: %w", &exec.Error{Name: "mesonwire-gen", Err: exec.ErrNotFound})

		err := classifyDirectError(cause, "mesonwire-gen")
		if !errors.Is(err, exec.ErrNotFound) {
			t.Errorf("classifyDirectError() = %v, want chain containing exec.ErrNotFound", err)
		}
	})

	t.Run("other errors are returned unchanged", func(t *testing.T) {
		cause := errors.New("disk full")

		if err := classifyDirectError(cause, "mesonwire-gen"); err != cause {
			t.Errorf("classifyDirectError() = %v, want the original error", err)
		}
	})
}
