// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"mesonwire/internal/gentool"
	"mesonwire/internal/issue"
	"mesonwire/pkg/types"
)

// issueWriter receives rendered issue cards; tests substitute a quiet sink.
var issueWriter io.Writer = os.Stderr

// buildInvoker assembles the direct-mode invoker for the source, markdown,
// and registry commands. Flags win over configured values; whatever ends up
// selected must at least look like a path.
func buildInvoker(dirFlag, outFlag, toolFlag string) (*gentool.Invoker, error) {
	conf := effectiveConfig()

	dir := dirFlag
	if dir == "" {
		dir = conf.DefinitionsDir
	}
	out := outFlag
	if out == "" {
		out = conf.OutputDir
	}
	tool := toolFlag
	if tool == "" {
		tool = conf.Tool
	}

	for _, p := range []types.FilesystemPath{
		types.FilesystemPath(dir),
		types.FilesystemPath(out),
		types.FilesystemPath(tool),
	} {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return gentool.NewInvoker(tool, dir, out), nil
}

// classifyDirectError maps a direct-mode failure onto its user-facing issue
// card and exit behavior. Tool exits become ExitErrors carrying the tool's
// own exit code; everything else keeps exit code 1.
func classifyDirectError(err error, tool string) error {
	var tex *gentool.ToolExitError
	if errors.As(err, &tex) {
		renderIssue(issue.ToolFailedId)
		return &ExitError{Code: tex.ExitCode, Err: err}
	}

	var mde *gentool.MissingDefinitionError
	if errors.As(err, &mde) {
		renderIssue(issue.MissingDefinitionId)
		return err
	}

	if errors.Is(err, exec.ErrNotFound) {
		renderIssue(issue.ToolNotFoundId)
		return issue.NewErrorContext().
			WithOperation("invoke generation tool").
			WithResource(tool).
			WithSuggestion("Install the generation tool or point --tool at its binary").
			Wrap(err).
			BuildError()
	}

	return err
}

// renderIssue prints an issue card to stderr. When glamour cannot render,
// the raw card still goes out.
func renderIssue(id issue.Id) {
	iss := issue.Get(id)
	rendered, err := iss.Render("dark")
	if err != nil {
		rendered = ErrorStyle.Render(string(iss.MarkdownMsg())) + "\n"
	}
	fmt.Fprint(issueWriter, rendered)
}
