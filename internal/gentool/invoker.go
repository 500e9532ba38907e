// SPDX-License-Identifier: MPL-2.0

package gentool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mesonwire/internal/definition"
	"mesonwire/internal/discovery"
	"mesonwire/pkg/types"

	"github.com/charmbracelet/log"
)

// artifactSpec pairs a tool artifact word with the file its stdout becomes.
type artifactSpec struct {
	word string
	file string
}

// sourceInvocations maps each kind to its source-mode calls, in invocation
// order. The files match the outputs the generated build trees declare.
var sourceInvocations = map[definition.Kind][]artifactSpec{
	definition.KindInterface: {
		{"common-header", "common.hpp"},
		{"server-header", "server.hpp"},
		{"server-impl", "server.cpp"},
		{"aserver-header", "aserver.hpp"},
		{"client-header", "client.hpp"},
	},
	definition.KindErrors: {
		{"header", "error.hpp"},
		{"impl", "error.cpp"},
	},
	definition.KindEvents: {
		{"header", "event.hpp"},
		{"impl", "event.cpp"},
	},
}

// toolKindWords maps each kind to the word the tool's CLI uses, singular
// where the file suffixes are plural.
var toolKindWords = map[definition.Kind]string{
	definition.KindInterface: "interface",
	definition.KindErrors:    "error",
	definition.KindEvents:    "event",
}

// Invoker runs the direct generation modes for single interface keys.
type Invoker struct {
	// Tool is the generation tool binary path.
	Tool string
	// DefsDir is the definitions root; lookups and tool working
	// directories are anchored here.
	DefsDir string
	// OutDir receives the generated artifacts.
	OutDir string
	// Runner executes tool calls; nil means real subprocesses.
	Runner Runner
}

// NewInvoker returns an Invoker that executes tool as real subprocesses.
func NewInvoker(tool, defsDir, outDir string) *Invoker {
	return &Invoker{
		Tool:    tool,
		DefsDir: defsDir,
		OutDir:  outDir,
		Runner:  ExecRunner{},
	}
}

// Source generates the source artifacts for key: one tool call per
// artifact of every present kind, each call's stdout written to its named
// file under OutDir. At least one definition file must exist.
func (inv *Invoker) Source(ctx context.Context, key string) error {
	rec, err := discovery.Probe(inv.DefsDir, key)
	if err != nil {
		return err
	}
	if rec.Empty() {
		return &MissingDefinitionError{Key: key, Want: "definition files"}
	}

	if err := inv.ensureOutDir(); err != nil {
		return err
	}

	for _, kind := range rec.Kinds() {
		specs, ok := sourceInvocations[kind]
		if !ok {
			return fmt.Errorf("no source artifacts for kind %d of interface %s", int(kind), key)
		}
		for _, spec := range specs {
			res, err := inv.run(ctx, toolKindWords[kind], spec.word, key)
			if err != nil {
				return err
			}

			path := filepath.Join(inv.OutDir, spec.file)
			if err := os.WriteFile(path, res.Stdout, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}

	return nil
}

// Markdown generates the documentation for key: the markdown of every
// present kind concatenated into <leaf>.md in canonical kind order. At
// least one definition file must exist.
func (inv *Invoker) Markdown(ctx context.Context, key string) (string, error) {
	rec, err := discovery.Probe(inv.DefsDir, key)
	if err != nil {
		return "", err
	}
	if rec.Empty() {
		return "", &MissingDefinitionError{Key: key, Want: "definition files"}
	}

	if err := inv.ensureOutDir(); err != nil {
		return "", err
	}

	outPath := filepath.Join(inv.OutDir, definition.Leaf(key)+".md")
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}

	for _, kind := range rec.Kinds() {
		word, ok := toolKindWords[kind]
		if !ok {
			_ = f.Close()
			return "", fmt.Errorf("no markdown mode for kind %d of interface %s", int(kind), key)
		}

		res, err := inv.run(ctx, word, "markdown", key)
		if err != nil {
			_ = f.Close()
			return "", err
		}
		if _, err := f.Write(res.Stdout); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("writing %s: %w", outPath, err)
		}
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", outPath, err)
	}

	return outPath, nil
}

// Registry generates the event registry for key: a single call whose
// stdout becomes <leaf>.json. The events definition file specifically must
// exist; nothing is written when it does not.
func (inv *Invoker) Registry(ctx context.Context, key string) error {
	rec, err := discovery.Probe(inv.DefsDir, key)
	if err != nil {
		return err
	}
	if !rec.Has(definition.KindEvents) {
		return &MissingDefinitionError{Key: key, Want: "events definition file"}
	}

	if err := inv.ensureOutDir(); err != nil {
		return err
	}

	res, err := inv.run(ctx, toolKindWords[definition.KindEvents], "registry", key)
	if err != nil {
		return err
	}

	outPath := filepath.Join(inv.OutDir, definition.Leaf(key)+".json")
	if err := os.WriteFile(outPath, res.Stdout, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	return nil
}

func (inv *Invoker) ensureOutDir() error {
	if err := os.MkdirAll(inv.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", inv.OutDir, err)
	}
	return nil
}

// run executes one tool call and turns a non-zero exit into ToolExitError.
func (inv *Invoker) run(ctx context.Context, kindWord, artifactWord, key string) (*Result, error) {
	runner := inv.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	call := Invocation{
		Tool: inv.Tool,
		Args: []string{kindWord, artifactWord, definition.DottedArg(key)},
		Dir:  inv.DefsDir,
	}
	log.Debug("invoking generation tool", "tool", inv.Tool, "args", strings.Join(call.Args, " "))

	res, err := runner.Run(ctx, call)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ToolExitError{
			Tool:     inv.Tool,
			Args:     call.Args,
			ExitCode: types.ExitCode(res.ExitCode),
			Stderr:   res.Stderr,
		}
	}

	return res, nil
}
