// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"mesonwire/internal/definition"
	"mesonwire/internal/discovery"
	"mesonwire/internal/meson"
)

// ErrUnrecognizedKind indicates a definition kind outside the fixed set
// reached target emission. The index never produces one, so hitting this is
// an invariant breach, not an input problem.
var ErrUnrecognizedKind = errors.New("unrecognized definition kind")

// UnrecognizedKindError reports the key and kind that broke emission.
type UnrecognizedKindError struct {
	Key  string
	Kind definition.Kind
}

// Error implements the error interface.
func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("unrecognized definition kind %d for interface %s", int(e.Kind), e.Key)
}

// Unwrap returns the sentinel for errors.Is matching.
func (e *UnrecognizedKindError) Unwrap() error {
	return ErrUnrecognizedKind
}

// artifact is one output file of a source target.
type artifact struct {
	name      string
	installed bool
}

// sourceArtifacts maps each definition kind to the files its source
// generation contributes, in output order. Installed artifacts go to the
// public include path of the interface key; the rest are build-local.
var sourceArtifacts = map[definition.Kind][]artifact{
	definition.KindInterface: {
		{"common.hpp", true},
		{"server.hpp", true},
		{"server.cpp", false},
		{"aserver.hpp", true},
		{"client.hpp", true},
	},
	definition.KindErrors: {
		{"error.hpp", true},
		{"error.cpp", true},
	},
	definition.KindEvents: {
		{"event.hpp", true},
		{"event.cpp", true},
	},
}

// Emitter appends generation target stanzas to the build files the Builder
// created. All paths inside a stanza are computed relative to the stanza's
// own directory.
type Emitter struct {
	defsDir string
	outDir  string
}

// NewEmitter returns an Emitter for targets whose inputs live under
// defsDir and whose build files live under outDir. Both paths must be
// absolute (the Builder passes the resolved roots).
func NewEmitter(defsDir, outDir string) *Emitter {
	return &Emitter{
		defsDir: defsDir,
		outDir:  outDir,
	}
}

// EmitSource appends the source generation target for rec: one command
// producing every artifact its kinds contribute, additively in canonical
// kind order.
func (e *Emitter) EmitSource(rec *discovery.Record) error {
	dir := e.levelDir(rec.Key)
	relDefs := e.relToDefs(dir)

	inputs, err := e.inputs(rec, relDefs)
	if err != nil {
		return err
	}

	var outputs []string
	var installDirs []string
	for _, kind := range rec.Kinds() {
		arts, ok := sourceArtifacts[kind]
		if !ok {
			return &UnrecognizedKindError{Key: rec.Key, Kind: kind}
		}
		for _, a := range arts {
			outputs = append(outputs, a.name)
			if a.installed {
				installDirs = append(installDirs, meson.IncludeInstallDir(rec.Key))
			} else {
				installDirs = append(installDirs, meson.NoInstall)
			}
		}
	}

	target := &meson.Target{
		List:           meson.ListSources,
		Name:           rec.Key + "__source",
		Inputs:         inputs,
		Outputs:        outputs,
		Install:        meson.VarInstallSources,
		InstallDirs:    installDirs,
		BuildByDefault: meson.VarBuildSources,
		DependFiles:    meson.VarDeps,
		Command:        e.command("source", relDefs, rec.Key),
	}

	return meson.AppendFile(dir, meson.RenderTarget(target))
}

// EmitMarkdown appends the documentation target for rec: one command
// producing a single <leaf>.md from every definition file of the key.
func (e *Emitter) EmitMarkdown(rec *discovery.Record) error {
	dir := e.levelDir(rec.Key)
	relDefs := e.relToDefs(dir)

	inputs, err := e.inputs(rec, relDefs)
	if err != nil {
		return err
	}

	target := &meson.Target{
		List:           meson.ListMarkdown,
		Name:           rec.Key + "__markdown",
		Inputs:         inputs,
		Outputs:        []string{definition.Leaf(rec.Key) + ".md"},
		Install:        meson.VarInstallMarkdown,
		InstallDirs:    []string{meson.DocInstallDir()},
		BuildByDefault: meson.VarBuildMarkdown,
		DependFiles:    meson.VarDeps,
		Command:        e.command("markdown", relDefs, rec.Key),
	}

	return meson.AppendFile(dir, meson.RenderTarget(target))
}

// EmitRegistry appends the registry target for rec, which exists only when
// the key defines events; other keys emit nothing here.
func (e *Emitter) EmitRegistry(rec *discovery.Record) error {
	events, ok := rec.File(definition.KindEvents)
	if !ok {
		return nil
	}

	dir := e.levelDir(rec.Key)
	relDefs := e.relToDefs(dir)

	target := &meson.Target{
		List:           meson.ListRegistry,
		Name:           rec.Key + "__registry",
		Inputs:         []string{path.Join(filepath.ToSlash(relDefs), events.Rel)},
		Outputs:        []string{definition.Leaf(rec.Key) + ".json"},
		Install:        meson.VarInstallRegistry,
		InstallDirs:    []string{meson.RegistryInstallDir()},
		BuildByDefault: meson.VarBuildRegistry,
		DependFiles:    meson.VarDeps,
		Command:        e.command("registry", relDefs, rec.Key),
	}

	return meson.AppendFile(dir, meson.RenderTarget(target))
}

// levelDir returns the output directory whose build file carries the
// targets of key.
func (e *Emitter) levelDir(key string) string {
	return definition.OutputPath(e.outDir, definition.DirOf(key))
}

// relToDefs returns the path from dir to the definitions root, relative
// when possible, absolute when the two roots share no common base.
func (e *Emitter) relToDefs(dir string) string {
	rel, err := filepath.Rel(dir, e.defsDir)
	if err != nil {
		return e.defsDir
	}
	return rel
}

// inputs returns the stanza-relative path of every definition file of rec
// in canonical kind order. A kind outside the fixed set is fatal here, so
// no target can silently drop an input.
func (e *Emitter) inputs(rec *discovery.Record, relDefs string) ([]string, error) {
	var inputs []string
	for _, kind := range rec.Kinds() {
		if !kind.IsValid() {
			return nil, &UnrecognizedKindError{Key: rec.Key, Kind: kind}
		}
		f, ok := rec.File(kind)
		if !ok {
			continue
		}
		inputs = append(inputs, path.Join(filepath.ToSlash(relDefs), f.Rel))
	}
	return inputs, nil
}

// command returns the generation command vector shared by every target
// class: program, subcommand, flag pairs, then the interface key.
func (e *Emitter) command(sub, relDefs, key string) []meson.Arg {
	return []meson.Arg{
		{meson.Expr(meson.VarProg)},
		{meson.Str(sub)},
		{meson.Str("--output"), meson.Expr("meson.current_build_dir()")},
		{meson.Str("--tool"), meson.Expr(meson.VarToolProg)},
		{meson.Str("--directory"), meson.Expr(meson.DirExpr(relDefs))},
		{meson.Str(key)},
	}
}
