// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mesonwire/internal/definition"
	"mesonwire/internal/discovery"
	"mesonwire/internal/meson"
)

// newTestEmitter lays out sibling defs/ and out/ roots with the build file
// for key's directory already created, mirroring what the Builder does
// before emission starts.
func newTestEmitter(t *testing.T, key string) (*Emitter, string) {
	t.Helper()

	base := t.TempDir()
	defs := filepath.Join(base, "defs")
	out := filepath.Join(base, "out")

	dir := filepath.Join(out, filepath.FromSlash(definition.DirOf(key)))
	if err := meson.CreateFile(dir, meson.Header()); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	return NewEmitter(defs, out), dir
}

func record(key string, kinds ...definition.Kind) *discovery.Record {
	files := make([]discovery.File, len(kinds))
	for i, kind := range kinds {
		files[i] = discovery.File{
			Rel:  definition.FilePath(key, kind),
			Key:  key,
			Kind: kind,
		}
	}
	return discovery.NewRecord(key, files...)
}

func TestEmitSource_ErrorsOnlyOutputs(t *testing.T) {
	em, dir := newTestEmitter(t, "net/foo")

	if err := em.EmitSource(record("net/foo", definition.KindErrors)); err != nil {
		t.Fatalf("EmitSource() error = %v", err)
	}

	content := readFile(t, dir)
	wantOutputs := "    output: [\n        'error.hpp',\n        'error.cpp',\n    ],\n"
	if !strings.Contains(content, wantOutputs) {
		t.Errorf("errors-only source target outputs wrong:\n%s", content)
	}
	for _, absent := range []string{"common.hpp", "server.cpp", "event.hpp"} {
		if strings.Contains(content, absent) {
			t.Errorf("errors-only source target must not produce %s", absent)
		}
	}
}

func TestEmitSource_KindAdditiveOutputs(t *testing.T) {
	em, dir := newTestEmitter(t, "net/foo")

	rec := record("net/foo", definition.KindEvents, definition.KindInterface)
	if err := em.EmitSource(rec); err != nil {
		t.Fatalf("EmitSource() error = %v", err)
	}

	content := readFile(t, dir)
	// Canonical order: interface artifacts before events artifacts.
	wantOutputs := "    output: [\n" +
		"        'common.hpp',\n" +
		"        'server.hpp',\n" +
		"        'server.cpp',\n" +
		"        'aserver.hpp',\n" +
		"        'client.hpp',\n" +
		"        'event.hpp',\n" +
		"        'event.cpp',\n" +
		"    ],\n"
	if !strings.Contains(content, wantOutputs) {
		t.Errorf("additive source outputs wrong:\n%s", content)
	}
}

func TestEmitSource_UnrecognizedKind(t *testing.T) {
	em, dir := newTestEmitter(t, "net/foo")

	rec := discovery.NewRecord("net/foo", discovery.File{
		Rel:  "net/foo.mystery.yaml",
		Key:  "net/foo",
		Kind: definition.Kind(9),
	})

	err := em.EmitSource(rec)
	if err == nil {
		t.Fatal("EmitSource() expected error for unrecognized kind")
	}
	if !errors.Is(err, ErrUnrecognizedKind) {
		t.Errorf("error = %v, want ErrUnrecognizedKind", err)
	}

	var kindErr *UnrecognizedKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("error = %T, want *UnrecognizedKindError", err)
	}
	if kindErr.Key != "net/foo" || kindErr.Kind != definition.Kind(9) {
		t.Errorf("error details = %q/%d", kindErr.Key, kindErr.Kind)
	}

	if content := readFile(t, dir); strings.Contains(content, "custom_target") {
		t.Error("failed emission must not write a partial target")
	}
}

func TestEmitMarkdown_LeafOutput(t *testing.T) {
	em, dir := newTestEmitter(t, "net/tcp/stream")

	if err := em.EmitMarkdown(record("net/tcp/stream", definition.KindInterface)); err != nil {
		t.Fatalf("EmitMarkdown() error = %v", err)
	}

	content := readFile(t, dir)
	if !strings.Contains(content, "'stream.md',") {
		t.Errorf("markdown output must be the key leaf:\n%s", content)
	}
	if !strings.Contains(content, "generated_markdown += custom_target(") {
		t.Error("markdown target must append to generated_markdown")
	}
	if !strings.Contains(content, "get_option('datadir') / 'doc' / 'mesonwire' / mesonwire_current_path") {
		t.Error("markdown install dir must use the recorded logical path")
	}
}

func TestEmitRegistry_RequiresEvents(t *testing.T) {
	tests := []struct {
		name    string
		kinds   []definition.Kind
		emitted bool
	}{
		{"events only", []definition.Kind{definition.KindEvents}, true},
		{"all kinds", []definition.Kind{definition.KindInterface, definition.KindErrors, definition.KindEvents}, true},
		{"interface only", []definition.Kind{definition.KindInterface}, false},
		{"errors only", []definition.Kind{definition.KindErrors}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, dir := newTestEmitter(t, "net/foo")

			if err := em.EmitRegistry(record("net/foo", tt.kinds...)); err != nil {
				t.Fatalf("EmitRegistry() error = %v", err)
			}

			content := readFile(t, dir)
			if got := strings.Contains(content, "generated_registry += custom_target("); got != tt.emitted {
				t.Errorf("registry target emitted = %v, want %v:\n%s", got, tt.emitted, content)
			}
		})
	}
}

func TestEmitRegistry_EventsFileOnlyInput(t *testing.T) {
	em, dir := newTestEmitter(t, "net/foo")

	rec := record("net/foo", definition.KindInterface, definition.KindErrors, definition.KindEvents)
	if err := em.EmitRegistry(rec); err != nil {
		t.Fatalf("EmitRegistry() error = %v", err)
	}

	content := readFile(t, dir)
	wantInputs := "    input: [\n        '../../defs/net/foo.events.yaml',\n    ],\n"
	if !strings.Contains(content, wantInputs) {
		t.Errorf("registry input must be the events file alone:\n%s", content)
	}
	if !strings.Contains(content, "'foo.json',") {
		t.Error("registry output must be the key leaf with .json")
	}
	if !strings.Contains(content, "get_option('datadir') / 'mesonwire' / 'registry'") {
		t.Error("registry install dir wrong")
	}
}

func readFile(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(meson.Path(dir))
	if err != nil {
		t.Fatalf("reading build file: %v", err)
	}
	return string(data)
}
