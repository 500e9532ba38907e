// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mesonwire/internal/definition"
)

// writeDefinition creates a definition file (with parent directories) under
// root at the given slash-separated relative path.
func writeDefinition(t *testing.T, root, rel string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte("# definition\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestScan_GroupsByKey(t *testing.T) {
	root := t.TempDir()

	// Created in no particular order, with noise the scan must ignore.
	writeDefinition(t, root, "net/tcp/stream.events.yaml")
	writeDefinition(t, root, "top.interface.yaml")
	writeDefinition(t, root, "net/foo.errors.yaml")
	writeDefinition(t, root, "net/foo.interface.yaml")
	writeDefinition(t, root, "README.md")
	writeDefinition(t, root, "net/notes.yaml")
	writeDefinition(t, root, ".interface.yaml")

	idx, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	wantKeys := []string{"net/foo", "net/tcp/stream", "top"}
	if got := idx.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
	if idx.Len() != len(wantKeys) {
		t.Errorf("Len() = %d, want %d", idx.Len(), len(wantKeys))
	}

	tests := []struct {
		key   string
		kinds []definition.Kind
	}{
		{"net/foo", []definition.Kind{definition.KindInterface, definition.KindErrors}},
		{"net/tcp/stream", []definition.Kind{definition.KindEvents}},
		{"top", []definition.Kind{definition.KindInterface}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec, ok := idx.Record(tt.key)
			if !ok {
				t.Fatalf("Record(%q) missing", tt.key)
			}
			if got := rec.Kinds(); !reflect.DeepEqual(got, tt.kinds) {
				t.Errorf("Kinds() = %v, want %v", got, tt.kinds)
			}
		})
	}
}

func TestScan_ByteWiseKeyOrder(t *testing.T) {
	root := t.TempDir()

	writeDefinition(t, root, "b/x.interface.yaml")
	writeDefinition(t, root, "A/y.interface.yaml")
	writeDefinition(t, root, "a/z.interface.yaml")

	idx, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"A/y", "a/z", "b/x"}
	if got := idx.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestScan_FileDetails(t *testing.T) {
	root := t.TempDir()
	writeDefinition(t, root, "net/foo.errors.yaml")

	idx, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	rec, ok := idx.Record("net/foo")
	if !ok {
		t.Fatal("Record(net/foo) missing")
	}
	f, ok := rec.File(definition.KindErrors)
	if !ok {
		t.Fatal("File(KindErrors) missing")
	}
	if f.Rel != "net/foo.errors.yaml" {
		t.Errorf("Rel = %q, want net/foo.errors.yaml", f.Rel)
	}
	wantPath := filepath.Join(idx.Root(), "net", "foo.errors.yaml")
	if f.Path != wantPath {
		t.Errorf("Path = %q, want %q", f.Path, wantPath)
	}
	if f.Key != "net/foo" || f.Kind != definition.KindErrors {
		t.Errorf("Key/Kind = %q/%v, want net/foo/KindErrors", f.Key, f.Kind)
	}
}

func TestScan_EmptyTree(t *testing.T) {
	idx, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if got := idx.Records(); len(got) != 0 {
		t.Errorf("Records() = %v, want empty", got)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Scan() expected error for missing root")
	}
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeDefinition(t, root, "plain.interface.yaml")

	if _, err := Scan(filepath.Join(root, "plain.interface.yaml")); err == nil {
		t.Error("Scan() expected error for non-directory root")
	}
}

func TestRecord_KindsCanonicalOrder(t *testing.T) {
	rec := newRecord("net/foo")
	rec.add(File{Key: "net/foo", Kind: definition.KindEvents})
	rec.add(File{Key: "net/foo", Kind: definition.KindInterface})

	want := []definition.Kind{definition.KindInterface, definition.KindEvents}
	if got := rec.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
}

func TestRecord_DuplicateKindLastWins(t *testing.T) {
	rec := newRecord("net/foo")
	rec.add(File{Path: "/first", Key: "net/foo", Kind: definition.KindInterface})
	rec.add(File{Path: "/second", Key: "net/foo", Kind: definition.KindInterface})

	f, ok := rec.File(definition.KindInterface)
	if !ok {
		t.Fatal("File(KindInterface) missing")
	}
	if f.Path != "/second" {
		t.Errorf("Path = %q, want /second", f.Path)
	}
	if got := rec.Kinds(); len(got) != 1 {
		t.Errorf("Kinds() = %v, want a single entry", got)
	}
}

func TestProbe(t *testing.T) {
	root := t.TempDir()
	writeDefinition(t, root, "net/foo.interface.yaml")
	writeDefinition(t, root, "net/foo.events.yaml")

	rec, err := Probe(root, "net/foo")
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	want := []definition.Kind{definition.KindInterface, definition.KindEvents}
	if got := rec.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if rec.Has(definition.KindErrors) {
		t.Error("Has(KindErrors) = true, want false")
	}
}

func TestProbe_AbsentKey(t *testing.T) {
	rec, err := Probe(t.TempDir(), "net/ghost")
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if !rec.Empty() {
		t.Errorf("Empty() = false for absent key, kinds = %v", rec.Kinds())
	}
}
