// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mesonwire/internal/definition"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrNoDefinitions indicates a lookup that requires at least one definition
// file found none. Full tree scans never return it; an empty tree is a valid
// (if useless) input there.
var ErrNoDefinitions = errors.New("no definition files found")

type (
	// File is a single definition file found under a scan root.
	File struct {
		// Path is the absolute path to the file.
		Path string
		// Rel is the slash-separated path relative to the scan root.
		Rel string
		// Key is the interface key encoded by the file's location and name.
		Key string
		// Kind classifies the file by its name suffix.
		Kind definition.Kind
	}

	// Record groups every definition file that shares one interface key.
	// At most one file per kind is retained; a later file with the same key
	// and kind replaces the earlier one.
	Record struct {
		// Key is the interface key shared by the grouped files.
		Key string

		files map[definition.Kind]File
	}

	// Index is the result of a scan: records addressable by interface key
	// and iterable in byte-wise lexicographic key order.
	Index struct {
		root    string
		records map[string]*Record
		keys    []string
	}
)

// Scan walks the definitions tree rooted at dir and groups every definition
// file by interface key. Directory symlinks are not followed. The scan fails
// if dir does not exist, is not a directory, or any part of the tree cannot
// be read; an empty tree is not an error.
func Scan(dir string) (*Index, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving definitions root %q: %w", dir, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("definitions root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definitions root %s is not a directory", root)
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := definition.KindOf(d.Name()); !ok {
			return nil
		}

		key, kind, err := definition.KeyFromPath(root, path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, File{
			Path: path,
			Rel:  filepath.ToSlash(rel),
			Key:  key,
			Kind: kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning definitions under %s: %w", root, err)
	}

	return newIndex(root, files), nil
}

// newIndex folds discovered files into records. Files are folded in sorted
// path order so that replacement on duplicate kinds is deterministic no
// matter how the filesystem enumerated them.
func newIndex(root string, files []File) *Index {
	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })

	idx := &Index{
		root:    root,
		records: make(map[string]*Record),
	}
	for _, f := range files {
		rec, ok := idx.records[f.Key]
		if !ok {
			rec = newRecord(f.Key)
			idx.records[f.Key] = rec
		}
		rec.add(f)
	}

	idx.keys = maps.Keys(idx.records)
	slices.Sort(idx.keys)

	return idx
}

// Root returns the absolute scan root the index was built from.
func (i *Index) Root() string {
	return i.root
}

// Len returns the number of distinct interface keys in the index.
func (i *Index) Len() int {
	return len(i.keys)
}

// Keys returns every interface key in byte-wise lexicographic order.
func (i *Index) Keys() []string {
	return slices.Clone(i.keys)
}

// Record returns the record for the given interface key.
func (i *Index) Record(key string) (*Record, bool) {
	rec, ok := i.records[key]
	return rec, ok
}

// Records returns every record ordered by interface key.
func (i *Index) Records() []*Record {
	records := make([]*Record, 0, len(i.keys))
	for _, key := range i.keys {
		records = append(records, i.records[key])
	}
	return records
}

// NewRecord builds a record from explicit files, retaining the last file
// of each kind. Scan and Probe build records internally; NewRecord serves
// callers assembling one from other sources.
func NewRecord(key string, files ...File) *Record {
	rec := newRecord(key)
	for _, f := range files {
		rec.add(f)
	}
	return rec
}

func newRecord(key string) *Record {
	return &Record{
		Key:   key,
		files: make(map[definition.Kind]File),
	}
}

// add retains f for its kind, replacing any earlier file of the same kind.
func (r *Record) add(f File) {
	r.files[f.Kind] = f
}

// Has reports whether a definition file of the given kind is present.
func (r *Record) Has(kind definition.Kind) bool {
	_, ok := r.files[kind]
	return ok
}

// File returns the definition file of the given kind.
func (r *Record) File(kind definition.Kind) (File, bool) {
	f, ok := r.files[kind]
	return f, ok
}

// Kinds returns the kinds present for this record sorted by kind value,
// which puts the well-known kinds in canonical order (interface, errors,
// events) independent of the order files were added. Values outside the
// well-known set are not filtered out; consumers that map kinds to
// artifacts treat them as fatal.
func (r *Record) Kinds() []definition.Kind {
	kinds := maps.Keys(r.files)
	slices.Sort(kinds)
	return kinds
}

// Empty reports whether the record holds no definition files at all.
func (r *Record) Empty() bool {
	return len(r.files) == 0
}
