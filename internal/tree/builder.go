// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"mesonwire/internal/definition"
	"mesonwire/internal/discovery"
	"mesonwire/internal/meson"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builder writes the generated build tree for an interface index. A Builder
// is single-use per Build call: the visited set resets on every run and
// afterwards reports exactly the directories that run created.
type Builder struct {
	outDir  string
	visited map[string]struct{}
	logger  *log.Logger
}

// NewBuilder returns a Builder that generates into outDir. The directory is
// created on Build if it does not exist.
func NewBuilder(outDir string) *Builder {
	return &Builder{
		outDir:  outDir,
		visited: make(map[string]struct{}),
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "tree", Level: log.GetLevel()}),
	}
}

// Build generates the full meson.build tree for idx. Every run starts from
// a fresh root file and rewrites every directory level it touches, so a
// rebuild over unchanged definitions reproduces the previous tree byte for
// byte.
func (b *Builder) Build(ctx context.Context, idx *discovery.Index) error {
	outRoot, err := filepath.Abs(b.outDir)
	if err != nil {
		return fmt.Errorf("resolving output root %q: %w", b.outDir, err)
	}

	b.visited = make(map[string]struct{})

	// Root file first: every later append lands in a file that exists.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := meson.CreateFile(outRoot, meson.RootPrologue()); err != nil {
		return err
	}
	b.visited[outRoot] = struct{}{}
	b.logger.Debug("created root build file", "dir", outRoot)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.linkLevels(outRoot, idx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.declareLogicalPaths(outRoot, idx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return b.emitTargets(outRoot, idx)
}

// linkLevels creates the build file for every directory level between the
// root and each interface, walking each key's ancestry shallowest to
// deepest so a parent file always exists before its child links into it.
func (b *Builder) linkLevels(outRoot string, idx *discovery.Index) error {
	for _, key := range idx.Keys() {
		for _, level := range definition.ParentKeys(key) {
			if err := b.ensureLevel(outRoot, level); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureLevel creates the build file for one directory level and links it
// into its parent, unless an earlier key already visited it. Top-level
// directories are not linked: the root's selection loop includes them from
// an externally maintained list instead.
func (b *Builder) ensureLevel(outRoot, level string) error {
	dir := definition.OutputPath(outRoot, level)
	if _, ok := b.visited[dir]; ok {
		return nil
	}

	if err := meson.CreateFile(dir, meson.Header()); err != nil {
		return err
	}

	parent := path.Dir(level)
	if parent != "." {
		parentDir := definition.OutputPath(outRoot, parent)
		if err := meson.AppendFile(parentDir, meson.SubdirLine(path.Base(level))); err != nil {
			return err
		}
	}

	b.visited[dir] = struct{}{}
	b.logger.Debug("created level", "level", level, "linked", parent != ".")
	return nil
}

// declareLogicalPaths appends the logical-path declaration to every
// directory that holds at least one interface. Runs strictly after all
// linking so no subdir line ever lands below a declaration.
func (b *Builder) declareLogicalPaths(outRoot string, idx *discovery.Index) error {
	for _, dir := range keyDirs(idx) {
		level := definition.OutputPath(outRoot, dir)
		if err := meson.AppendFile(level, meson.CurrentPathStanza(dir)); err != nil {
			return err
		}
		b.logger.Debug("declared logical path", "path", dir)
	}
	return nil
}

// emitTargets appends the generation targets for every key, in key order,
// each key emitting source, then markdown, then registry.
func (b *Builder) emitTargets(outRoot string, idx *discovery.Index) error {
	em := NewEmitter(idx.Root(), outRoot)

	for _, rec := range idx.Records() {
		if err := em.EmitSource(rec); err != nil {
			return err
		}
		if err := em.EmitMarkdown(rec); err != nil {
			return err
		}
		if err := em.EmitRegistry(rec); err != nil {
			return err
		}
		b.logger.Debug("emitted targets", "key", rec.Key)
	}
	return nil
}

// keyDirs returns the distinct key-holding directories of the index as
// slash paths relative to the scan root, byte-wise sorted. Interfaces at
// the root itself contribute ".".
func keyDirs(idx *discovery.Index) []string {
	seen := make(map[string]struct{})
	for _, key := range idx.Keys() {
		seen[definition.DirOf(key)] = struct{}{}
	}

	dirs := maps.Keys(seen)
	slices.Sort(dirs)
	return dirs
}

// Visited returns the absolute path of every directory whose build file
// the last Build created, sorted.
func (b *Builder) Visited() []string {
	dirs := maps.Keys(b.visited)
	slices.Sort(dirs)
	return dirs
}
