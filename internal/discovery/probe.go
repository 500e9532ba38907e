// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"mesonwire/internal/definition"
)

// Probe locates the definition files of a single interface key without
// walking the whole tree. Direct generation modes use it to find their
// inputs. The returned record contains exactly the kinds whose files exist;
// a key with no files yields an empty record, not an error, so callers
// decide what absence means for their mode.
func Probe(dir, key string) (*Record, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving definitions root %q: %w", dir, err)
	}

	rec := newRecord(key)
	for _, kind := range definition.Kinds() {
		rel := definition.FilePath(key, kind)
		path := filepath.Join(root, filepath.FromSlash(rel))

		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("probing %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}

		rec.add(File{
			Path: path,
			Rel:  rel,
			Key:  key,
			Kind: kind,
		})
	}

	return rec, nil
}
