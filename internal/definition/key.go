// SPDX-License-Identifier: MPL-2.0

package definition

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ToolKeyDelimiter replaces the key's path separators in the argument handed
// to the generation tool (net/foo becomes net.foo).
const ToolKeyDelimiter = "."

// KeyFromPath derives the canonical interface key for a definition file: the
// file's path relative to the scan root, slash-separated, with the kind
// suffix stripped. It returns an InvalidExtensionError when the file carries
// no recognized suffix.
func KeyFromPath(root, file string) (string, Kind, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", 0, fmt.Errorf("relativize %s against %s: %w", file, root, err)
	}

	kind, ok := KindOf(filepath.Base(rel))
	if !ok {
		return "", 0, &InvalidExtensionError{Path: file}
	}

	rel = filepath.ToSlash(rel)
	return rel[:len(rel)-len(kind.Suffix())], kind, nil
}

// ParentKeys returns every ancestor prefix of key from shallowest to deepest,
// excluding the key's own leaf segment. For net/tcp/stream it returns
// [net, net/tcp]; for a root-level key it returns nil.
func ParentKeys(key string) []string {
	segments := strings.Split(key, "/")
	if len(segments) < 2 {
		return nil
	}

	parents := make([]string, 0, len(segments)-1)
	for i := 1; i < len(segments); i++ {
		parents = append(parents, strings.Join(segments[:i], "/"))
	}
	return parents
}

// DirOf returns the directory portion of a key, "." for root-level keys
// (path.Dir semantics).
func DirOf(key string) string {
	return path.Dir(key)
}

// Leaf returns the key's final segment.
func Leaf(key string) string {
	return path.Base(key)
}

// OutputPath joins the output root with the key's segments using the
// platform separator. Keys with multiple nested segments map to nested
// directories with no further normalization.
func OutputPath(outputRoot, key string) string {
	return filepath.Join(outputRoot, filepath.FromSlash(key))
}

// FilePath reconstructs the root-relative slash path of the definition file
// of the given kind for a key.
func FilePath(key string, k Kind) string {
	return key + k.Suffix()
}

// DottedArg converts a key into the argument form the generation tool
// expects, with path separators replaced by ToolKeyDelimiter.
func DottedArg(key string) string {
	return strings.ReplaceAll(key, "/", ToolKeyDelimiter)
}
