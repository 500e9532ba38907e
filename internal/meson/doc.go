// SPDX-License-Identifier: MPL-2.0

// Package meson renders the generated meson.build surface.
//
// The package owns every name that appears in generated files (variables,
// accumulator lists, install toggles) and the textual shape of every stanza
// (root prologue, subdir inclusion, logical-path declaration, custom_target
// blocks). Rendering is purely deterministic: the same inputs always produce
// the same bytes, which is what makes regeneration idempotent.
//
// Generated files are created once and then only appended to. CreateFile
// truncates; AppendFile refuses to create, so an append against a file the
// create phase never laid down fails loudly instead of producing a partial
// tree.
package meson
