// SPDX-License-Identifier: MPL-2.0

// Package tree turns a discovered interface index into a generated
// meson.build tree that mirrors the definition hierarchy.
//
// The Builder works in four strictly ordered phases: it creates the root
// build file, then creates and links every intermediate directory level
// (shallowest first, gated by a visited set so each level is created and
// linked exactly once), then appends the logical-path declaration to every
// directory that holds interfaces, and finally appends the generation
// targets for every interface key. Appends never interleave across phases,
// so subdir links always precede path declarations, which always precede
// target blocks.
//
// The Emitter renders one source target and one markdown target per
// interface key, plus a registry target for keys that define events. All
// iteration follows the index's byte-wise key order, which makes the whole
// tree reproducible byte for byte.
package tree
