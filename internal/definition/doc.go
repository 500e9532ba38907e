// SPDX-License-Identifier: MPL-2.0

// Package definition describes the on-disk naming contract for interface
// definition files and the canonical key space derived from it.
//
// Every logical interface is described by up to three sibling files sharing
// a base name: <key>.interface.yaml, <key>.errors.yaml, <key>.events.yaml.
// The interface key is the file's scan-root-relative path with the kind
// suffix stripped, always slash-separated. File contents are opaque to this
// tool; only names and suffixes matter.
package definition
