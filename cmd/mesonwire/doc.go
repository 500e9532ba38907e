// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for mesonwire.
//
// This package implements the Cobra command hierarchy for the mesonwire CLI:
// the root command, the tree mode that generates the full meson.build tree,
// the direct modes (source, markdown, registry) that invoke the generation
// tool for a single interface, and supporting commands for listing
// discovered interfaces and managing configuration.
package cmd
