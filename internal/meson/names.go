// SPDX-License-Identifier: MPL-2.0

package meson

const (
	// ProductName prefixes every variable the generated files consume and
	// namespaces the generated install paths.
	ProductName = "mesonwire"

	// VersionString is printed by the version command and compared by the
	// generated root file to detect stale trees.
	VersionString = "mesonwire version 1"

	// FileName is the name of every generated build file.
	FileName = "meson.build"
)

// Variables the encompassing project declares before it subdirs into the
// generated root. Generated files consume them and never define them.
const (
	// VarProg locates this tool itself (for the staleness check and the
	// generation commands).
	VarProg = "mesonwire_prog"

	// VarToolProg locates the external code-generation tool.
	VarToolProg = "mesonwire_tool_prog"

	// VarDeps lists files every generation target depends on.
	VarDeps = "mesonwire_deps"

	// VarSelectedSubdirs lists the top-level directories the encompassing
	// project has opted into building.
	VarSelectedSubdirs = "mesonwire_selected_subdirs"
)

// VarCurrentPath is declared by generated directory files that hold at least
// one interface; its value is the directory's logical path relative to the
// scan root.
const VarCurrentPath = "mesonwire_current_path"

// Accumulator lists declared by the generated root file. Every target
// appends itself to exactly one of them.
const (
	ListSources  = "generated_sources"
	ListMarkdown = "generated_markdown"
	ListRegistry = "generated_registry"
)

// Install and build toggles, declared by the encompassing project.
const (
	VarInstallSources  = "mesonwire_install_sources"
	VarBuildSources    = "mesonwire_build_sources"
	VarInstallMarkdown = "mesonwire_install_markdown"
	VarBuildMarkdown   = "mesonwire_build_markdown"
	VarInstallRegistry = "mesonwire_install_registry"
	VarBuildRegistry   = "mesonwire_build_registry"
)

// NoInstall marks a target output that is never installed.
const NoInstall = "false"
