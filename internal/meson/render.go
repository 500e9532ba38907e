// SPDX-License-Identifier: MPL-2.0

package meson

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	indent     = "    "
	listIndent = indent + indent
)

type (
	// Value is one element of a rendered command vector: either a quoted
	// string literal or a raw meson expression.
	Value struct {
		text string
		raw  bool
	}

	// Arg is one line of a rendered command vector. A flag and its value
	// share a line, so they read as a pair.
	Arg []Value

	// Target describes one custom_target stanza and the accumulator list
	// it appends itself to.
	Target struct {
		// List is the accumulator the target is added to.
		List string
		// Name is the meson target name; rendered through underscorify()
		// so the key's slashes become legal target-name characters.
		Name string
		// Inputs are definition file paths relative to the file being
		// rendered.
		Inputs []string
		// Outputs are the artifact file names the command produces.
		Outputs []string
		// Install is the meson expression controlling installation.
		Install string
		// InstallDirs holds one meson expression per output; NoInstall
		// for outputs that are never installed.
		InstallDirs []string
		// BuildByDefault is the meson expression for build_by_default.
		BuildByDefault string
		// DependFiles is the meson expression for depend_files.
		DependFiles string
		// Command is the generation command, one Arg per rendered line.
		Command []Arg
	}
)

// Str returns a Value rendered as a quoted meson string literal.
func Str(s string) Value {
	return Value{text: s}
}

// Expr returns a Value rendered verbatim as meson code.
func Expr(s string) Value {
	return Value{text: s, raw: true}
}

func (v Value) render() string {
	if v.raw {
		return v.text
	}
	return Quote(v.text)
}

// Quote renders s as a single-quoted meson string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// Header returns the comment line that opens every generated file.
func Header() string {
	return fmt.Sprintf("# Generated by %s; do not edit by hand.\n", ProductName)
}

// RootPrologue returns the opening text of the root build file: header,
// version staleness check, accumulator declarations, and the loop over the
// externally selected top-level directories.
func RootPrologue() string {
	var sb strings.Builder

	sb.WriteString(Header())
	fmt.Fprintf(&sb, "# Regenerate with: %s tree --directory <defs> --output <this dir>\n", ProductName)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s_ver = run_command(\n", ProductName)
	fmt.Fprintf(&sb, "%s%s,\n", indent, VarProg)
	fmt.Fprintf(&sb, "%s'version',\n", indent)
	fmt.Fprintf(&sb, "%scheck: true,\n", indent)
	sb.WriteString(").stdout().strip().split('\\n')[0]\n")
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "if %s_ver != %s\n", ProductName, Quote(VersionString))
	fmt.Fprintf(&sb, "%swarning('Generated meson files are from a different %s version.')\n", indent, ProductName)
	fmt.Fprintf(&sb, "%swarning('Expected \"%s\" but found \"' + %s_ver + '\".')\n", indent, VersionString, ProductName)
	sb.WriteString("endif\n")
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s = []\n", ListSources)
	fmt.Fprintf(&sb, "%s = []\n", ListMarkdown)
	fmt.Fprintf(&sb, "%s = []\n", ListRegistry)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "foreach %s_subdir : %s\n", ProductName, VarSelectedSubdirs)
	fmt.Fprintf(&sb, "%ssubdir(%s_subdir)\n", indent, ProductName)
	sb.WriteString("endforeach\n")

	return sb.String()
}

// SubdirLine returns the inclusion line linking a child directory into its
// parent's build file.
func SubdirLine(child string) string {
	return fmt.Sprintf("subdir(%s)\n", Quote(child))
}

// CurrentPathStanza returns the logical-path declaration for a directory
// that holds at least one interface. relPath is slash-separated and relative
// to the scan root; "." for interfaces at the root itself.
func CurrentPathStanza(relPath string) string {
	return fmt.Sprintf("\n%s = %s\n", VarCurrentPath, Quote(relPath))
}

// RenderTarget returns the full accumulator-append stanza for one target,
// including its separating blank line.
func RenderTarget(t *Target) string {
	var sb strings.Builder

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s += custom_target(\n", t.List)
	fmt.Fprintf(&sb, "%s%s.underscorify(),\n", indent, Quote(t.Name))

	writeQuotedList(&sb, "input", t.Inputs)
	writeQuotedList(&sb, "output", t.Outputs)

	fmt.Fprintf(&sb, "%sinstall: %s,\n", indent, t.Install)
	writeRawList(&sb, "install_dir", t.InstallDirs)

	fmt.Fprintf(&sb, "%sbuild_by_default: %s,\n", indent, t.BuildByDefault)
	fmt.Fprintf(&sb, "%sdepend_files: %s,\n", indent, t.DependFiles)

	fmt.Fprintf(&sb, "%scommand: [\n", indent)
	for _, arg := range t.Command {
		parts := make([]string, len(arg))
		for i, v := range arg {
			parts[i] = v.render()
		}
		fmt.Fprintf(&sb, "%s%s,\n", listIndent, strings.Join(parts, ", "))
	}
	fmt.Fprintf(&sb, "%s],\n", indent)

	sb.WriteString(")\n")

	return sb.String()
}

func writeQuotedList(sb *strings.Builder, field string, items []string) {
	fmt.Fprintf(sb, "%s%s: [\n", indent, field)
	for _, item := range items {
		fmt.Fprintf(sb, "%s%s,\n", listIndent, Quote(item))
	}
	fmt.Fprintf(sb, "%s],\n", indent)
}

func writeRawList(sb *strings.Builder, field string, items []string) {
	fmt.Fprintf(sb, "%s%s: [\n", indent, field)
	for _, item := range items {
		fmt.Fprintf(sb, "%s%s,\n", listIndent, item)
	}
	fmt.Fprintf(sb, "%s],\n", indent)
}

// DirExpr returns the meson expression that locates dir from the file being
// rendered: a current_source_dir() join for relative paths, a plain string
// literal for absolute ones.
func DirExpr(dir string) string {
	if filepath.IsAbs(dir) {
		return Quote(filepath.ToSlash(dir))
	}
	return "meson.current_source_dir() / " + Quote(filepath.ToSlash(dir))
}

// IncludeInstallDir returns the install expression for the public headers
// of an interface key.
func IncludeInstallDir(key string) string {
	return "get_option('includedir') / " + Quote(key)
}

// DocInstallDir returns the install expression for generated documentation,
// namespaced by the product name and the directory's logical path.
func DocInstallDir() string {
	return fmt.Sprintf("get_option('datadir') / 'doc' / %s / %s", Quote(ProductName), VarCurrentPath)
}

// RegistryInstallDir returns the install expression for registry artifacts.
func RegistryInstallDir() string {
	return fmt.Sprintf("get_option('datadir') / %s / 'registry'", Quote(ProductName))
}
