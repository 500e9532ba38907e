// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id selects an issue card from the catalog.
type Id int

const (
	DefinitionsNotFoundId Id = iota + 1
	InvalidExtensionId
	MissingDefinitionId
	UnrecognizedKindId
	ToolNotFoundId
	ToolFailedId
	ConfigLoadFailedId
	OutputWriteFailedId
)

// MarkdownMsg is a card body, written in markdown.
type MarkdownMsg string

// Issue is one catalog entry: a user-facing explanation of a known failure
// class, with concrete remediation steps.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render produces the terminal form of the card. stylePath selects a glamour
// style, "dark" in normal operation.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// render is a seam for tests, which swap in a passthrough to assert on card
// content without ANSI escapes.
var render = glamour.Render

var (
	definitionsNotFoundIssue = &Issue{
		id: DefinitionsNotFoundId,
		mdMsg: `
# No definition files found!

We scanned the definitions directory but found no interface, errors, or
events definition files.

## Recognized file names:
- ` + "`<name>.interface.yaml`" + `
- ` + "`<name>.errors.yaml`" + `
- ` + "`<name>.events.yaml`" + `

## Things you can try:
- Check that you pointed at the right directory:
~~~
$ mesonwire list --directory path/to/definitions
~~~

- Verify the file names carry one of the recognized suffixes
- Definition files may live at any depth; subdirectories are scanned too`,
	}

	invalidExtensionIssue = &Issue{
		id: InvalidExtensionId,
		mdMsg: `
# Unrecognized definition file extension!

A file was submitted for interface-key extraction but its name matches none
of the recognized definition suffixes.

## Recognized file names:
- ` + "`<name>.interface.yaml`" + `
- ` + "`<name>.errors.yaml`" + `
- ` + "`<name>.events.yaml`" + `

## Things you can try:
- Rename the file to carry one of the suffixes above
- The name before the suffix must be non-empty: a bare ` + "`.interface.yaml`" + ` is not
  a definition file`,
	}

	missingDefinitionIssue = &Issue{
		id: MissingDefinitionId,
		mdMsg: `
# Missing definition file!

The requested interface has no definition file of the required kind under the
definitions directory.

## Requirements per mode:
- **source** and **markdown**: at least one of the three definition files
- **registry**: the ` + "`.events.yaml`" + ` file specifically

## Things you can try:
- List the interfaces that were actually discovered:
~~~
$ mesonwire list --directory path/to/definitions
~~~

- Check the interface key for typos; keys use ` + "`/`" + ` separators:
~~~
$ mesonwire source --directory defs --output out net/tcp/Stream
~~~

- Verify the definition file sits at the path matching its key`,
	}

	unrecognizedKindIssue = &Issue{
		id: UnrecognizedKindId,
		mdMsg: `
# Unrecognized definition kind!

An interface record carried a definition kind the target emitter does not
know. This indicates an internal inconsistency between the scanner and the
emitter and should never occur in correct operation.

## Things you can try:
- Re-run the generation from a clean output directory
- Run with verbose mode and report the log output:
~~~
$ mesonwire --verbose tree --directory defs --output out
~~~`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Generation tool not found!

The code-generation tool could not be started.

## Things you can try:
- Check that the tool is installed and on your PATH:
~~~
$ which mesonwire-gen
~~~

- Point at the binary explicitly:
~~~
$ mesonwire source --tool /path/to/mesonwire-gen --directory defs --output out net/tcp/Stream
~~~

- Or set it once in your config file:
~~~toml
tool = "/path/to/mesonwire-gen"
~~~`,
	}

	toolFailedIssue = &Issue{
		id: ToolFailedId,
		mdMsg: `
# Generation tool failed!

The code-generation tool exited with a non-zero status. Its exit code is
propagated unchanged, and its stderr output is reproduced above.

## Common causes:
- Malformed YAML in the definition file
- Definition content referencing unknown types
- A tool version too old for the definition schema

## Things you can try:
- Run the failing invocation by hand to reproduce:
~~~
$ mesonwire-gen interface common-header net.tcp.Stream
~~~

- Validate the definition file's YAML syntax
- Check the tool version matches your definitions`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the mesonwire configuration file.

## Configuration file locations:
- Linux: ~/.config/mesonwire/config.toml
- macOS: ~/Library/Application Support/mesonwire/config.toml
- Windows: %APPDATA%\mesonwire\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ mesonwire config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/mesonwire/config.toml
~~~

## Example configuration:
~~~toml
definitions_dir = "."
output_dir = "."
tool = "mesonwire-gen"
list_format = "table"

[ui]
verbose = false
~~~`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write build files!

A build-description file or its directory could not be created.

## Common causes:
- The output directory is not writable
- A file exists where a directory is needed
- The disk is full

## Things you can try:
- Check permissions on the output directory
- Point --output at a directory you own
- Regeneration is safe: remove the partial output tree and run again`,
	}

	issues = map[Id]*Issue{
		definitionsNotFoundIssue.Id(): definitionsNotFoundIssue,
		invalidExtensionIssue.Id():    invalidExtensionIssue,
		missingDefinitionIssue.Id():   missingDefinitionIssue,
		unrecognizedKindIssue.Id():    unrecognizedKindIssue,
		toolNotFoundIssue.Id():        toolNotFoundIssue,
		toolFailedIssue.Id():          toolFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		outputWriteFailedIssue.Id():   outputWriteFailedIssue,
	}
)

// Values returns every cataloged issue, ordered by id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)

	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the catalog entry for id, or nil for an unknown id.
func Get(id Id) *Issue {
	return issues[id]
}
