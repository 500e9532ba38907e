// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"mesonwire/internal/config"
	"mesonwire/internal/definition"
	"mesonwire/internal/discovery"
	"mesonwire/internal/issue"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	markPresent = "✓"
	markAbsent  = "-"
)

var (
	listDirectory string
	listFormat    string
)

// listCmd prints the interface index a scan of the definitions directory
// discovers.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the interfaces discovered under the definitions directory",
	Long: dedent.Dedent(`
		Scan the definitions directory and print every discovered
		interface key together with the definition kinds present for it.

		The default table shows one row per interface; yaml and json
		output additionally include the definition file paths relative to
		the definitions directory.`),
	Args: cobra.NoArgs,
	RunE: runList,
}

// listEntry is one interface in yaml/json output.
type listEntry struct {
	Key   string   `json:"key" yaml:"key"`
	Kinds []string `json:"kinds" yaml:"kinds"`
	Files []string `json:"files" yaml:"files"`
}

func init() {
	listCmd.Flags().StringVarP(&listDirectory, "directory", "d", "", "definitions directory (default is definitions_dir from config)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "output format: table, yaml, or json (default is list_format from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	conf := effectiveConfig()

	dir := listDirectory
	if dir == "" {
		dir = conf.DefinitionsDir
	}
	format := conf.ListFormat
	if listFormat != "" {
		format = config.ListFormat(listFormat)
	}
	if ok, errs := format.IsValid(); !ok {
		return errs[0]
	}

	idx, err := discovery.Scan(dir)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("scan definitions").
			WithResource(dir).
			WithSuggestion("Check that the definitions directory exists and is readable").
			WithSuggestion("Pass the definitions root with --directory").
			Wrap(err).
			BuildError()
	}
	if idx.Len() == 0 {
		renderIssue(issue.DefinitionsNotFoundId)
		return issue.NewErrorContext().
			WithOperation("list interfaces").
			WithResource(dir).
			WithSuggestion("Check that definition files use a recognized suffix").
			Wrap(discovery.ErrNoDefinitions).
			BuildError()
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.ListFormatTable:
		fmt.Fprint(out, renderListTable(idx))
	case config.ListFormatYAML:
		data, err := yaml.Marshal(listEntries(idx))
		if err != nil {
			return fmt.Errorf("marshaling interface list: %w", err)
		}
		fmt.Fprint(out, string(data))
	case config.ListFormatJSON:
		data, err := json.MarshalIndent(listEntries(idx), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling interface list: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

// renderListTable renders the index as a fixed-column table, one row per
// interface key with a presence mark per definition kind.
func renderListTable(idx *discovery.Index) string {
	keyWidth := len("KEY")
	for _, key := range idx.Keys() {
		if len(key) > keyWidth {
			keyWidth = len(key)
		}
	}

	columns := []struct {
		kind  definition.Kind
		title string
	}{
		{definition.KindInterface, "INTERFACE"},
		{definition.KindErrors, "ERRORS"},
		{definition.KindEvents, "EVENTS"},
	}

	var sb strings.Builder
	header := fmt.Sprintf("%-*s", keyWidth, "KEY")
	for _, col := range columns {
		header += "  " + col.title
	}
	sb.WriteString(TitleStyle.Render(header))
	sb.WriteByte('\n')

	for _, rec := range idx.Records() {
		sb.WriteString(CmdStyle.Render(fmt.Sprintf("%-*s", keyWidth, rec.Key)))
		for _, col := range columns {
			mark, style := markAbsent, SubtitleStyle
			if rec.Has(col.kind) {
				mark, style = markPresent, SuccessStyle
			}
			sb.WriteString("  ")
			sb.WriteString(style.Render(fmt.Sprintf("%-*s", len(col.title), mark)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// listEntries flattens the index for yaml/json output, kinds and files in
// canonical kind order.
func listEntries(idx *discovery.Index) []listEntry {
	entries := make([]listEntry, 0, idx.Len())
	for _, rec := range idx.Records() {
		entry := listEntry{Key: rec.Key}
		for _, kind := range rec.Kinds() {
			entry.Kinds = append(entry.Kinds, kind.String())
			if f, ok := rec.File(kind); ok {
				entry.Files = append(entry.Files, f.Rel)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
