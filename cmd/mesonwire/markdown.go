// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var (
	markdownDirectory string
	markdownOutput    string
	markdownTool      string
	markdownPreview   bool
)

// markdownCmd generates the markdown documentation for a single interface
// key without going through the build tree.
var markdownCmd = &cobra.Command{
	Use:   "markdown <key>",
	Short: "Generate markdown documentation for one interface",
	Long: dedent.Dedent(`
		Invoke the generation tool directly for a single interface key and
		write its markdown documentation into the output directory.

		The documentation of every definition kind present for the key is
		concatenated into a single <leaf>.md file, in fixed order:
		interface, errors, events. At least one definition file must exist
		for the key.

		With --preview the generated document is additionally rendered to
		the terminal.`),
	Args: cobra.ExactArgs(1),
	RunE: runMarkdown,
}

func init() {
	markdownCmd.Flags().StringVarP(&markdownDirectory, "directory", "d", "", "definitions directory (default is definitions_dir from config)")
	markdownCmd.Flags().StringVarP(&markdownOutput, "output", "o", "", "output directory (default is output_dir from config)")
	markdownCmd.Flags().StringVar(&markdownTool, "tool", "", "generation tool binary (default is tool from config)")
	markdownCmd.Flags().BoolVar(&markdownPreview, "preview", false, "render the generated markdown to the terminal")
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	inv, err := buildInvoker(markdownDirectory, markdownOutput, markdownTool)
	if err != nil {
		return err
	}

	key := args[0]
	log.Debug("direct markdown mode", "key", key, "tool", inv.Tool)

	outPath, err := inv.Markdown(cmd.Context(), key)
	if err != nil {
		return classifyDirectError(err, inv.Tool)
	}

	if markdownPreview {
		doc, err := os.ReadFile(outPath)
		if err != nil {
			return fmt.Errorf("reading generated markdown %s: %w", outPath, err)
		}
		rendered, err := glamour.Render(string(doc), "dark")
		if err != nil {
			return fmt.Errorf("rendering generated markdown: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
	}
	return nil
}
