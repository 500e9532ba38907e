// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var (
	sourceDirectory string
	sourceOutput    string
	sourceTool      string
)

// sourceCmd generates the source artifacts for a single interface key
// without going through the build tree.
var sourceCmd = &cobra.Command{
	Use:   "source <key>",
	Short: "Generate source artifacts for one interface",
	Long: dedent.Dedent(`
		Invoke the generation tool directly for a single interface key and
		write the source artifacts into the output directory.

		Every definition kind present for the key contributes its fixed
		artifact set: the interface file yields the common, server, async
		server, and client headers plus the server implementation; the
		errors file yields error.hpp and error.cpp; the events file yields
		event.hpp and event.cpp. At least one definition file must exist
		for the key.

		The key names the definition files relative to the definitions
		directory, e.g. net/tcp/stream for net/tcp/stream.interface.yaml.`),
	Args: cobra.ExactArgs(1),
	RunE: runSource,
}

func init() {
	sourceCmd.Flags().StringVarP(&sourceDirectory, "directory", "d", "", "definitions directory (default is definitions_dir from config)")
	sourceCmd.Flags().StringVarP(&sourceOutput, "output", "o", "", "output directory (default is output_dir from config)")
	sourceCmd.Flags().StringVar(&sourceTool, "tool", "", "generation tool binary (default is tool from config)")
}

func runSource(cmd *cobra.Command, args []string) error {
	inv, err := buildInvoker(sourceDirectory, sourceOutput, sourceTool)
	if err != nil {
		return err
	}

	key := args[0]
	log.Debug("direct source mode", "key", key, "tool", inv.Tool)

	if err := inv.Source(cmd.Context(), key); err != nil {
		return classifyDirectError(err, inv.Tool)
	}
	return nil
}
