// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var (
	registryDirectory string
	registryOutput    string
	registryTool      string
)

// registryCmd generates the event registry for a single interface key
// without going through the build tree.
var registryCmd = &cobra.Command{
	Use:   "registry <key>",
	Short: "Generate the event registry for one interface",
	Long: dedent.Dedent(`
		Invoke the generation tool directly for a single interface key and
		write its event registry as <leaf>.json into the output directory.

		Unlike the other direct modes, the registry requires the events
		definition file specifically; interface or errors files alone do
		not produce a registry. Nothing is written when the events file is
		missing.`),
	Args: cobra.ExactArgs(1),
	RunE: runRegistry,
}

func init() {
	registryCmd.Flags().StringVarP(&registryDirectory, "directory", "d", "", "definitions directory (default is definitions_dir from config)")
	registryCmd.Flags().StringVarP(&registryOutput, "output", "o", "", "output directory (default is output_dir from config)")
	registryCmd.Flags().StringVar(&registryTool, "tool", "", "generation tool binary (default is tool from config)")
}

func runRegistry(cmd *cobra.Command, args []string) error {
	inv, err := buildInvoker(registryDirectory, registryOutput, registryTool)
	if err != nil {
		return err
	}

	key := args[0]
	log.Debug("direct registry mode", "key", key, "tool", inv.Tool)

	if err := inv.Registry(cmd.Context(), key); err != nil {
		return classifyDirectError(err, inv.Tool)
	}
	return nil
}
