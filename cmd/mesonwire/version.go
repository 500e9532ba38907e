// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"mesonwire/internal/meson"

	"github.com/spf13/cobra"
)

// versionCmd prints the pinned version line. Generated root files embed the
// same string and compare it against this command's output to detect trees
// generated by a different version, so the output format is a contract.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version string",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), meson.VersionString)
	return nil
}
