// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mesonwire/internal/config"
	"mesonwire/internal/issue"
	"mesonwire/internal/meson"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// verbose mirrors --verbose; config may also switch it on.
	verbose bool
	// cfgFile mirrors --config.
	cfgFile string

	// rootCfg is the configuration loaded on startup; nil when loading
	// failed, in which case built-in defaults apply.
	rootCfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "mesonwire",
		Short: "A meson build-description generator for interface definitions",
		Long: TitleStyle.Render("mesonwire") + SubtitleStyle.Render(" - A meson build-description generator") + `

mesonwire scans a tree of interface definition files (*.interface.yaml,
*.errors.yaml, *.events.yaml) and generates the meson.build tree that
drives code, documentation, and registry generation, or invokes the
generation tool directly for a single interface key.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Point --directory at your definitions tree
  2. Generate the build tree with: mesonwire tree --output <dir>
  3. Subdir into the generated root from your meson project

` + SubtitleStyle.Render("Examples:") + `
  mesonwire tree -d defs -o gen       Generate the full build tree
  mesonwire list -d defs              List discovered interfaces
  mesonwire source net/tcp/stream     Generate sources for one interface
  mesonwire config show               Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mesonwire/config.toml)")

	for _, c := range []*cobra.Command{
		treeCmd,
		sourceCmd,
		markdownCmd,
		registryCmd,
		listCmd,
		configCmd,
		versionCmd,
	} {
		rootCmd.AddCommand(c)
	}
}

// Execute runs the CLI through fang, which supplies styled help, error
// printing, and signal handling. Called once, from main.
func Execute() {
	// fang owns the version flag, so the version goes through its option
	// rather than rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(meson.VersionString),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads configuration before any RunE handler executes. A
// load failure is reported but not fatal; the run continues on defaults.
func initRootConfig() {
	provider := config.NewProvider()
	cfg, err := provider.Load(context.Background(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	rootCfg = cfg

	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// effectiveConfig returns the loaded configuration, or built-in defaults
// when startup loading failed.
func effectiveConfig() *config.Config {
	if rootCfg != nil {
		return rootCfg
	}
	return config.DefaultConfig()
}

// formatErrorForDisplay prefers the actionable rendering when the error
// carries one; verbose mode includes the cause chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
