// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"mesonwire/internal/config"
	"mesonwire/internal/issue"

	"github.com/spf13/cobra"
)

var (
	// configCmd is the parent of the configuration management subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage mesonwire configuration",
		Long: `Manage mesonwire configuration.

Configuration is stored in:
  - Linux: ~/.config/mesonwire/config.toml
  - macOS: ~/Library/Application Support/mesonwire/config.toml
  - Windows: %APPDATA%\mesonwire\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	configDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as TOML",
		Args:  cobra.NoArgs,
		RunE:  runConfigDump,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	conf, cfgPath, err := config.Resolve(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if cfgPath != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("definitions_dir"), SuccessStyle.Render(conf.DefinitionsDir))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("output_dir"), SuccessStyle.Render(conf.OutputDir))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("tool"), SuccessStyle.Render(conf.Tool))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("list_format"), SuccessStyle.Render(conf.ListFormat.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(out, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", conf.UI.Verbose)))

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	_, cfgPath, err := config.Resolve(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err == nil {
		if cfgPath == "" {
			cfgPath = SubtitleStyle.Render("(built-in defaults)")
		}
		fmt.Fprintf(out, "In use: %s\n", cfgPath)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	conf, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	switch key {
	case "definitions_dir":
		conf.DefinitionsDir = value

	case "output_dir":
		conf.OutputDir = value

	case "tool":
		conf.Tool = value

	case "list_format":
		conf.ListFormat = config.ListFormat(value)

	case "ui.verbose":
		conf.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: definitions_dir, output_dir, tool, list_format, ui.verbose", key)
	}

	if err := config.Validate(conf); err != nil {
		return err
	}

	if err := config.Save(conf); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	conf, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	tomlContent, err := config.GenerateTOML(conf)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tomlContent)
	return nil
}
