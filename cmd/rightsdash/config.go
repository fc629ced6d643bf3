// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rightsdash/rightsdash/internal/config"
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate rightsdash configuration",
	Long: `Inspect and validate rightsdash configuration.

Rightsdash reads .rightsdash.yaml (or .rightsdash.toml) in the working
directory. A global config at ~/.config/rightsdash/config.yaml provides
defaults. Repo-level settings override global settings, and flags override
both.`,
}

// configValidateCmd validates configuration files.
var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate configuration",
	Long: `Validate a config file, or the effective global and repo configuration
when no file is given. Every problem is reported at once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values with their source annotation.

Shows every set configuration value, annotated with whether it comes from the
repo config or the global config. Repo values override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the global configuration overlaid with the repo configuration, in
the YAML form accepted by .rightsdash.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	var (
		cfg    *config.Config
		source string
	)
	if len(args) == 1 {
		c, err := config.LoadFile(args[0])
		if err != nil {
			return exitError(ExitInvalidArgs, "rightsdash: %v", err)
		}
		cfg, source = c, args[0]
	} else {
		global, err := config.LoadGlobal()
		if err != nil {
			return exitError(ExitInvalidArgs, "rightsdash: failed to load global config: %v", err)
		}
		repo, err := config.Load(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "rightsdash: failed to load config: %v", err)
		}
		cfg, source = config.Overlay(global, repo), "effective configuration"
	}

	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "%s: %v", source, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", color.GreenString("✓"), source)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	globalMap, err := configToFlatMap(globalCfg)
	if err != nil {
		return err
	}
	repoMap, err := configToFlatMap(repoCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range repoMap {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintf(w, "Create %s or %s to set values.\n", config.FileName, config.GlobalConfigPath())
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source, globalColor, repoColor))
	}
	return nil
}

// configToFlatMap converts a Config to a flat dot-notation map, omitting zero
// values.
func configToFlatMap(cfg *config.Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return flattenMap(m, ""), nil
}

// flattenMap recursively flattens a nested map to dot-notation keys.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range flattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// formatSource returns a colorized source annotation.
func formatSource(source string, globalColor, repoColor *color.Color) string {
	switch source {
	case "global":
		return globalColor.Sprint("(global)")
	case "repo":
		return repoColor.Sprint("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	global, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "rightsdash: failed to load global config: %v", err)
	}
	repo, err := config.Load(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "rightsdash: failed to load config: %v", err)
	}
	return config.Write(cmd.OutOrStdout(), config.Overlay(global, repo))
}
