/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for wm-tokens.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/wmtokens/cmd/components"
	"bennypowers.dev/wmtokens/cmd/css"
	"bennypowers.dev/wmtokens/cmd/extract"
	"bennypowers.dev/wmtokens/cmd/match"
	"bennypowers.dev/wmtokens/cmd/mcp"
	"bennypowers.dev/wmtokens/cmd/parse"
	"bennypowers.dev/wmtokens/cmd/search"
	"bennypowers.dev/wmtokens/cmd/states"
	"bennypowers.dev/wmtokens/cmd/version"
	"bennypowers.dev/wmtokens/cmd/watch"
	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wm-tokens",
	Short: "Inspect and edit component design tokens against a live preview",
	Long: `wm-tokens reads component token definitions, resolves their references
against the custom properties of a preview document and exposes them as
editable controls.

Settings come from .config/wm-tokens.{yaml,json}, then WM_TOKENS_* environment
variables, then flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebug(viper.GetBool(workspace.KeyDebug))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(workspace.KeyRoot, "r", ".", "Project root holding .config/wm-tokens.yaml")
	flags.StringSliceP(workspace.KeyTokens, "t", nil, "Token files or globs, replacing the config's")
	flags.StringP(workspace.KeyDocument, "d", "", "Preview HTML document")
	flags.StringSlice(workspace.KeyStylesheet, nil, "Preview stylesheets, used when there is no document")
	flags.String(workspace.KeyOrigin, "", "Origin of the preview, for same-origin stylesheet checks")
	flags.Bool(workspace.KeyDebug, false, "Enable debug logging")

	for _, key := range []string{
		workspace.KeyRoot,
		workspace.KeyTokens,
		workspace.KeyDocument,
		workspace.KeyStylesheet,
		workspace.KeyOrigin,
		workspace.KeyDebug,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("WM_TOKENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(components.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(match.Cmd)
	rootCmd.AddCommand(states.Cmd)
	rootCmd.AddCommand(extract.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(css.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
