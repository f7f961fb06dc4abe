/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command.
package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/render"
	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/panel"
	"bennypowers.dev/wmtokens/tokens"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <component>",
	Short: "Show a component's resolved tokens",
	Long: `Parse a component's token definitions and resolve their values against the
preview document, falling back to catalog defaults.

Examples:
  # Base tokens as a table
  wm-tokens parse btn

  # Tokens for an element's class list, labelled for the hover state
  wm-tokens parse btn --class "btn-filled btn-danger" --state hover

  # Markdown, grouped by category
  wm-tokens parse btn --format markdown`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: workspace.CompleteComponents,
	RunE:              run,
}

func init() {
	Cmd.Flags().StringP("class", "c", "", "Class list of the element, to apply its variant")
	Cmd.Flags().String("state", "", "Interaction state to label tokens for (defaults to the config's state)")
	Cmd.Flags().String("category", "", "Only show tokens in this category")
	Cmd.Flags().StringP("format", "f", "table", "Output format: "+strings.Join(render.Formats, ", "))
}

func run(cmd *cobra.Command, args []string) error {
	className, _ := cmd.Flags().GetString("class")
	state, _ := cmd.Flags().GetString("state")
	category, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	key, err := w.ComponentArg(args)
	if err != nil {
		return err
	}

	pn, err := w.Project.Panel(w.Registry, key, logger.L())
	if err != nil {
		return err
	}
	if state == "" {
		state = w.Project.Config.State
	}
	if !slices.Contains(pn.States(), state) {
		return fmt.Errorf("component %q has no state %q; available: %v", key, state, pn.States())
	}
	pn.SetState(state)

	defs := filterCategory(definitions(pn.Controls(className)), category)
	return render.Write(cmd.OutOrStdout(), format, pn.Config().Selector, render.ComputeRows(defs))
}

func definitions(controls []panel.Control) []tokens.Definition {
	out := make([]tokens.Definition, 0, len(controls))
	for _, c := range controls {
		out = append(out, c.Definition)
	}
	return out
}

func filterCategory(defs []tokens.Definition, category string) []tokens.Definition {
	if category == "" {
		return defs
	}
	return slices.DeleteFunc(defs, func(d tokens.Definition) bool {
		return d.Category != category
	})
}
