/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match provides the match command.
package match

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/render"
	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/matcher"
)

// Cmd is the match cobra command.
var Cmd = &cobra.Command{
	Use:   "match <component> <class-list>",
	Short: "Find the variant an element's classes select",
	Long: `Match an element's class list against a component's variants. Strategies
are tried in order and the first match wins:

  ` + strategyNames() + `

Example:
  wm-tokens match btn "app-button btn-filled btn-danger"`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: workspace.CompleteComponents,
	RunE:              run,
}

func init() {
	Cmd.Flags().Bool("tokens", false, "Also list the tokens that apply")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func strategyNames() string {
	names := make([]string, 0, len(matcher.Strategies))
	for _, s := range matcher.Strategies {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func run(cmd *cobra.Command, args []string) error {
	showTokens, _ := cmd.Flags().GetBool("tokens")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	key, err := w.ComponentArg(args)
	if err != nil {
		return err
	}
	cfg, err := w.Project.Component(w.Registry, key, logger.L())
	if err != nil {
		return err
	}

	className := args[1]
	res, ok := matcher.Match(className, cfg, w.Project.Tree, key)
	out := cmd.OutOrStdout()

	if format == "json" {
		type output struct {
			Matched  bool   `json:"matched"`
			Variant  string `json:"variant,omitempty"`
			Strategy string `json:"strategy,omitempty"`
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output{Matched: ok, Variant: res.Variant, Strategy: res.Strategy})
	}

	writeResult(out, res, ok)
	if !showTokens {
		return nil
	}
	fmt.Fprintln(out)
	defs := matcher.TokensForClassName(cfg, className, w.Project.Tree, key)
	return render.Table(out, render.ComputeRows(defs))
}

func writeResult(w io.Writer, res matcher.Result, ok bool) {
	if !ok {
		fmt.Fprintln(w, "no variant matched; base tokens apply")
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", res.Variant, res.Strategy)
}
