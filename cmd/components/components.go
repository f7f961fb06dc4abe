/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package components provides the components command.
package components

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/tokens"
	"bennypowers.dev/wmtokens/tokentree"
)

// Cmd is the components cobra command.
var Cmd = &cobra.Command{
	Use:   "components",
	Short: "List components defined by the token files",
	Long:  `List every component in the project's token files with its selector, layout and variants.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("shape", "", "Filter by layout: flat, variantGroups, metaAppearances")
	Cmd.Flags().Bool("with-variants", false, "Only list components that declare variants")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

type summary struct {
	Key      string   `json:"key"`
	Selector string   `json:"selector"`
	Shape    string   `json:"shape"`
	Tokens   int      `json:"tokens"`
	Variants []string `json:"variants"`
}

func run(cmd *cobra.Command, _ []string) error {
	shape, _ := cmd.Flags().GetString("shape")
	withVariants, _ := cmd.Flags().GetBool("with-variants")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}

	tree := w.Project.Tree
	var all []summary
	for _, key := range tree.Keys() {
		c, _ := tree.Component(key)
		cfg, err := w.Project.Component(w.Registry, key, logger.L())
		if err != nil {
			return err
		}
		all = append(all, summarize(c, cfg))
	}

	out := cmd.OutOrStdout()
	rows := filterComponents(all, shape, withVariants)
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "names":
		for _, s := range rows {
			fmt.Fprintln(out, s.Key)
		}
		return nil
	default:
		return outputTable(out, rows)
	}
}

func summarize(c *tokentree.Component, cfg *tokens.ComponentConfig) summary {
	return summary{
		Key:      c.Key,
		Selector: cfg.Selector,
		Shape:    c.Shape().String(),
		Tokens:   len(cfg.Tokens),
		Variants: cfg.VariantKeys,
	}
}

func filterComponents(all []summary, shape string, withVariants bool) []summary {
	out := make([]summary, 0, len(all))
	for _, s := range all {
		if shape != "" && s.Shape != shape {
			continue
		}
		if withVariants && len(s.Variants) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func outputTable(w io.Writer, rows []summary) error {
	keyW, selW, shapeW := 3, 8, 5
	for _, s := range rows {
		keyW = max(keyW, len(s.Key))
		selW = max(selW, len(s.Selector))
		shapeW = max(shapeW, len(s.Shape))
	}
	for _, s := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %3d tokens  %d variants\n",
			keyW, s.Key, selW, s.Selector, shapeW, s.Shape, s.Tokens, len(s.Variants)); err != nil {
			return err
		}
	}
	return nil
}
