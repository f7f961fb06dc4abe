/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command.
package search

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/tokens"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search component tokens by name, value, or type",
	Long:  `Search the tokens of every component, variants included, by name, value, or type with optional regex support.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("type", "", "Filter by token type: color, font, space, radius, text")
	Cmd.Flags().String("component", "", "Only search this component")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// hit is a token that matched the query.
type hit struct {
	Component string `json:"component"`
	Variant   string `json:"variant,omitempty"`
	tokens.Definition
}

// query holds the search criteria.
type query struct {
	text      string
	pattern   *regexp.Regexp
	nameOnly  bool
	valueOnly bool
	typ       string
}

func run(cmd *cobra.Command, args []string) error {
	q := query{text: args[0]}
	q.nameOnly, _ = cmd.Flags().GetBool("name")
	q.valueOnly, _ = cmd.Flags().GetBool("value")
	q.typ, _ = cmd.Flags().GetString("type")
	component, _ := cmd.Flags().GetString("component")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	if useRegex {
		var err error
		q.pattern, err = regexp.Compile(q.text)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	keys := w.Project.Tree.Keys()
	if component != "" {
		key, err := w.ComponentArg([]string{component})
		if err != nil {
			return err
		}
		keys = []string{key}
	}

	var configs []*tokens.ComponentConfig
	for _, key := range keys {
		cfg, err := w.Project.Component(w.Registry, key, logger.L())
		if err != nil {
			return err
		}
		configs = append(configs, cfg)
	}
	hits := search(configs, q)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	case "names":
		for _, h := range hits {
			fmt.Fprintln(out, h.Name)
		}
		return nil
	default:
		return outputTable(out, hits)
	}
}

// search collects the tokens of configs matching q, sorted by component
// then name.
func search(configs []*tokens.ComponentConfig, q query) []hit {
	hits := make([]hit, 0)
	collect := func(component, variant string, defs []tokens.Definition) {
		for _, d := range defs {
			if q.matches(d) {
				hits = append(hits, hit{Component: component, Variant: variant, Definition: d})
			}
		}
	}
	for _, cfg := range configs {
		collect(cfg.ComponentName, "", cfg.Tokens)
		for _, v := range cfg.VariantKeys {
			collect(cfg.ComponentName, v, cfg.Variants[v])
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Or(
			cmp.Compare(a.Component, b.Component),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return hits
}

func (q query) matches(d tokens.Definition) bool {
	if q.typ != "" && string(d.Type) != q.typ {
		return false
	}
	switch {
	case q.nameOnly:
		return matchString(d.Name, q.text, q.pattern)
	case q.valueOnly:
		return matchString(d.Value, q.text, q.pattern)
	default:
		return matchString(d.Name, q.text, q.pattern) ||
			matchString(d.Value, q.text, q.pattern) ||
			matchString(string(d.Type), q.text, q.pattern) ||
			matchString(d.Description, q.text, q.pattern)
	}
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(w io.Writer, hits []hit) error {
	if len(hits) == 0 {
		return nil
	}

	componentWidth := 9
	nameWidth := 4
	for _, h := range hits {
		componentWidth = max(componentWidth, len(location(h)))
		nameWidth = max(nameWidth, len(h.Name))
	}

	for _, h := range hits {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-6s  %s\n",
			componentWidth, location(h), nameWidth, h.Name, h.Type, h.Value); err != nil {
			return err
		}
	}
	return nil
}

func location(h hit) string {
	if h.Variant == "" {
		return h.Component
	}
	return h.Component + "/" + h.Variant
}
