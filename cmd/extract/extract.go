/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract provides the extract command.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
)

// Cmd is the extract cobra command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Show the custom properties read from the preview document",
	Long: `Extract the prefixed custom properties declared on the root of the preview
document, with their computed values. With --references, show the token
references they answer instead.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("references", false, "Show the reference map instead of variables")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, _ []string) error {
	references, _ := cmd.Flags().GetBool("references")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	if w.Project.Document == nil {
		return errors.New("no preview document configured; set document or stylesheets")
	}

	e := w.Project.Extractor(w.Registry, logger.L())
	vars := e.ExtractVariables(w.Project.Preview())
	m := map[string]string(vars)
	if references {
		m = e.BuildReferenceMap(vars)
	}

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	return writeText(cmd.OutOrStdout(), m)
}

// writeText prints one "key: value" line per entry, sorted by key.
func writeText(w io.Writer, m map[string]string) error {
	width := 0
	for k := range m {
		width = max(width, len(k))
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, k+":", m[k]); err != nil {
			return err
		}
	}
	return nil
}
