/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides the css command.
package css

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/wmtokens/cmd/render"
	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/panel"
)

// Cmd is the css cobra command.
var Cmd = &cobra.Command{
	Use:   "css <component>",
	Short: "Render token overrides as CSS",
	Long: `Apply token overrides to a component and print the rule that carries them.
Each value is checked against its token's control: colors must parse, select
tokens must use one of their options and numbers must be numeric.

Examples:
  wm-tokens css btn --set --wm-btn-background=#ff0000
  wm-tokens css btn --set --wm-btn-text-transform=uppercase --controls`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: workspace.CompleteComponents,
	RunE:              run,
}

func init() {
	Cmd.Flags().StringArray("set", nil, "Override a token: name=value (repeatable)")
	Cmd.Flags().Bool("controls", false, "Also print the panel's controls, grouped by category")
	Cmd.Flags().StringP("class", "c", "", "Class list of the element, for --controls")
	Cmd.Flags().String("state", "", "Interaction state, for --controls")
}

// Edit is one name=value override.
type Edit struct {
	Name  string
	Value string
}

func run(cmd *cobra.Command, args []string) error {
	sets, _ := cmd.Flags().GetStringArray("set")
	showControls, _ := cmd.Flags().GetBool("controls")
	className, _ := cmd.Flags().GetString("class")
	state, _ := cmd.Flags().GetString("state")

	edits, err := ParseEdits(sets)
	if err != nil {
		return err
	}

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
	pn.SetState(state)

	if err := Apply(pn, edits); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showControls {
		writeGroups(out, pn.Groups(className))
		fmt.Fprintln(out)
	}
	_, err = io.WriteString(out, pn.CSS())
	return err
}

// ParseEdits splits name=value arguments.
func ParseEdits(args []string) ([]Edit, error) {
	edits := make([]Edit, 0, len(args))
	for _, a := range args {
		name, value, ok := strings.Cut(a, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid override %q, want name=value", a)
		}
		edits = append(edits, Edit{Name: name, Value: value})
	}
	return edits, nil
}

// Apply sets every edit on pn and reports all the rejected ones together.
func Apply(pn *panel.Panel, edits []Edit) error {
	var errs error
	for _, e := range edits {
		errs = multierr.Append(errs, pn.Set(e.Name, e.Value))
	}
	return errs
}

func writeGroups(w io.Writer, groups []panel.Group) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.Heading)
		for _, c := range g.Controls {
			marker := " "
			if c.Edited {
				marker = "*"
			}
			swatch := ""
			if c.Hex != "" {
				swatch = render.ColorSwatch(c.Hex)
			}
			fmt.Fprintf(w, " %s %-24s %-7s %s%s\n", marker, c.Label, c.ControlType, swatch, c.Current)
		}
	}
}
