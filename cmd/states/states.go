/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package states provides the states command.
package states

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/tokens"
)

// Cmd is the states cobra command.
var Cmd = &cobra.Command{
	Use:               "states <component>",
	Short:             "List the interaction states of a component",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: workspace.CompleteComponents,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workspace.Open(cmd.Context())
		if err != nil {
			return err
		}
		key, err := w.ComponentArg(args)
		if err != nil {
			return err
		}
		for _, s := range tokens.DetectAvailableStates(w.Project.Tree, key) {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}
