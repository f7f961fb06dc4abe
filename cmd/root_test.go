/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"slices"
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/wmtokens/cmd/workspace"
)

func TestRootCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"components", "parse", "match", "states", "extract", "search", "css", "watch", "mcp", "version"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing command %q in %v", want, names)
		}
	}
}

func TestRootFlagsBound(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set(workspace.KeyOrigin, "https://example.com"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set(workspace.KeyOrigin, "") })

	if got := viper.GetString(workspace.KeyOrigin); got != "https://example.com" {
		t.Errorf("viper origin = %q", got)
	}
	if got := viper.GetString(workspace.KeyRoot); got != "." {
		t.Errorf("viper root default = %q", got)
	}
}
