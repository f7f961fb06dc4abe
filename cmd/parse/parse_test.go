/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"testing"

	"bennypowers.dev/wmtokens/panel"
	"bennypowers.dev/wmtokens/tokens"
)

func TestFilterCategory(t *testing.T) {
	defs := []tokens.Definition{
		{Name: "--wm-btn-background", Category: "colors"},
		{Name: "--wm-btn-padding", Category: "padding"},
		{Name: "--wm-btn-color", Category: "colors"},
	}

	tests := []struct {
		category string
		want     []string
	}{
		{"", []string{"--wm-btn-background", "--wm-btn-padding", "--wm-btn-color"}},
		{"colors", []string{"--wm-btn-background", "--wm-btn-color"}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			in := append([]tokens.Definition(nil), defs...)
			got := filterCategory(in, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d", len(tt.want), len(got))
			}
			for i, d := range got {
				if d.Name != tt.want[i] {
					t.Errorf("token %d = %s, want %s", i, d.Name, tt.want[i])
				}
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	controls := []panel.Control{
		{Definition: tokens.Definition{Name: "--wm-a", Label: "a"}, Current: "1px", Edited: true},
		{Definition: tokens.Definition{Name: "--wm-b", Label: "b"}},
	}
	defs := definitions(controls)
	if len(defs) != 2 || defs[0].Name != "--wm-a" || defs[1].Label != "b" {
		t.Errorf("unexpected definitions %v", defs)
	}
}
