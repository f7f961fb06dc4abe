/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import (
	"bytes"
	"testing"
)

func TestFilterComponents(t *testing.T) {
	all := []summary{
		{Key: "btn", Shape: "variantGroups", Variants: []string{"filled-primary", "outlined"}},
		{Key: "text", Shape: "metaAppearances", Variants: []string{"default-h1"}},
		{Key: "divider", Shape: "flat"},
		{Key: "spacer", Shape: "flat"},
	}

	t.Run("no filters", func(t *testing.T) {
		if got := filterComponents(all, "", false); len(got) != 4 {
			t.Errorf("expected 4 components, got %d", len(got))
		}
	})

	t.Run("filter by shape", func(t *testing.T) {
		got := filterComponents(all, "flat", false)
		if len(got) != 2 {
			t.Fatalf("expected 2 flat components, got %d", len(got))
		}
		for _, s := range got {
			if s.Shape != "flat" {
				t.Errorf("expected shape flat, got %s", s.Shape)
			}
		}
	})

	t.Run("with variants", func(t *testing.T) {
		got := filterComponents(all, "", true)
		if len(got) != 2 || got[0].Key != "btn" || got[1].Key != "text" {
			t.Errorf("unexpected components %v", got)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		got := filterComponents(all, "metaAppearances", true)
		if len(got) != 1 || got[0].Key != "text" {
			t.Errorf("unexpected components %v", got)
		}
	})
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []summary{
		{Key: "btn", Selector: ".app-button", Shape: "variantGroups", Tokens: 9, Variants: []string{"a", "b"}},
		{Key: "divider", Selector: ".app-divider", Shape: "flat", Tokens: 3},
	}
	if err := outputTable(&buf, rows); err != nil {
		t.Fatal(err)
	}

	want := "btn      .app-button   variantGroups    9 tokens  2 variants\n" +
		"divider  .app-divider  flat             3 tokens  0 variants\n"
	if buf.String() != want {
		t.Errorf("outputTable() =\n%q\nwant\n%q", buf.String(), want)
	}
}
