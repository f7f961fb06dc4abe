/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package catalog_test

import (
	"strings"
	"testing"

	"bennypowers.dev/wmtokens/catalog"
)

func TestVariableFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"color.primary.@", "--wm-color-primary"},
		{"space.6", "--wm-space-6"},
		{"icon.size.md", "--wm-icon-size-md"},
		{"font.line-height.small", "--wm-font-line-height-small"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := catalog.VariableFor(tt.path); got != tt.expected {
				t.Errorf("VariableFor(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := catalog.Lookup("{color.primary.@.value}")
	if !ok {
		t.Fatal("expected primary color in catalog")
	}
	if e.Variable != "--wm-color-primary" {
		t.Errorf("Variable = %q, want --wm-color-primary", e.Variable)
	}
	if e.Fallback != "#FF7250" {
		t.Errorf("Fallback = %q, want #FF7250", e.Fallback)
	}

	if _, ok := catalog.Lookup("{foo.bar.value}"); ok {
		t.Error("unexpected entry for unknown reference")
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	refs := catalog.ReferenceMap()
	fallbacks := catalog.Fallbacks()

	if len(refs) != len(fallbacks) {
		t.Fatalf("reference map has %d keys, fallbacks has %d", len(refs), len(fallbacks))
	}
	for ref, variable := range refs {
		if _, ok := fallbacks[ref]; !ok {
			t.Errorf("reference %s has no fallback", ref)
		}
		if !strings.HasPrefix(variable, catalog.VariablePrefix) {
			t.Errorf("variable %s lacks prefix %s", variable, catalog.VariablePrefix)
		}
		if strings.Contains(variable, "@") {
			t.Errorf("variable %s contains group marker", variable)
		}
	}
}

func TestMapsAreCopies(t *testing.T) {
	refs := catalog.ReferenceMap()
	refs["{space.0.value}"] = "--mutated"

	again := catalog.ReferenceMap()
	if again["{space.0.value}"] != "--wm-space-0" {
		t.Errorf("catalog mutated through returned map: %q", again["{space.0.value}"])
	}
}

func TestEntriesOrder(t *testing.T) {
	entries := catalog.Entries()
	if len(entries) == 0 {
		t.Fatal("empty catalog")
	}
	if entries[0].Path != "color.primary.@" {
		t.Errorf("first entry = %q, want color.primary.@", entries[0].Path)
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Reference] {
			t.Errorf("duplicate reference %s", e.Reference)
		}
		seen[e.Reference] = true
	}
}
