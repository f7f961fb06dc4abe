/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"bytes"
	"regexp"
	"testing"

	"bennypowers.dev/wmtokens/tokens"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "--wm-btn-background", "background", nil, true},
		{"case insensitive", "--wm-BTN-color", "btn", nil, true},
		{"no match", "--wm-btn-color", "spacing", nil, false},
		{"empty query", "--wm-btn-color", "", nil, true},
		{"empty string", "", "query", nil, false},
		{"regex match", "--wm-btn-color", "", regexp.MustCompile(`^--wm-btn-`), true},
		{"regex no match", "--wm-chip-radius", "", regexp.MustCompile(`^--wm-btn-`), false},
		{"regex case sensitive", "#FF7250", "", regexp.MustCompile(`ff7250`), false},
		{"regex case insensitive", "#FF7250", "", regexp.MustCompile(`(?i)ff7250`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func fixtureConfigs() []*tokens.ComponentConfig {
	return []*tokens.ComponentConfig{
		{
			ComponentName: "chip",
			Tokens: []tokens.Definition{
				{Name: "--wm-chip-radius", Value: "9999px", Type: tokens.TypeRadius},
				{Name: "--wm-chip-background", Value: "#FCEAE5", Type: tokens.TypeColor},
			},
			Variants: map[string][]tokens.Definition{},
		},
		{
			ComponentName: "btn",
			Tokens: []tokens.Definition{
				{Name: "--wm-btn-background", Value: "#112233", Type: tokens.TypeColor, Description: "Fill"},
			},
			Variants: map[string][]tokens.Definition{
				"outlined": {{Name: "--wm-btn-background", Value: "transparent", Type: tokens.TypeColor}},
			},
			VariantKeys: []string{"outlined"},
		},
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		q    query
		want []string
	}{
		{"by name", query{text: "background"}, []string{"btn", "btn/outlined", "chip"}},
		{"names only skip values", query{text: "#112233", nameOnly: true}, nil},
		{"values only", query{text: "#112233", valueOnly: true}, []string{"btn"}},
		{"by type", query{text: "", typ: "radius"}, []string{"chip"}},
		{"by description", query{text: "fill"}, []string{"btn"}},
		{"regex", query{pattern: regexp.MustCompile(`^trans`), valueOnly: true}, []string{"btn/outlined"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := search(fixtureConfigs(), tt.q)
			if len(hits) != len(tt.want) {
				t.Fatalf("expected %d hits, got %d: %+v", len(tt.want), len(hits), hits)
			}
			for i, h := range hits {
				if location(h) != tt.want[i] {
					t.Errorf("hit %d = %q, want %q", i, location(h), tt.want[i])
				}
			}
		})
	}
}

func TestOutputTable(t *testing.T) {
	hits := search(fixtureConfigs(), query{text: "radius"})

	var buf bytes.Buffer
	if err := outputTable(&buf, hits); err != nil {
		t.Fatal(err)
	}
	want := "chip       --wm-chip-radius  radius  9999px\n"
	if buf.String() != want {
		t.Errorf("outputTable() = %q, want %q", buf.String(), want)
	}
}
