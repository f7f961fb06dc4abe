/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package matcher_test

import (
	"slices"
	"testing"

	"bennypowers.dev/wmtokens/matcher"
	"bennypowers.dev/wmtokens/testutil"
	"bennypowers.dev/wmtokens/tokens"
	"bennypowers.dev/wmtokens/tokentree"
)

func configWith(keys ...string) *tokens.ComponentConfig {
	cfg := &tokens.ComponentConfig{
		ComponentName: "test",
		Variants:      make(map[string][]tokens.Definition),
		VariantKeys:   keys,
	}
	for _, k := range keys {
		cfg.Variants[k] = nil
	}
	return cfg
}

func strategy(t *testing.T, name string) matcher.Strategy {
	t.Helper()
	i := slices.IndexFunc(matcher.Strategies, func(s matcher.Strategy) bool { return s.Name == name })
	if i < 0 {
		t.Fatalf("no strategy named %q", name)
	}
	return matcher.Strategies[i]
}

func TestStrategyOrder(t *testing.T) {
	want := []string{"exact", "selector", "single-class", "hyphen-join", "default-prefixed", "partial", "positional"}
	var got []string
	for _, s := range matcher.Strategies {
		got = append(got, s.Name)
	}
	if !slices.Equal(got, want) {
		t.Errorf("strategies = %v, want %v", got, want)
	}
}

const chipSelectorTree = `{
  "chip": {
    "meta": {
      "appearances": {
        "filled": {
          "variantGroups": {
            "color": {
              "primary": { "selector": { "web": ".Chip-Special" } }
            }
          }
        }
      }
    }
  }
}`

func TestStrategies(t *testing.T) {
	tree, err := tokentree.Parse([]byte(chipSelectorTree))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		strategy  string
		className string
		keys      []string
		tree      *tokentree.Tree
		expected  string
		ok        bool
	}{
		{"exact hit", "exact", "basic", []string{"basic"}, nil, "basic", true},
		{"exact miss on class list", "exact", "basic pager", []string{"basic"}, nil, "", false},

		{"selector on one class", "selector", "chip-special other", []string{"filled-primary"}, tree, "filled-primary", true},
		{"selector on whole string", "selector", "chip-special", []string{"filled-primary"}, tree, "filled-primary", true},
		{"selector without tree", "selector", "chip-special", []string{"filled-primary"}, nil, "", false},
		{"selector key not a variant", "selector", "chip-special", []string{"outlined"}, tree, "", false},

		{"single class", "single-class", "app-button pager", []string{"pager"}, nil, "pager", true},
		{"single class miss", "single-class", "app-button", []string{"pager"}, nil, "", false},

		{"hyphen join all", "hyphen-join", "btn-filled btn-primary", []string{"filled-primary"}, nil, "filled-primary", true},
		{"hyphen join first and last", "hyphen-join", "btn-filled btn-large btn-primary", []string{"filled-primary"}, nil, "filled-primary", true},
		{"hyphen join all before first and last", "hyphen-join", "btn-filled btn-large btn-primary",
			[]string{"filled-primary", "filled-large-primary"}, nil, "filled-large-primary", true},
		{"hyphen join needs two classes", "hyphen-join", "btn-filled", []string{"filled"}, nil, "", false},
		{"hyphen join miss", "hyphen-join", "btn-filled btn-large btn-primary", []string{"outlined-primary"}, nil, "", false},

		{"default prefixed", "default-prefixed", "app-text h2", []string{"default-h2"}, nil, "default-h2", true},
		{"default prefixed miss", "default-prefixed", "h3", []string{"default-h2"}, nil, "", false},

		{"partial", "partial", "app-outlined-large", []string{"filled-small", "outlined-large"}, nil, "outlined-large", true},
		{"partial needs every part", "partial", "app-outlined", []string{"outlined-large"}, nil, "", false},

		{"positional", "positional", "btn-filled btn-primary", []string{"filled-primary"}, nil, "filled-primary", true},
		{"positional single base name", "positional", "btn-primary", []string{"primary"}, nil, "primary", true},
		{"positional order matters", "positional", "btn-primary btn-filled", []string{"filled-primary"}, nil, "", false},
		{"positional length matters", "positional", "btn-filled btn-large btn-primary", []string{"filled-primary"}, nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := ""
			if tt.tree != nil {
				component = "chip"
			}
			in := matcher.NewInput(tt.className, configWith(tt.keys...), tt.tree, component)
			got, ok := strategy(t, tt.strategy).Match(in)
			if ok != tt.ok {
				t.Fatalf("%s.Match(%q) ok = %v, want %v", tt.strategy, tt.className, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("%s.Match(%q) = %q, want %q", tt.strategy, tt.className, got, tt.expected)
			}
		})
	}
}

// Positional can only find keys whose parts each occur in some class, so
// partial, which runs first, always claims them.
func TestPartialPreemptsPositional(t *testing.T) {
	r, ok := matcher.Match("btn-primary", configWith("primary"), nil, "")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Variant != "primary" || r.Strategy != "partial" {
		t.Errorf("Match() = %+v, want primary via partial", r)
	}
}

func TestMatchVariant(t *testing.T) {
	tests := []struct {
		name      string
		className string
		keys      []string
		expected  string
		strategy  string
		ok        bool
	}{
		{"exact", "basic", []string{"basic", "pager"}, "basic", "exact", true},
		{"exact is normalized", "  BASIC ", []string{"basic", "pager"}, "basic", "exact", true},
		{"default-prefixed size", "h1", []string{"default-h1", "default-h2"}, "default-h1", "default-prefixed", true},
		{"hyphen join after prefix strip", "btn-filled btn-primary", []string{"filled-primary"}, "filled-primary", "hyphen-join", true},
		{"hyphen join first and last", "btn-filled btn-large btn-primary", []string{"filled-primary"}, "filled-primary", "hyphen-join", true},
		{"single class", "app-button pager", []string{"basic", "pager"}, "pager", "single-class", true},
		{"partial", "app-outlined-large", []string{"filled-small", "outlined-large"}, "outlined-large", "partial", true},
		{"no match", "unknown-class", []string{"filled-primary"}, "", "", false},
		{"empty class", "", []string{"basic"}, "", "", false},
		{"blank class", "   ", []string{"basic"}, "", "", false},
		{"no variants", "basic", nil, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configWith(tt.keys...)

			got, ok := matcher.MatchVariant(tt.className, cfg, nil, "")
			if ok != tt.ok || got != tt.expected {
				t.Errorf("MatchVariant(%q) = %q, %v, want %q, %v", tt.className, got, ok, tt.expected, tt.ok)
			}

			r, _ := matcher.Match(tt.className, cfg, nil, "")
			if r.Strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", r.Strategy, tt.strategy)
			}
		})
	}
}

func TestMatchVariantNilConfig(t *testing.T) {
	if _, ok := matcher.MatchVariant("basic", nil, nil, ""); ok {
		t.Error("expected no match for a nil configuration")
	}
}

func TestMatchVariantWithoutVariantKeys(t *testing.T) {
	cfg := &tokens.ComponentConfig{Variants: map[string][]tokens.Definition{"pager": nil}}
	got, ok := matcher.MatchVariant("pager", cfg, nil, "")
	if !ok || got != "pager" {
		t.Errorf("MatchVariant() = %q, %v, want pager", got, ok)
	}
}

func loadTree(t *testing.T) *tokentree.Tree {
	t.Helper()
	tree, err := tokentree.Parse(testutil.LoadFixtureFile(t, "fixtures/tokens/components.json"))
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestMatchVariantSelector(t *testing.T) {
	tree := loadTree(t)
	cfg, err := tokens.ParseComponentTokens(tree, "text", nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		className string
		tree      *tokentree.Tree
		component string
		expected  string
		strategy  string
	}{
		{"h1", tree, "text", "default-h1", "selector"},
		{"app-text h2", tree, "text", "default-h2", "selector"},
		{"app-text h2", nil, "text", "default-h2", "default-prefixed"},
		{"app-text h2", tree, "", "default-h2", "default-prefixed"},
	}

	for _, tt := range tests {
		t.Run(tt.className+"/"+tt.strategy, func(t *testing.T) {
			r, ok := matcher.Match(tt.className, cfg, tt.tree, tt.component)
			if !ok {
				t.Fatal("expected a match")
			}
			if r.Variant != tt.expected || r.Strategy != tt.strategy {
				t.Errorf("Match() = %+v, want %s via %s", r, tt.expected, tt.strategy)
			}
		})
	}
}

// A selector declared in meta wins over a class that names another variant,
// because the selector strategy runs first.
func TestMatchVariantSelectorPrecedence(t *testing.T) {
	tree, err := tokentree.Parse([]byte(chipSelectorTree))
	if err != nil {
		t.Fatal(err)
	}

	cfg := configWith("filled-primary", "chip-special")
	r, ok := matcher.Match("chip-special other", cfg, tree, "chip")
	if !ok || r.Variant != "filled-primary" || r.Strategy != "selector" {
		t.Errorf("with tree: Match() = %+v, %v", r, ok)
	}

	r, ok = matcher.Match("chip-special other", cfg, nil, "")
	if !ok || r.Variant != "chip-special" || r.Strategy != "single-class" {
		t.Errorf("without tree: Match() = %+v, %v", r, ok)
	}
}

func TestTokensForClassName(t *testing.T) {
	cfg := &tokens.ComponentConfig{
		ComponentName: "btn",
		Tokens: []tokens.Definition{
			{Name: "--wm-btn-background", Value: "red"},
			{Name: "--wm-btn-color", Value: "white"},
		},
		Variants: map[string][]tokens.Definition{
			"filled-primary": {
				{Name: "--wm-btn-background", Value: "blue"},
				{Name: "--wm-btn-border-color", Value: "navy"},
			},
		},
		VariantKeys: []string{"filled-primary"},
	}

	got := matcher.TokensForClassName(cfg, "btn-filled btn-primary", nil, "")
	want := []tokens.Definition{
		{Name: "--wm-btn-background", Value: "blue"},
		{Name: "--wm-btn-color", Value: "white"},
		{Name: "--wm-btn-border-color", Value: "navy"},
	}
	if !slices.EqualFunc(got, want, definitionsEqual) {
		t.Errorf("TokensForClassName() = %v, want %v", got, want)
	}

	base := matcher.TokensForClassName(cfg, "unknown-class", nil, "")
	if !slices.EqualFunc(base, cfg.Tokens, definitionsEqual) {
		t.Errorf("expected base tokens, got %v", base)
	}
	base[0].Value = "changed"
	if cfg.Tokens[0].Value != "red" {
		t.Error("base tokens should be copied")
	}

	if got := matcher.TokensForClassName(nil, "btn", nil, ""); got != nil {
		t.Errorf("expected nil for a nil configuration, got %v", got)
	}
}

func TestTokensForClassNameFixture(t *testing.T) {
	tree := loadTree(t)
	cfg, err := tokens.ParseComponentTokens(tree, "btn", nil)
	if err != nil {
		t.Fatal(err)
	}

	merged := matcher.TokensForClassName(cfg, "app-button btn-filled btn-danger", tree, "btn")
	if len(merged) != len(cfg.Tokens) {
		t.Fatalf("expected %d tokens, got %d", len(cfg.Tokens), len(merged))
	}

	values := make(map[string]string, len(merged))
	for _, d := range merged {
		values[d.Name] = d.Value
	}
	tests := map[string]string{
		"--wm-btn-background":    "#BA1A1A",
		"--wm-btn-color":         "#FFFFFF",
		"--wm-btn-border-width":  "0px",
		"--wm-btn-border-radius": "4px",
	}
	for name, want := range tests {
		if values[name] != want {
			t.Errorf("%s = %q, want %q", name, values[name], want)
		}
	}
}

func TestMerge(t *testing.T) {
	base := []tokens.Definition{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	overrides := []tokens.Definition{{Name: "b", Value: "3"}, {Name: "b", Value: "4"}, {Name: "c", Value: "5"}}

	got := matcher.Merge(base, overrides)
	want := []tokens.Definition{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "4"},
		{Name: "c", Value: "5"},
	}
	if !slices.EqualFunc(got, want, definitionsEqual) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

// definitionsEqual compares the fields these tests set.
func definitionsEqual(a, b tokens.Definition) bool {
	return a.Name == b.Name && a.Value == b.Value
}
