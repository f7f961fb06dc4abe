/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package matcher maps a rendered component's class string to the variant
// whose token overrides apply.
package matcher

import (
	"slices"
	"strings"

	"bennypowers.dev/wmtokens/tokens"
	"bennypowers.dev/wmtokens/tokentree"
)

// classPrefixes are stripped from classes to get their base names.
var classPrefixes = []string{"btn-", "text-", "label-", "app-"}

// Input is a normalized match request.
type Input struct {
	// ClassName is the trimmed, lowercased class string.
	ClassName string
	// Classes is ClassName split on whitespace.
	Classes []string
	// BaseNames are the classes with a common prefix removed.
	BaseNames []string
	// Keys are the configuration's variant keys in declaration order.
	Keys []string
	// Selectors are the variant selectors declared under meta.appearances.
	// Nil when no token tree was supplied.
	Selectors []VariantSelector

	keySet map[string]bool
}

// VariantSelector is a variant key with its cleaned selector.
type VariantSelector struct {
	Key      string
	Selector string
}

// HasKey reports whether key is a variant key.
func (in *Input) HasKey(key string) bool {
	return in.keySet[key]
}

// Strategy is one way of finding a variant.
type Strategy struct {
	Name  string
	Match func(in *Input) (string, bool)
}

// Result is a successful match.
type Result struct {
	Variant  string `json:"variant"`
	Strategy string `json:"strategy"`
}

// Strategies are tried in order; the first match wins.
var Strategies = []Strategy{
	{"exact", matchExact},
	{"selector", matchSelector},
	{"single-class", matchSingleClass},
	{"hyphen-join", matchHyphenJoin},
	{"default-prefixed", matchDefaultPrefixed},
	{"partial", matchPartial},
	{"positional", matchPositional},
}

// NewInput normalizes className against cfg. The selector strategy only
// runs when tree is non-nil and contains componentKey.
func NewInput(className string, cfg *tokens.ComponentConfig, tree *tokentree.Tree, componentKey string) *Input {
	normalized := strings.ToLower(strings.TrimSpace(className))
	in := &Input{
		ClassName: normalized,
		Classes:   strings.Fields(normalized),
		Keys:      variantKeys(cfg),
	}
	in.keySet = make(map[string]bool, len(in.Keys))
	for _, k := range in.Keys {
		in.keySet[k] = true
	}
	for _, c := range in.Classes {
		in.BaseNames = append(in.BaseNames, baseName(c))
	}
	if componentKey != "" {
		if c, ok := tree.Component(componentKey); ok {
			in.Selectors = variantSelectors(c)
		}
	}
	return in
}

// Match finds the variant for className and names the strategy that found it.
func Match(className string, cfg *tokens.ComponentConfig, tree *tokentree.Tree, componentKey string) (Result, bool) {
	if strings.TrimSpace(className) == "" || len(variantKeys(cfg)) == 0 {
		return Result{}, false
	}
	in := NewInput(className, cfg, tree, componentKey)
	for _, s := range Strategies {
		if key, ok := s.Match(in); ok {
			return Result{Variant: key, Strategy: s.Name}, true
		}
	}
	return Result{}, false
}

// MatchVariant returns the variant key for className. False means no variant
// applies and the base tokens should be used.
func MatchVariant(className string, cfg *tokens.ComponentConfig, tree *tokentree.Tree, componentKey string) (string, bool) {
	r, ok := Match(className, cfg, tree, componentKey)
	return r.Variant, ok
}

// TokensForClassName returns the base tokens with the matched variant's
// tokens applied over them by name. Base order is kept; names only the
// variant defines are appended.
func TokensForClassName(cfg *tokens.ComponentConfig, className string, tree *tokentree.Tree, componentKey string) []tokens.Definition {
	if cfg == nil {
		return nil
	}
	key, ok := MatchVariant(className, cfg, tree, componentKey)
	if !ok {
		return slices.Clone(cfg.Tokens)
	}
	variant, _ := cfg.Variant(key)
	return Merge(cfg.Tokens, variant)
}

// Merge overlays overrides on base by name; the last definition of a name wins.
func Merge(base, overrides []tokens.Definition) []tokens.Definition {
	out := make([]tokens.Definition, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base)+len(overrides))
	for _, set := range [][]tokens.Definition{base, overrides} {
		for _, d := range set {
			if i, ok := index[d.Name]; ok {
				out[i] = d
				continue
			}
			index[d.Name] = len(out)
			out = append(out, d)
		}
	}
	return out
}

func variantKeys(cfg *tokens.ComponentConfig) []string {
	if cfg == nil {
		return nil
	}
	if len(cfg.VariantKeys) > 0 {
		return cfg.VariantKeys
	}
	keys := make([]string, 0, len(cfg.Variants))
	for k := range cfg.Variants {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func baseName(class string) string {
	for _, p := range classPrefixes {
		if rest, ok := strings.CutPrefix(class, p); ok {
			return rest
		}
	}
	return class
}

func variantSelectors(c *tokentree.Component) []VariantSelector {
	var out []VariantSelector
	for _, a := range c.Meta.Appearances {
		for _, group := range a.VariantGroups {
			for _, v := range group.Variants {
				if v.Selector == "" {
					continue
				}
				out = append(out, VariantSelector{
					Key:      a.Key + "-" + v.Key,
					Selector: strings.ToLower(strings.TrimPrefix(v.Selector, ".")),
				})
			}
		}
	}
	return out
}
