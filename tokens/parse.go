/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"fmt"
	"slices"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/tokentree"
)

// ParseComponentTokens builds the configuration of componentKey.
//
// Values are resolved against refs when it is non-empty, and against the
// catalog fallbacks otherwise. The only error is ErrComponentNotFound.
func ParseComponentTokens(tree *tokentree.Tree, componentKey string, refs cssvars.ReferenceMap) (*ComponentConfig, error) {
	c, ok := tree.Component(componentKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, componentKey)
	}

	w := walker{componentKey: componentKey, refs: refs}
	cfg := &ComponentConfig{
		ComponentName:  componentKey,
		Selector:       c.Meta.Selector,
		Tokens:         w.walk(c.Mapping, nil),
		Variants:       make(map[string][]Definition),
		ChildSelectors: c.Meta.ChildSelectors,
	}
	if cfg.Selector == "" {
		cfg.Selector = ".app-" + componentKey
	}
	if cfg.Tokens == nil {
		cfg.Tokens = []Definition{}
	}

	for _, a := range c.AllAppearances() {
		appearanceTokens := w.walk(a.Mapping, nil)
		if len(a.VariantGroups) == 0 {
			if len(appearanceTokens) > 0 {
				cfg.addVariant(a.Key, appearanceTokens)
			}
			continue
		}
		for _, group := range a.VariantGroups {
			for _, v := range group.Variants {
				defs := slices.Concat(appearanceTokens, w.walk(v.Mapping, nil))
				cfg.addVariant(a.Key+"-"+v.Key, defs)
			}
		}
	}

	return cfg, nil
}

type walker struct {
	componentKey string
	refs         cssvars.ReferenceMap
}

// walk collects the leaves below g in document order.
func (w walker) walk(g *tokentree.Group, path []string) []Definition {
	var out []Definition
	for key, n := range g.All() {
		p := append(slices.Clip(path), key)
		switch n := n.(type) {
		case *tokentree.Leaf:
			out = append(out, w.definition(p, n))
		case *tokentree.Group:
			out = append(out, w.walk(n, p)...)
		}
	}
	return out
}

func (w walker) definition(path []string, leaf *tokentree.Leaf) Definition {
	name := CSSVariableName(w.componentKey, path)
	control, options := ControlFor(leaf.Subtype)

	category := leaf.Category
	if category == "" {
		category = path[0]
	}

	return Definition{
		Name:        name,
		Label:       Label(name, w.componentKey, DefaultState),
		Value:       ResolveValue(leaf.Value, w.refs),
		Type:        TypeFor(leaf.Type, leaf.Subtype),
		ControlType: control,
		Description: leaf.Description,
		Category:    category,
		Options:     options,
	}
}
