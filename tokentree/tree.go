/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokentree decodes component token-definition files into an ordered,
// typed tree.
//
// A file is an object keyed by component. Each component has a "mapping" of
// tokens and, optionally, appearances with variant groups, either at the
// component level or under "meta". Within a mapping, an object that owns a
// string "value" is a leaf token; any other object is a group. The key
// "attributes" always holds metadata and is never walked.
package tokentree

import (
	"iter"
	"slices"
)

// Node is a *Leaf or a *Group.
type Node interface {
	node()
}

// Leaf is a single token definition.
type Leaf struct {
	Value       string
	Type        string
	Subtype     string
	Description string
	Category    string
	// Line is the 1-based line of the token's key in the source file.
	Line int
}

// Group is an ordered set of named child nodes.
type Group struct {
	keys     []string
	children map[string]Node
}

func (*Leaf) node()  {}
func (*Group) node() {}

// Keys returns the child keys in document order.
func (g *Group) Keys() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.keys)
}

// Child returns the child named key.
func (g *Group) Child(key string) (Node, bool) {
	if g == nil {
		return nil, false
	}
	n, ok := g.children[key]
	return n, ok
}

// Len returns the number of children.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// All iterates over the children in document order.
func (g *Group) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if g == nil {
			return
		}
		for _, k := range g.keys {
			if !yield(k, g.children[k]) {
				return
			}
		}
	}
}

func (g *Group) set(key string, n Node) {
	if g.children == nil {
		g.children = make(map[string]Node)
	}
	if _, exists := g.children[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.children[key] = n
}

func (g *Group) remove(key string) {
	if _, ok := g.children[key]; !ok {
		return
	}
	delete(g.children, key)
	g.keys = slices.DeleteFunc(g.keys, func(k string) bool { return k == key })
}

// Component is one top-level entry of a token file.
type Component struct {
	Key         string
	Mapping     *Group
	Appearances []*Appearance
	Meta        Meta
	Line        int
}

// Meta holds a component's "meta" object.
type Meta struct {
	// Selector is meta.mapping.selector.web.
	Selector string
	// ChildSelectors is meta.mapping.childSelectors, decoded as-is.
	ChildSelectors map[string]any
	Appearances    []*Appearance
}

// Appearance is one visual appearance of a component, such as "filled".
type Appearance struct {
	Key           string
	Mapping       *Group
	VariantGroups []*VariantGroup
}

// VariantGroup is a named set of variants, such as "color".
type VariantGroup struct {
	Key      string
	Variants []*Variant
}

// Variant is one value of a variant group, such as "primary".
type Variant struct {
	Key string
	// Selector is selector.web of the variant object.
	Selector string
	Mapping  *Group
}

// Skip is an entry the decoder ignored.
type Skip struct {
	Key    string
	Line   int
	Reason string
}

// Tree is a decoded token file.
type Tree struct {
	keys       []string
	components map[string]*Component

	// Skipped lists the entries that were not decoded, in document order.
	Skipped []Skip
}

// Component returns the component named key.
func (t *Tree) Component(key string) (*Component, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.components[key]
	return c, ok
}

// Keys returns the component keys in document order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Len returns the number of components.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

func (t *Tree) add(c *Component) {
	if t.components == nil {
		t.components = make(map[string]*Component)
	}
	if _, exists := t.components[c.Key]; !exists {
		t.keys = append(t.keys, c.Key)
	}
	t.components[c.Key] = c
}

// Merge combines trees into one. When several trees define the same
// component, the last definition wins; component order is first appearance.
func Merge(trees ...*Tree) *Tree {
	merged := &Tree{}
	for _, t := range trees {
		if t == nil {
			continue
		}
		for _, k := range t.keys {
			merged.add(t.components[k])
		}
		merged.Skipped = append(merged.Skipped, t.Skipped...)
	}
	return merged
}

// Only returns a tree holding just the named components that t has.
func (t *Tree) Only(keys ...string) *Tree {
	out := &Tree{}
	if t != nil {
		out.Skipped = t.Skipped
	}
	for _, k := range keys {
		if c, ok := t.Component(k); ok {
			out.add(c)
		}
	}
	return out
}

// AllAppearances returns component-level appearances followed by those
// declared under meta.
func (c *Component) AllAppearances() []*Appearance {
	out := make([]*Appearance, 0, len(c.Appearances)+len(c.Meta.Appearances))
	out = append(out, c.Appearances...)
	return append(out, c.Meta.Appearances...)
}
