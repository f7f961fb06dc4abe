/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokentree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/wmtokens/fs"
)

// Parse decodes a token file. JSON (with comments and trailing commas) and
// YAML are both accepted.
func Parse(data []byte) (*Tree, error) {
	src := data
	if isLikelyJSON(data) {
		src = jsonc.ToJSON(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty token file", ErrConfiguration)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, structureError(root, "token file root must be an object")
	}

	d := &decoder{}
	tree := &Tree{}
	for key, value := range pairs(root) {
		// Top-level scalars such as "$schema" or a version are not components.
		if value.Kind != yaml.MappingNode {
			d.skip(key, value, "top-level entry is not an object")
			continue
		}
		c, err := d.component(key, value)
		if err != nil {
			return nil, err
		}
		tree.add(c)
	}
	tree.Skipped = d.skipped
	return tree, nil
}

// decoder collects the entries skipped while decoding one file.
type decoder struct {
	skipped []Skip
}

func (d *decoder) skip(key string, n *yaml.Node, reason string) {
	d.skipped = append(d.skipped, Skip{Key: key, Line: n.Line, Reason: reason})
}

// ParseFile reads and decodes a token file.
func ParseFile(filesystem fs.FileSystem, path string) (*Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return tree, nil
}

// isLikelyJSON checks if data starts with '{', ignoring whitespace and a BOM.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// pairs iterates over the keys and values of a mapping node.
func pairs(n *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i].Value, n.Content[i+1]) {
				return
			}
		}
	}
}

// field returns the value of key in a mapping node.
func field(n *yaml.Node, key string) *yaml.Node {
	for k, v := range pairs(n) {
		if k == key {
			return v
		}
	}
	return nil
}

func scalar(n *yaml.Node, key string) string {
	if v := field(n, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return ""
}

func (d *decoder) component(key string, n *yaml.Node) (*Component, error) {
	if n.Kind != yaml.MappingNode {
		return nil, structureError(n, "component %q must be an object", key)
	}

	c := &Component{Key: key, Line: n.Line}
	var err error
	for k, v := range pairs(n) {
		switch k {
		case "mapping":
			c.Mapping, err = d.group(v)
		case "appearances":
			c.Appearances, err = d.appearances(v)
		case "meta":
			c.Meta, err = d.meta(v)
		}
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", key, err)
		}
	}
	if c.Mapping == nil {
		c.Mapping = &Group{}
	}
	return c, nil
}

func (d *decoder) meta(n *yaml.Node) (Meta, error) {
	var m Meta
	if n.Kind != yaml.MappingNode {
		return m, structureError(n, "meta must be an object")
	}

	if mapping := field(n, "mapping"); mapping != nil {
		m.Selector = scalar(field(mapping, "selector"), "web")
		if cs := field(mapping, "childSelectors"); cs != nil {
			if err := cs.Decode(&m.ChildSelectors); err != nil {
				return m, structureError(cs, "childSelectors must be an object")
			}
		}
	}

	if apps := field(n, "appearances"); apps != nil {
		var err error
		if m.Appearances, err = d.appearances(apps); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (d *decoder) appearances(n *yaml.Node) ([]*Appearance, error) {
	if n.Kind != yaml.MappingNode {
		return nil, structureError(n, "appearances must be an object")
	}

	var out []*Appearance
	for key, v := range pairs(n) {
		if v.Kind != yaml.MappingNode {
			return nil, structureError(v, "appearance %q must be an object", key)
		}
		a := &Appearance{Key: key}
		if mapping := field(v, "mapping"); mapping != nil {
			g, err := d.group(mapping)
			if err != nil {
				return nil, err
			}
			a.Mapping = g
		}
		if groups := field(v, "variantGroups"); groups != nil {
			vg, err := d.variantGroups(groups)
			if err != nil {
				return nil, fmt.Errorf("appearance %q: %w", key, err)
			}
			a.VariantGroups = vg
		}
		out = append(out, a)
	}
	return out, nil
}

func (d *decoder) variantGroups(n *yaml.Node) ([]*VariantGroup, error) {
	if n.Kind != yaml.MappingNode {
		return nil, structureError(n, "variantGroups must be an object")
	}

	var out []*VariantGroup
	for groupKey, groupNode := range pairs(n) {
		if groupNode.Kind != yaml.MappingNode {
			return nil, structureError(groupNode, "variant group %q must be an object", groupKey)
		}
		vg := &VariantGroup{Key: groupKey}
		for variantKey, variantNode := range pairs(groupNode) {
			v, err := d.variant(variantKey, variantNode)
			if err != nil {
				return nil, err
			}
			vg.Variants = append(vg.Variants, v)
		}
		out = append(out, vg)
	}
	return out, nil
}

func (d *decoder) variant(key string, n *yaml.Node) (*Variant, error) {
	if n.Kind != yaml.MappingNode {
		return nil, structureError(n, "variant %q must be an object", key)
	}

	v := &Variant{Key: key, Selector: scalar(field(n, "selector"), "web")}
	if mapping := field(n, "mapping"); mapping != nil {
		g, err := d.group(mapping)
		if err != nil {
			return nil, err
		}
		v.Mapping = g
		return v, nil
	}

	// Without a mapping, the variant object holds its tokens directly.
	g, err := d.group(n)
	if err != nil {
		return nil, err
	}
	g.remove("selector")
	v.Mapping = g
	return v, nil
}

func (d *decoder) group(n *yaml.Node) (*Group, error) {
	if n.Kind != yaml.MappingNode {
		return nil, structureError(n, "mapping must be an object")
	}

	g := &Group{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, value := n.Content[i], n.Content[i+1]
		key := keyNode.Value
		if key == "attributes" || value.Kind != yaml.MappingNode {
			continue
		}
		if leaf, ok := decodeLeaf(keyNode, value); ok {
			g.set(key, leaf)
			continue
		}
		if v := field(value, "value"); v != nil && v.Kind == yaml.ScalarNode && v.Tag != "!!null" {
			d.skip(key, keyNode, fmt.Sprintf("value %s is a %s, not a string; quote it to make a token", v.Value, strings.TrimPrefix(v.Tag, "!!")))
		}
		child, err := d.group(value)
		if err != nil {
			return nil, err
		}
		g.set(key, child)
	}
	return g, nil
}

// decodeLeaf reports whether n owns a string "value" and decodes it if so.
func decodeLeaf(keyNode, n *yaml.Node) (*Leaf, bool) {
	value := field(n, "value")
	if value == nil || value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
		return nil, false
	}

	attrs := field(n, "attributes")
	leaf := &Leaf{
		Value:       value.Value,
		Type:        scalar(n, "type"),
		Subtype:     scalar(attrs, "subtype"),
		Category:    scalar(attrs, "category"),
		Description: scalar(n, "description"),
		Line:        keyNode.Line,
	}
	if leaf.Description == "" {
		leaf.Description = scalar(attrs, "description")
	}
	return leaf, true
}
