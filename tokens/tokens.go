/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens turns a component's token tree into a flat, resolved
// configuration of base tokens and per-variant overrides.
package tokens

import (
	"fmt"

	"bennypowers.dev/wmtokens/tokentree"
)

// ErrComponentNotFound is returned when the requested component is not in
// the token tree. It wraps tokentree.ErrConfiguration.
var ErrComponentNotFound = fmt.Errorf("%w: component not found", tokentree.ErrConfiguration)

// TokenType is the kind of design value a token holds.
type TokenType string

const (
	TypeColor  TokenType = "color"
	TypeFont   TokenType = "font"
	TypeSpace  TokenType = "space"
	TypeRadius TokenType = "radius"
	TypeText   TokenType = "text"
)

// ControlType is the editor used for a token.
type ControlType string

const (
	ControlColor  ControlType = "color"
	ControlText   ControlType = "text"
	ControlSelect ControlType = "select"
	ControlNumber ControlType = "number"
)

// Definition is one resolved token.
type Definition struct {
	// Name is the CSS custom property, unique within a component.
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Value       string      `json:"value"`
	Type        TokenType   `json:"type"`
	ControlType ControlType `json:"controlType"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Options     []string    `json:"options,omitempty"`
}

// ComponentConfig is the parsed token configuration of one component.
type ComponentConfig struct {
	ComponentName string `json:"componentName"`
	Selector      string `json:"selector"`
	// Tokens is the base (default) token set.
	Tokens []Definition `json:"tokens"`
	// Variants maps a variant key to the tokens it overrides.
	Variants map[string][]Definition `json:"variants"`
	// VariantKeys lists the keys of Variants in declaration order.
	VariantKeys    []string       `json:"variantKeys"`
	ChildSelectors map[string]any `json:"childSelectors,omitempty"`
}

// HasVariants reports whether the configuration declares any variant.
func (c *ComponentConfig) HasVariants() bool {
	return c != nil && len(c.VariantKeys) > 0
}

// Variant returns the override tokens of variant key.
func (c *ComponentConfig) Variant(key string) ([]Definition, bool) {
	if c == nil {
		return nil, false
	}
	defs, ok := c.Variants[key]
	return defs, ok
}

func (c *ComponentConfig) addVariant(key string, defs []Definition) {
	if _, exists := c.Variants[key]; !exists {
		c.VariantKeys = append(c.VariantKeys, key)
	}
	c.Variants[key] = append(c.Variants[key], defs...)
}
