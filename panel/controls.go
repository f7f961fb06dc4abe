/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package panel

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/wmtokens/tokens"
)

// Control is one editable token.
type Control struct {
	tokens.Definition
	// Current is the edited value, or the resolved value when unedited.
	Current string `json:"current"`
	Edited  bool   `json:"edited"`
	// Hex and Contrast are set for color controls whose value parses.
	// Contrast is black or white, whichever reads better on Hex.
	Hex      string `json:"hex,omitempty"`
	Contrast string `json:"contrast,omitempty"`
}

// Group is a set of controls sharing a category.
type Group struct {
	Category string    `json:"category"`
	Heading  string    `json:"heading"`
	Controls []Control `json:"controls"`
}

// Controls returns one control per token that applies to className, labelled
// for the selected state.
func (p *Panel) Controls(className string) []Control {
	p.mu.RLock()
	defer p.mu.RUnlock()

	defs := p.tokensFor(className)
	out := make([]Control, 0, len(defs))
	for _, d := range defs {
		d.Label = tokens.Label(d.Name, p.componentKey, p.state)
		c := Control{Definition: d, Current: d.Value}
		if v, ok := p.edits[d.Name]; ok {
			c.Current = v
			c.Edited = true
		}
		if d.ControlType == tokens.ControlColor {
			c.Hex, c.Contrast = swatch(c.Current)
		}
		out = append(out, c)
	}
	return out
}

// Groups returns the controls for className grouped by category, in order
// of first appearance.
func (p *Panel) Groups(className string) []Group {
	title := cases.Title(language.English)

	var groups []Group
	index := make(map[string]int)
	for _, c := range p.Controls(className) {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			heading := strings.ReplaceAll(c.Category, "-", " ")
			groups = append(groups, Group{Category: c.Category, Heading: title.String(heading)})
		}
		groups[i].Controls = append(groups[i].Controls, c)
	}
	return groups
}

// swatch normalizes a color value to hex and picks a readable text color.
func swatch(value string) (hex, contrast string) {
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return "", ""
	}
	c := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}
	l, _, _ := c.Lab()
	if l > 0.6 {
		contrast = "#000000"
	} else {
		contrast = "#ffffff"
	}
	return parsed.HexString(), contrast
}

// CSS renders the edits as a rule on the component's selector, in token
// order, with !important so they win over the page's styles. It returns ""
// when nothing is edited.
func (p *Panel) CSS() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.edits) == 0 || p.cfg == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {\n", p.cfg.Selector)
	seen := make(map[string]bool, len(p.edits))
	write := func(name string) {
		if v, ok := p.edits[name]; ok && !seen[name] {
			seen[name] = true
			fmt.Fprintf(&sb, "  %s: %s !important;\n", name, v)
		}
	}
	for _, d := range p.cfg.Tokens {
		write(d.Name)
	}
	for _, k := range p.cfg.VariantKeys {
		for _, d := range p.cfg.Variants[k] {
			write(d.Name)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
