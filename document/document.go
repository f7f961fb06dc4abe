/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package document models the preview document whose root-scope custom
// properties feed the token pipeline.
//
// A document is a list of stylesheets plus an optional inline style on the
// root element. Stylesheets served from another origin still take part in
// the cascade, but their rules cannot be enumerated.
package document

import (
	"errors"
	"strings"
)

// ErrCrossOrigin is returned by StyleSheet.Rules for sheets whose rules
// are not readable from the document's origin.
var ErrCrossOrigin = errors.New("stylesheet rules are not accessible from this origin")

// Document is a rendered preview document.
type Document interface {
	// Ready reports whether the document has finished loading.
	Ready() bool

	// StyleSheets returns the document's stylesheets in cascade order.
	StyleSheets() []StyleSheet

	// ComputedValue returns the computed value of a property on the root element.
	ComputedValue(property string) (string, bool)
}

// StyleSheet is one stylesheet attached to a document.
type StyleSheet interface {
	// Href is the sheet's location, empty for inline <style> blocks.
	Href() string

	// Rules returns the sheet's top-level style rules, or ErrCrossOrigin.
	Rules() ([]Rule, error)
}

// Rule is a style rule: a selector list and its declarations.
type Rule struct {
	Selector     string        `json:"selector"`
	Declarations []Declaration `json:"declarations"`
}

// Declaration is one property declaration inside a rule.
type Declaration struct {
	Property  string `json:"property"`
	Value     string `json:"value"`
	Important bool   `json:"important,omitempty"`
}

// Selectors splits the rule's selector list on commas.
func (r Rule) Selectors() []string {
	var out []string
	for s := range strings.SplitSeq(r.Selector, ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TargetsRoot reports whether any selector in the list matches the root
// element on its own (":root" or "html").
func (r Rule) TargetsRoot() bool {
	return rootSpecificity(r) > 0
}

// rootSpecificity ranks root selectors for the cascade: ":root" is a
// pseudo-class and outranks the "html" type selector.
func rootSpecificity(r Rule) int {
	best := 0
	for _, s := range r.Selectors() {
		switch strings.ToLower(s) {
		case ":root":
			best = max(best, 10)
		case "html:root":
			best = max(best, 11)
		case "html":
			best = max(best, 1)
		}
	}
	return best
}

// IsCustomProperty reports whether name is a CSS custom property.
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}
