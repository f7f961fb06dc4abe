/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package catalog holds the closed set of design primitives that token
// definitions may reference.
//
// Each primitive is declared once, as a dotted path and a literal fallback.
// The token reference ("{color.primary.@.value}") and the CSS custom property
// ("--wm-color-primary") are both derived from the path, so the runtime
// reference table and the fallback table always cover the same keys.
package catalog

import (
	"maps"
	"strings"
)

// VariablePrefix is the reserved custom-property prefix of the design system.
const VariablePrefix = "--wm-"

// GroupMarker is the path segment that names a group's own value.
// It never appears in CSS variable names.
const GroupMarker = "@"

// Entry is one known primitive.
type Entry struct {
	// Path is the dotted path of the primitive, e.g. "color.primary.@".
	Path string `json:"path"`

	// Reference is the token reference, e.g. "{color.primary.@.value}".
	Reference string `json:"reference"`

	// Variable is the CSS custom property, e.g. "--wm-color-primary".
	Variable string `json:"variable"`

	// Fallback is the literal used when no live value is available.
	Fallback string `json:"fallback"`
}

type primitive struct {
	path     string
	fallback string
}

var primitives = []primitive{
	// Colors
	{"color.primary.@", "#FF7250"},
	{"color.on-primary.@", "#FFFFFF"},
	{"color.primary-container.@", "#FFDBD1"},
	{"color.on-primary-container.@", "#3B0900"},
	{"color.secondary.@", "#77574E"},
	{"color.on-secondary.@", "#FFFFFF"},
	{"color.secondary-container.@", "#FFDBD1"},
	{"color.on-secondary-container.@", "#2C150F"},
	{"color.tertiary.@", "#6C5D2F"},
	{"color.on-tertiary.@", "#FFFFFF"},
	{"color.error.@", "#BA1A1A"},
	{"color.on-error.@", "#FFFFFF"},
	{"color.success.@", "#2E7D32"},
	{"color.on-success.@", "#FFFFFF"},
	{"color.warning.@", "#ED6C02"},
	{"color.on-warning.@", "#FFFFFF"},
	{"color.info.@", "#0288D1"},
	{"color.on-info.@", "#FFFFFF"},
	{"color.surface.@", "#FFF8F6"},
	{"color.on-surface.@", "#231917"},
	{"color.surface-variant.@", "#F5DED8"},
	{"color.on-surface-variant.@", "#53433F"},
	{"color.surface-container.@", "#FCEAE5"},
	{"color.background.@", "#FFF8F6"},
	{"color.on-background.@", "#231917"},
	{"color.outline.@", "#85736E"},
	{"color.outline-variant.@", "#D8C2BC"},
	{"color.shadow.@", "#000000"},
	{"color.scrim.@", "#000000"},
	{"color.inverse-surface.@", "#392E2B"},
	{"color.inverse-on-surface.@", "#FFEDE8"},
	{"color.transparent.@", "transparent"},

	// Spacing scale
	{"space.0", "0px"},
	{"space.1", "2px"},
	{"space.2", "4px"},
	{"space.3", "8px"},
	{"space.4", "12px"},
	{"space.5", "16px"},
	{"space.6", "24px"},
	{"space.7", "32px"},
	{"space.8", "40px"},
	{"space.9", "48px"},
	{"space.10", "56px"},
	{"space.11", "64px"},
	{"space.12", "80px"},

	// Radii
	{"radius.none", "0px"},
	{"radius.xs", "2px"},
	{"radius.sm", "4px"},
	{"radius.md", "8px"},
	{"radius.lg", "12px"},
	{"radius.xl", "16px"},
	{"radius.pill", "9999px"},

	// Icon sizes
	{"icon.size.xs", "12px"},
	{"icon.size.sm", "16px"},
	{"icon.size.md", "20px"},
	{"icon.size.lg", "24px"},
	{"icon.size.xl", "32px"},

	// Typography
	{"font.family.body", "Roboto, sans-serif"},
	{"font.family.heading", "Roboto, sans-serif"},
	{"font.size.label.small", "11px"},
	{"font.size.label.medium", "12px"},
	{"font.size.label.large", "14px"},
	{"font.size.body.small", "12px"},
	{"font.size.body.medium", "14px"},
	{"font.size.body.large", "16px"},
	{"font.size.title.small", "14px"},
	{"font.size.title.medium", "16px"},
	{"font.size.title.large", "22px"},
	{"font.size.headline.small", "24px"},
	{"font.size.headline.medium", "28px"},
	{"font.size.headline.large", "32px"},
	{"font.size.display.small", "36px"},
	{"font.size.display.medium", "45px"},
	{"font.size.display.large", "57px"},
	{"font.weight.regular", "400"},
	{"font.weight.medium", "500"},
	{"font.weight.bold", "700"},
	{"font.line-height.small", "16px"},
	{"font.line-height.medium", "20px"},
	{"font.line-height.large", "24px"},
	{"font.letter-spacing.none", "0px"},
	{"font.letter-spacing.wide", "0.5px"},

	// Opacity levels
	{"opacity.hover", "0.08"},
	{"opacity.focus", "0.12"},
	{"opacity.active", "0.12"},
	{"opacity.dragged", "0.16"},
	{"opacity.disabled", "0.38"},
	{"opacity.disabled-container", "0.12"},

	// Borders
	{"border.width.none", "0px"},
	{"border.width.thin", "1px"},
	{"border.width.thick", "2px"},
	{"border.style.solid", "solid"},
	{"border.style.dashed", "dashed"},
	{"border.style.dotted", "dotted"},
}

var (
	entries    []Entry
	byRef      map[string]Entry
	references map[string]string
	fallbacks  map[string]string
)

func init() {
	entries = make([]Entry, 0, len(primitives))
	byRef = make(map[string]Entry, len(primitives))
	references = make(map[string]string, len(primitives))
	fallbacks = make(map[string]string, len(primitives))
	for _, p := range primitives {
		e := Entry{
			Path:      p.path,
			Reference: ReferenceFor(p.path),
			Variable:  VariableFor(p.path),
			Fallback:  p.fallback,
		}
		entries = append(entries, e)
		byRef[e.Reference] = e
		references[e.Reference] = e.Variable
		fallbacks[e.Reference] = e.Fallback
	}
}

// ReferenceFor returns the token reference for a primitive path.
// e.g. "space.6" -> "{space.6.value}"
func ReferenceFor(path string) string {
	return "{" + path + ".value}"
}

// VariableFor returns the CSS custom property for a primitive path.
// e.g. "color.primary.@" -> "--wm-color-primary"
func VariableFor(path string) string {
	parts := strings.Split(path, ".")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == GroupMarker || p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return VariablePrefix + strings.Join(kept, "-")
}

// Entries returns the catalog in declaration order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds the entry for a token reference.
func Lookup(reference string) (Entry, bool) {
	e, ok := byRef[reference]
	return e, ok
}

// ReferenceMap returns a fresh map from token reference to CSS variable.
func ReferenceMap() map[string]string {
	return maps.Clone(references)
}

// Fallbacks returns a fresh map from token reference to its literal value.
func Fallbacks() map[string]string {
	return maps.Clone(fallbacks)
}

// Fallback returns the literal for a single reference.
func Fallback(reference string) (string, bool) {
	v, ok := fallbacks[reference]
	return v, ok
}
