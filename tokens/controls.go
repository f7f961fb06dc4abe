/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"slices"
	"strings"
)

var selectOptions = map[string][]string{
	"text-transform": {"none", "uppercase", "lowercase", "capitalize"},
	"border-style":   {"solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset", "none"},
	"cursor": {
		"auto", "default", "none", "context-menu", "help", "pointer", "progress",
		"wait", "cell", "crosshair", "text", "vertical-text", "alias", "copy",
		"move", "no-drop", "not-allowed", "grab", "grabbing", "all-scroll",
		"col-resize", "row-resize", "n-resize", "e-resize", "s-resize",
		"w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize",
		"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "zoom-in",
		"zoom-out",
	},
}

// ControlFor returns the control type for a token subtype, and the options
// of select controls.
func ControlFor(subtype string) (ControlType, []string) {
	switch subtype {
	case "color":
		return ControlColor, nil
	case "font-size", "space", "radius", "border-width":
		return ControlText, nil
	case "text-transform", "border-style", "cursor":
		return ControlSelect, slices.Clone(selectOptions[subtype])
	case "opacity":
		return ControlNumber, nil
	default:
		return ControlText, nil
	}
}

// TypeFor classifies a token by its type, or its subtype when the type is empty.
func TypeFor(typ, subtype string) TokenType {
	t := strings.ToLower(typ)
	if t == "" {
		t = strings.ToLower(subtype)
	}

	switch {
	case t == "color":
		return TypeColor
	case strings.HasPrefix(t, "font"), t == "typography", t == "line-height", t == "letter-spacing":
		return TypeFont
	case t == "space", t == "spacing", t == "dimension", t == "sizing":
		return TypeSpace
	case t == "radius", t == "border-radius":
		return TypeRadius
	default:
		return TypeText
	}
}
