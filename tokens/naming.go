/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"strings"

	"bennypowers.dev/wmtokens/catalog"
)

// DefaultState is the state every component has.
const DefaultState = "default"

// disabledState keeps its name in labels.
const disabledState = "disabled"

// CSSVariableName returns the custom property of the token at path within
// componentKey. "@" segments are dropped.
//
//	CSSVariableName("btn", []string{"border", "color"}) // "--wm-btn-border-color"
//	CSSVariableName("anchor", []string{"color", "@"})   // "--wm-anchor-color"
func CSSVariableName(componentKey string, path []string) string {
	var sb strings.Builder
	sb.WriteString(catalog.VariablePrefix)
	sb.WriteString(componentKey)
	for _, seg := range path {
		if seg == catalog.GroupMarker || seg == "" {
			continue
		}
		sb.WriteByte('-')
		sb.WriteString(seg)
	}
	return sb.String()
}

// Label returns the display label of variable for the selected state.
//
// The component prefix is removed and hyphens become dots. For a state other
// than default, the "states-<state>-" prefix is removed as well, except for
// the disabled state whose name stays in the label. Variables outside the
// component only lose their leading "--".
func Label(variable, componentKey, selectedState string) string {
	raw, ok := strings.CutPrefix(variable, catalog.VariablePrefix+componentKey+"-")
	if !ok {
		return strings.TrimPrefix(variable, "--")
	}

	switch selectedState {
	case "", DefaultState:
	case disabledState:
		if strings.HasPrefix(raw, "states-"+disabledState+"-") {
			raw = strings.TrimPrefix(raw, "states-")
		}
	default:
		raw = strings.TrimPrefix(raw, "states-"+selectedState+"-")
	}
	return strings.ReplaceAll(raw, "-", ".")
}
