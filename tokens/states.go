/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"slices"

	"bennypowers.dev/wmtokens/tokentree"
)

// DetectAvailableStates lists the states of componentKey: "default" first,
// then the keys of its mapping.states group in document order.
func DetectAvailableStates(tree *tokentree.Tree, componentKey string) []string {
	states := []string{DefaultState}

	c, ok := tree.Component(componentKey)
	if !ok {
		return states
	}
	n, ok := c.Mapping.Child("states")
	if !ok {
		return states
	}
	g, ok := n.(*tokentree.Group)
	if !ok {
		return states
	}

	for _, k := range g.Keys() {
		if !slices.Contains(states, k) {
			states = append(states, k)
		}
	}
	return states
}
