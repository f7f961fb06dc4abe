/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokentree

// Shape identifies which documented layout a component uses.
type Shape int

const (
	// ShapeFlat has a mapping and no appearances.
	ShapeFlat Shape = iota
	// ShapeVariantGroups has appearances, usually with variant groups, at
	// the component level.
	ShapeVariantGroups
	// ShapeMetaAppearances declares its appearances under meta.
	ShapeMetaAppearances
)

// String returns the shape's name.
func (s Shape) String() string {
	switch s {
	case ShapeVariantGroups:
		return "variantGroups"
	case ShapeMetaAppearances:
		return "metaAppearances"
	default:
		return "flat"
	}
}

// Shape reports the layout of c. Component-level appearances take precedence
// when both locations are populated.
func (c *Component) Shape() Shape {
	switch {
	case len(c.Appearances) > 0:
		return ShapeVariantGroups
	case len(c.Meta.Appearances) > 0:
		return ShapeMetaAppearances
	default:
		return ShapeFlat
	}
}

// HasVariants reports whether any appearance of c declares a variant group.
func (c *Component) HasVariants() bool {
	for _, a := range c.AllAppearances() {
		if len(a.VariantGroups) > 0 {
			return true
		}
	}
	return false
}
