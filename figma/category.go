/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

// Conversion labels select the value and type rules applied to a category.
const (
	LabelColor        = "color"
	LabelSpacing      = "spacing"
	LabelTypography   = "typography"
	LabelBorderRadius = "borderRadius"
	LabelShadow       = "shadow"
	LabelSizing       = "sizing"
)

// Category is one token set of the exported document.
type Category struct {
	// Key is the token set name in the document ("colors", "radius", ...).
	Key string

	// Label selects the conversion rules (see FlattenValue and ConvertType).
	Label string

	// Source is the token file the set is read from.
	Source string
}

// DefaultCategories returns the six token sets in document order.
func DefaultCategories() []Category {
	return []Category{
		{Key: "colors", Label: LabelColor, Source: "colors.json"},
		{Key: "spacing", Label: LabelSpacing, Source: "spacing.json"},
		{Key: "typography", Label: LabelTypography, Source: "typography.json"},
		{Key: "radius", Label: LabelBorderRadius, Source: "border-radius.json"},
		{Key: "shadows", Label: LabelShadow, Source: "shadows.json"},
		{Key: "sizes", Label: LabelSizing, Source: "component-sizes.json"},
	}
}

// TypeMap maps token types to Tokens Studio types. The dimension entry is
// resolved per category by ConvertType.
type TypeMap map[string]string

// DefaultTypeMap returns the standard token type to Figma type table.
func DefaultTypeMap() TypeMap {
	return TypeMap{
		"color":      "color",
		"dimension":  "sizing",
		"fontFamily": "fontFamilies",
		"fontWeight": "fontWeights",
		"number":     "lineHeights",
		"shadow":     "boxShadow",
	}
}

// TargetTypes lists every type ConvertType can produce from a known type.
var TargetTypes = []string{
	"color",
	"sizing",
	"borderRadius",
	"fontFamilies",
	"fontWeights",
	"lineHeights",
	"boxShadow",
}
