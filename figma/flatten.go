/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma converts token trees to the Tokens Studio for Figma format.
package figma

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"bennypowers.dev/tokenbuild/token"
)

// RemBase is the pixel size of 1rem.
const RemBase = 16

// decimalPattern matches the plain decimal numbers FlattenValue converts.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Token is a flattened token as Tokens Studio expects it.
type Token struct {
	Value       any    `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
}

// Flattener flattens token trees for one type table.
type Flattener struct {
	types TypeMap
}

// NewFlattener returns a Flattener using the given type table.
func NewFlattener(types TypeMap) *Flattener {
	return &Flattener{types: types}
}

// Flatten turns a token tree into a flat set keyed by the hyphen-joined path.
// Keys keep document order; a later token with the same name replaces the
// earlier value in place.
func (f *Flattener) Flatten(tree *token.Tree, category Category) *orderedmap.OrderedMap {
	result := orderedmap.New()
	tree.Walk(func(path []string, n *token.Node) {
		result.Set(strings.Join(path, "-"), Token{
			Value:       FlattenValue(n.Value, category.Label),
			Type:        f.ConvertType(n.Type, category.Label),
			Description: n.Comment,
		})
	})
	return result
}

// Flatten flattens a tree with the default type table.
func Flatten(tree *token.Tree, category Category) *orderedmap.OrderedMap {
	return NewFlattener(DefaultTypeMap()).Flatten(tree, category)
}

// FlattenValue converts a token value for Figma. Spacing and border radius
// values drop their rem unit and are scaled to pixels; everything else is
// returned unchanged.
//
// A value that is not a plain number once "rem" is removed ("4px", "auto")
// is returned with the unit stripped but otherwise untouched.
func FlattenValue(value any, label string) any {
	if label != LabelSpacing && label != LabelBorderRadius {
		return value
	}
	s, ok := value.(string)
	if !ok {
		return value
	}

	stripped := strings.TrimSpace(strings.Replace(s, "rem", "", 1))
	if !decimalPattern.MatchString(stripped) {
		return stripped
	}
	n, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return stripped
	}
	return strconv.FormatFloat(n*RemBase, 'f', -1, 64)
}

// ConvertType maps a token type to its Tokens Studio type. Dimensions become
// borderRadius in the border radius set and sizing elsewhere; unknown types
// pass through.
func (f *Flattener) ConvertType(typ, label string) string {
	if typ == token.TypeDimension && label == LabelBorderRadius {
		return "borderRadius"
	}
	if mapped, ok := f.types[typ]; ok {
		return mapped
	}
	return typ
}

// ConvertType maps a token type with the default type table.
func ConvertType(typ, label string) string {
	return NewFlattener(DefaultTypeMap()).ConvertType(typ, label)
}
