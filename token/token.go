/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types shared by the Figma export and
// the CSS build.
package token

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Token types accepted in source trees.
const (
	TypeColor      = "color"
	TypeDimension  = "dimension"
	TypeFontFamily = "fontFamily"
	TypeFontWeight = "fontWeight"
	TypeNumber     = "number"
	TypeShadow     = "shadow"
)

// KnownTypes lists the token types the pipelines understand.
var KnownTypes = []string{
	TypeColor,
	TypeDimension,
	TypeFontFamily,
	TypeFontWeight,
	TypeNumber,
	TypeShadow,
}

// IsKnownType reports whether typ is one of KnownTypes.
func IsKnownType(typ string) bool {
	return slices.Contains(KnownTypes, typ)
}

// Token is a single design token. Tokens read from a tree carry only Path,
// Value, RawValue, Type and Comment; compilation fills in Name, Attributes and
// the transformed Value.
type Token struct {
	// Name is the platform identifier produced by a name transform.
	Name string `json:"name"`

	// Value is the current value. After compilation it is transformed and
	// has its references resolved.
	Value any `json:"value"`

	// RawValue is the value as written in the source file.
	RawValue any `json:"-"`

	// Type is the token type (color, dimension, ...).
	Type string `json:"type,omitempty"`

	// Comment is the optional human description.
	Comment string `json:"comment,omitempty"`

	// Path is the key sequence from the tree root (e.g. ["color", "base", "primary"]).
	Path []string `json:"-"`

	// Attributes holds the category/type/item classification derived from Path.
	Attributes Attributes `json:"-"`

	// FilePath is the source file this token was loaded from.
	FilePath string `json:"-"`

	// IsResolved is set once references in Value have been substituted.
	IsResolved bool `json:"-"`
}

// Attributes classify a token by the first five path segments.
type Attributes struct {
	Category string
	Type     string
	Item     string
	Subitem  string
	State    string
}

// Get returns the attribute stored under key ("category", "type", "item",
// "subitem" or "state").
func (a Attributes) Get(key string) (string, bool) {
	switch key {
	case "category":
		return a.Category, true
	case "type":
		return a.Type, true
	case "item":
		return a.Item, true
	case "subitem":
		return a.Subitem, true
	case "state":
		return a.State, true
	default:
		return "", false
	}
}

// DotPath returns the dot-separated path, the form used in references.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// FigmaPath returns the slash-separated path Figma uses for token groups.
func (t *Token) FigmaPath() string {
	return strings.Join(t.Path, "/")
}

// CSSVariableName returns the custom property name, adding "--" when the
// name does not already start with it.
func (t *Token) CSSVariableName() string {
	if strings.HasPrefix(t.Name, "--") {
		return t.Name
	}
	return "--" + t.Name
}

// Clone returns a copy that can be transformed without touching t.
func (t *Token) Clone() *Token {
	c := *t
	c.Path = slices.Clone(t.Path)
	return &c
}

// StringValue returns Value rendered for text output.
func (t *Token) StringValue() string {
	return FormatValue(t.Value)
}

// FormatValue renders a token value as text. Strings are returned as-is,
// numbers in their shortest form, and composite values as JSON.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(x); err != nil {
			return ""
		}
		return strings.TrimSuffix(buf.String(), "\n")
	}
}
