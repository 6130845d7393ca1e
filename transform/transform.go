/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the token transforms applied while compiling a
// platform: attribute classification, naming, and value conversion.
package transform

import (
	"errors"

	"bennypowers.dev/tokenbuild/token"
)

// ErrInvalidSize is returned when a size token has no numeric value.
var ErrInvalidSize = errors.New("invalid size value")

// Kind says which part of a token a transform writes.
type Kind int

const (
	// KindAttribute transforms set Token.Attributes.
	KindAttribute Kind = iota

	// KindName transforms set Token.Name.
	KindName

	// KindValue transforms rewrite Token.Value. They are skipped for tokens
	// whose value references other tokens.
	KindValue
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindName:
		return "name"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Transform is a named token transformation.
type Transform struct {
	Name string
	Kind Kind

	// Matcher limits the transform to some tokens. Nil matches every token.
	Matcher func(tok *token.Token) bool

	// Apply mutates the token in place.
	Apply func(tok *token.Token) error
}

// Matches reports whether t applies to tok.
func (t Transform) Matches(tok *token.Token) bool {
	return t.Matcher == nil || t.Matcher(tok)
}

// NameFunc derives a token name from its path.
type NameFunc func(path []string) string

// Named wraps a NameFunc as a name transform.
func Named(name string, fn NameFunc) Transform {
	return Transform{
		Name: name,
		Kind: KindName,
		Apply: func(tok *token.Token) error {
			tok.Name = fn(tok.Path)
			return nil
		},
	}
}

// Transform names.
const (
	AttributeCTI    = "attribute/cti"
	NameKebab       = "name/cti/kebab"
	NamePascal      = "name/cti/pascal"
	NameKebabCustom = "name/cti/kebab-custom"
	TimeSeconds     = "time/seconds"
	ContentIcon     = "content/icon"
	SizeRem         = "size/rem"
	ColorCSS        = "color/css"
	ColorHex        = "color/hex"
	GroupCSS        = "css"
	GroupJS         = "js"
	GroupCustomCSS  = "custom/css"
)

// Standard returns the built-in transforms.
func Standard() []Transform {
	return []Transform{
		{Name: AttributeCTI, Kind: KindAttribute, Apply: applyCTI},
		Named(NameKebab, Kebab),
		Named(NamePascal, Pascal),
		{Name: TimeSeconds, Kind: KindValue, Matcher: categoryIs("time"), Apply: applyTimeSeconds},
		{Name: ContentIcon, Kind: KindValue, Matcher: isIcon, Apply: applyContentIcon},
		{Name: SizeRem, Kind: KindValue, Matcher: categoryIs("size"), Apply: applySizeRem},
		{Name: ColorCSS, Kind: KindValue, Matcher: categoryIs("color"), Apply: applyColorCSS},
		{Name: ColorHex, Kind: KindValue, Matcher: categoryIs("color"), Apply: applyColorHex},
	}
}

// StandardGroups returns the built-in transform groups.
func StandardGroups() map[string][]string {
	return map[string][]string{
		GroupCSS: {AttributeCTI, NameKebab, TimeSeconds, ContentIcon, SizeRem, ColorCSS},
		GroupJS:  {AttributeCTI, NamePascal, SizeRem, ColorHex},
	}
}

// CustomCSSGroup is the css group with the kebab name transform replaced by
// NameKebabCustom.
func CustomCSSGroup() []string {
	return []string{AttributeCTI, NameKebabCustom, TimeSeconds, ContentIcon, SizeRem, ColorCSS}
}

func categoryIs(category string) func(*token.Token) bool {
	return func(tok *token.Token) bool {
		return tok.Attributes.Category == category
	}
}

func isIcon(tok *token.Token) bool {
	return tok.Attributes.Category == "content" && tok.Attributes.Type == "icon"
}

// applyCTI classifies a token by category/type/item/subitem/state.
func applyCTI(tok *token.Token) error {
	fields := []*string{
		&tok.Attributes.Category,
		&tok.Attributes.Type,
		&tok.Attributes.Item,
		&tok.Attributes.Subitem,
		&tok.Attributes.State,
	}
	for i, field := range fields {
		if i < len(tok.Path) {
			*field = tok.Path[i]
		}
	}
	return nil
}
