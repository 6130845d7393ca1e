/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameMappings maps a dash-joined token path to the CSS variable base name
// that replaces it.
type NameMappings map[string]string

// DefaultNameMappings returns the overrides that keep generated variable
// names aligned with the names components already use.
func DefaultNameMappings() NameMappings {
	return NameMappings{
		"font-family-sans":              "font-sans",
		"font-family-mono":              "font-mono",
		"font-line-height-none":         "line-height-none",
		"font-line-height-tight":        "line-height-tight",
		"font-line-height-snug":         "line-height-snug",
		"font-line-height-normal":       "line-height-normal",
		"font-line-height-relaxed":      "line-height-relaxed",
		"font-line-height-loose":        "line-height-loose",
		"color-base-background":         "color-background",
		"color-base-foreground":         "color-foreground",
		"size-component-height-sm":      "component-height-sm",
		"size-component-height-default": "component-height-default",
		"size-component-height-lg":      "component-height-lg",
		"size-icon-sm":                  "icon-size-sm",
		"size-icon-default":             "icon-size-default",
		"size-icon-lg":                  "icon-size-lg",
		"z-index-base":                  "z-index-base",
		"z-index-elevated":              "z-index-elevated",
		"z-index-sticky":                "z-index-sticky",
		"z-index-fixed":                 "z-index-fixed",
		"z-index-overlay":               "z-index-overlay",
		"z-index-modal":                 "z-index-modal",
		"z-index-popover":               "z-index-popover",
		"z-index-tooltip":               "z-index-tooltip",
		"z-index-dropdown":              "z-index-dropdown",
		"z-index-button-hover":          "z-index-button-hover",
		"z-index-button-active":         "z-index-button-active",
		"z-index-button-focus":          "z-index-button-focus",
		"transition-preset-fast":        "transition-fast",
		"transition-preset-normal":      "transition-normal",
		"transition-preset-slow":        "transition-slow",
		"transition-preset-colors":      "transition-colors",
		"transition-preset-opacity":     "transition-opacity",
		"transition-preset-transform":   "transition-transform",
		"transition-preset-all":         "transition-all",
		"shadow-inner-default":          "shadow-inner",
	}
}

var lineHeightPattern = regexp.MustCompile(`^font-lineHeight-`)

// NameTransform derives CSS variable base names (without the leading "--")
// from token paths.
type NameTransform struct {
	mappings NameMappings
}

// NewNameTransform creates a NameTransform. A nil mappings table disables
// overrides.
func NewNameTransform(mappings NameMappings) *NameTransform {
	return &NameTransform{mappings: mappings}
}

// Name joins path with "-". An exact match in the mapping table wins,
// otherwise a leading "font-lineHeight-" becomes "line-height-".
func (n *NameTransform) Name(path []string) string {
	name := strings.Join(path, "-")
	if mapped, ok := n.mappings[name]; ok && mapped != "" {
		return mapped
	}
	return lineHeightPattern.ReplaceAllLiteralString(name, "line-height-")
}

// Transform returns n as the name/cti/kebab-custom transform.
func (n *NameTransform) Transform() Transform {
	return Named(NameKebabCustom, n.Name)
}

// Kebab joins the words of every path segment with "-" in lower case.
func Kebab(path []string) string {
	return strings.ToLower(strings.Join(pathWords(path), "-"))
}

// Pascal joins the words of every path segment in PascalCase.
func Pascal(path []string) string {
	title := cases.Title(language.Und)
	var sb strings.Builder
	for _, word := range pathWords(path) {
		sb.WriteString(title.String(word))
	}
	return sb.String()
}

func pathWords(path []string) []string {
	var words []string
	for _, segment := range path {
		words = append(words, SplitIntoWords(segment)...)
	}
	return words
}

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces and
// camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && i > 0:
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
