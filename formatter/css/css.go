/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"path"
	"strings"

	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/token"
)

// Categories.
const (
	CategoryColor      = "color"
	CategorySpacing    = "spacing"
	CategoryFont       = "font"
	CategoryRadius     = "radius"
	CategorySize       = "size"
	CategoryShadow     = "shadow"
	CategoryZIndex     = "zIndex"
	CategoryTransition = "transition"
)

// Header is the documentation comment written at the top of a file.
type Header struct {
	Title       string
	Description string
	Usage       string
}

// FallbackHeader is used when the category has no header.
var FallbackHeader = Header{Title: "TOKENS", Description: "Design tokens"}

// DefaultCategories maps destination file names to categories.
func DefaultCategories() map[string]string {
	return map[string]string{
		"colors.css":          CategoryColor,
		"spacing.css":         CategorySpacing,
		"typography.css":      CategoryFont,
		"border-radius.css":   CategoryRadius,
		"component-sizes.css": CategorySize,
		"shadows.css":         CategoryShadow,
		"z-index.css":         CategoryZIndex,
		"transitions.css":     CategoryTransition,
	}
}

// DefaultHeaders returns the documentation header of every category.
func DefaultHeaders() map[string]Header {
	return map[string]Header{
		CategoryColor: {
			Title:       "COLORS",
			Description: "Color palette for the design system.\nBased on shadcn/ui zinc color scheme.",
			Usage:       "background: var(--color-primary);",
		},
		CategorySpacing: {
			Title:       "SPACING",
			Description: "Consistent spacing scale using rem units.\nBased on 4px (0.25rem) baseline.",
			Usage:       "padding: var(--spacing-4);",
		},
		CategoryFont: {
			Title:       "TYPOGRAPHY",
			Description: "Font sizes, weights, and line heights.\nUses Geist font - the same font as shadcn/ui.",
			Usage:       "font-size: var(--font-size-lg);\nfont-weight: var(--font-weight-medium);",
		},
		CategoryRadius: {
			Title:       "BORDER RADIUS",
			Description: "Consistent corner rounding for components.",
			Usage:       "border-radius: var(--radius-md);",
		},
		CategorySize: {
			Title:       "COMPONENT SIZES",
			Description: "Standard sizes for components like buttons and inputs.",
			Usage:       "height: var(--component-height-default);",
		},
		CategoryShadow: {
			Title:       "SHADOWS",
			Description: "Consistent shadow system for depth and elevation.\nBased on shadcn/ui shadow scale.",
			Usage:       "box-shadow: var(--shadow-sm);",
		},
		CategoryZIndex: {
			Title:       "Z-INDEX",
			Description: "Layering system for stacking elements.",
			Usage:       "z-index: var(--z-index-dropdown);",
		},
		CategoryTransition: {
			Title:       "TRANSITIONS",
			Description: "Consistent animation timing for interactions.",
			Usage:       "transition: all var(--transition-normal);",
		},
	}
}

// Options configures the header formatter.
type Options struct {
	// Categories maps destination file names to categories.
	Categories map[string]string

	// Headers maps categories to their documentation header.
	Headers map[string]Header
}

// DefaultOptions returns the default category and header tables.
func DefaultOptions() Options {
	return Options{
		Categories: DefaultCategories(),
		Headers:    DefaultHeaders(),
	}
}

// Formatter writes a documented :root block, with font imports for
// typography, keyframes for transitions and a dark mode block for shadows.
type Formatter struct {
	opts Options
}

// New creates a header formatter with the given tables.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Category resolves the category of a file: by destination file name first,
// then by the filter's category attribute.
func (f *Formatter) Category(opts formatter.Options) string {
	if category, ok := f.opts.Categories[path.Base(opts.Destination)]; ok {
		return category
	}
	return opts.FilterCategory
}

// Format converts tokens to a CSS document. Tokens are written in the
// order given.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	category := f.Category(opts)
	header, ok := f.opts.Headers[category]
	if !ok {
		header = FallbackHeader
	}

	var sb strings.Builder
	writeHeader(&sb, header)

	if category == CategoryFont {
		sb.WriteString(fontImports)
	}

	writeRoot(&sb, tokens)

	switch category {
	case CategoryTransition:
		sb.WriteString(transitionKeyframes)
	case CategoryShadow:
		sb.WriteString(shadowDarkMode)
	}

	return []byte(sb.String()), nil
}

func writeHeader(sb *strings.Builder, h Header) {
	sb.WriteString("/**\n * DESIGN TOKENS - " + h.Title + "\n * \n")
	if h.Description != "" {
		for _, line := range strings.Split(h.Description, "\n") {
			sb.WriteString(" * " + line + "\n")
		}
		sb.WriteString(" * \n")
	}
	if h.Usage != "" {
		sb.WriteString(" * Usage:\n")
		for _, line := range strings.Split(h.Usage, "\n") {
			sb.WriteString(" *   " + line + "\n")
		}
	}
	sb.WriteString(" */\n\n")
}

func writeRoot(sb *strings.Builder, tokens []*token.Token) {
	sb.WriteString(":root {\n")
	for _, tok := range tokens {
		if tok.Comment != "" {
			sb.WriteString("  /* " + tok.Comment + " */\n")
		}
		sb.WriteString("  " + tok.CSSVariableName() + ": " + tok.StringValue() + ";\n")
	}
	sb.WriteString("}\n")
}

const fontImports = `/* Import Geist font from Google Fonts */
@import url('https://fonts.googleapis.com/css2?family=Geist:wght@100;200;300;400;500;600;700;800;900&display=swap');

/* Fallback: Geist Mono for code */
@import url('https://fonts.googleapis.com/css2?family=Geist+Mono:wght@100;200;300;400;500;600;700;800;900&display=swap');

`

const transitionKeyframes = `
/* Animations */
@keyframes spin {
  from {
    transform: rotate(0deg);
  }
  to {
    transform: rotate(360deg);
  }
}

@keyframes dotPulse {
  0% {
    opacity: 1;
    box-shadow: var(--dot-spacing) 0 0 transparent, calc(var(--dot-spacing) * -1) 0 0 transparent;
  }
  33% {
    opacity: 1;
    box-shadow: var(--dot-spacing) 0 0 transparent, calc(var(--dot-spacing) * -1) 0 0 var(--dot-color);
  }
  66% {
    opacity: 1;
    box-shadow: var(--dot-spacing) 0 0 var(--dot-color), calc(var(--dot-spacing) * -1) 0 0 var(--dot-color);
  }
  100% {
    opacity: 1;
    box-shadow: var(--dot-spacing) 0 0 transparent, calc(var(--dot-spacing) * -1) 0 0 transparent;
  }
}
`

// shadowDarkMode has a line holding only four spaces after the 2xl shadow.
const shadowDarkMode = "\n/* Dark Mode Adjustments */\n" +
	"@media (prefers-color-scheme: dark) {\n" +
	"  :root {\n" +
	"    /* Stronger shadows in dark mode for better visibility */\n" +
	"    --shadow-xs: 0 1px 2px 0 rgba(0, 0, 0, 0.3);\n" +
	"    --shadow-sm: 0 1px 3px 0 rgba(0, 0, 0, 0.4), 0 1px 2px -1px rgba(0, 0, 0, 0.4);\n" +
	"    --shadow-md: 0 4px 6px -1px rgba(0, 0, 0, 0.4), 0 2px 4px -2px rgba(0, 0, 0, 0.4);\n" +
	"    --shadow-lg: 0 10px 15px -3px rgba(0, 0, 0, 0.4), 0 4px 6px -4px rgba(0, 0, 0, 0.4);\n" +
	"    --shadow-xl: 0 20px 25px -5px rgba(0, 0, 0, 0.4), 0 8px 10px -6px rgba(0, 0, 0, 0.4);\n" +
	"    --shadow-2xl: 0 25px 50px -12px rgba(0, 0, 0, 0.5);\n" +
	"    \n" +
	"    /* Inner shadows for dark mode */\n" +
	"    --shadow-inner: inset 0 2px 4px 0 rgba(0, 0, 0, 0.3);\n" +
	"    --shadow-inner-sm: inset 0 1px 2px 0 rgba(0, 0, 0, 0.2);\n" +
	"    --shadow-inner-md: inset 0 2px 4px 0 rgba(0, 0, 0, 0.4);\n" +
	"    --shadow-inner-lg: inset 0 4px 6px 0 rgba(0, 0, 0, 0.5);\n" +
	"  }\n" +
	"}\n"
