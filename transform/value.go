/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenbuild/token"
)

var (
	leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	iconEntity    = regexp.MustCompile(`&#x([^;]+);`)
)

// ParseLeadingFloat parses the numeric prefix of s, the way "0.25rem" reads
// as 0.25. It reports false when s does not start with a number.
func ParseLeadingFloat(s string) (float64, bool) {
	match := leadingNumber.FindString(s)
	if match == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		return ParseLeadingFloat(n)
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// applyTimeSeconds converts milliseconds to seconds with two decimals.
func applyTimeSeconds(tok *token.Token) error {
	ms, ok := numericValue(tok.Value)
	if !ok {
		return nil
	}
	tok.Value = fmt.Sprintf("%.2fs", ms/1000)
	return nil
}

// applyContentIcon turns HTML hex entities into quoted CSS escapes.
func applyContentIcon(tok *token.Token) error {
	s, ok := tok.Value.(string)
	if !ok {
		return nil
	}
	tok.Value = iconEntity.ReplaceAllString(s, `'\$1'`)
	return nil
}

// applySizeRem rewrites a size as rem using its numeric prefix.
func applySizeRem(tok *token.Token) error {
	n, ok := numericValue(tok.Value)
	if !ok {
		return fmt.Errorf("%w: %s has value %v", ErrInvalidSize, tok.DotPath(), tok.Value)
	}
	tok.Value = formatNumber(n) + "rem"
	return nil
}

// applyColorCSS writes opaque colors as lowercase hex and translucent ones
// as rgba() with the alpha rounded to two decimals.
func applyColorCSS(tok *token.Token) error {
	c, ok := parseColor(tok.Value)
	if !ok {
		return nil
	}
	if c.A >= 1 {
		tok.Value = hex(c)
		return nil
	}
	r, g, b, _ := c.RGBA255()
	alpha := math.Round(c.A*100) / 100
	tok.Value = fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(alpha))
	return nil
}

// applyColorHex writes colors as lowercase hex, dropping alpha.
func applyColorHex(tok *token.Token) error {
	c, ok := parseColor(tok.Value)
	if !ok {
		return nil
	}
	tok.Value = hex(c)
	return nil
}

func parseColor(v any) (csscolorparser.Color, bool) {
	s, ok := v.(string)
	if !ok {
		return csscolorparser.Color{}, false
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return csscolorparser.Color{}, false
	}
	return c, true
}

func hex(c csscolorparser.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
