/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import (
	"strings"

	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/token"
)

// Variables writes a plain :root block with trailing token comments.
type Variables struct{}

// NewVariables creates a plain CSS variables formatter.
func NewVariables() *Variables {
	return &Variables{}
}

// Format converts tokens to a :root block.
func (v *Variables) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	if opts.ShowFileHeader {
		sb.WriteString(formatter.FileHeader(formatter.CommentBlock))
	}
	sb.WriteString(":root {\n")
	for _, tok := range tokens {
		sb.WriteString("  " + tok.CSSVariableName() + ": " + tok.StringValue() + ";")
		if tok.Comment != "" {
			sb.WriteString(" /* " + tok.Comment + " */")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}
