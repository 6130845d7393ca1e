/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js provides ES module formatting for design tokens.
package js

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/token"
)

// Formatter outputs one exported const per token.
type Formatter struct{}

// New creates a new ES6 formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to `export const Name = value;` lines, with the
// token comment as a trailing line comment.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	if opts.ShowFileHeader {
		sb.WriteString(formatter.FileHeader(formatter.CommentBlock))
	}

	for _, tok := range tokens {
		value, err := formatter.MarshalValue(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", tok.Name, err)
		}
		sb.WriteString("export const " + tok.Name + " = " + value + ";")
		if tok.Comment != "" {
			sb.WriteString(" // " + tok.Comment)
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}
