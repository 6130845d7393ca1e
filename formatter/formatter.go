/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"bytes"
	"encoding/json"
	"strings"

	"bennypowers.dev/tokenbuild/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts compiled tokens to the file contents.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Func adapts a function to the Formatter interface.
type Func func(tokens []*token.Token, opts Options) ([]byte, error)

// Format calls f.
func (f Func) Format(tokens []*token.Token, opts Options) ([]byte, error) {
	return f(tokens, opts)
}

// Options describes the file being written.
type Options struct {
	// Destination is the file name relative to the platform build path.
	Destination string

	// FilterCategory is the category attribute the file's filter selects,
	// or empty.
	FilterCategory string

	// ShowFileHeader enables the generated-file banner.
	ShowFileHeader bool
}

// CommentStyle selects how the file banner is commented.
type CommentStyle int

const (
	// CommentBlock uses a /** */ block.
	CommentBlock CommentStyle = iota
	// CommentLine uses // lines.
	CommentLine
)

var headerLines = []string{
	"Do not edit directly",
	"Generated by tokenbuild",
}

// FileHeader returns the generated-file banner followed by a blank line.
func FileHeader(style CommentStyle) string {
	var sb strings.Builder
	switch style {
	case CommentLine:
		for _, line := range headerLines {
			sb.WriteString("// " + line + "\n")
		}
	default:
		sb.WriteString("/**\n")
		for _, line := range headerLines {
			sb.WriteString(" * " + line + "\n")
		}
		sb.WriteString(" */\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// MarshalValue encodes v as compact JSON without HTML escaping.
func MarshalValue(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
