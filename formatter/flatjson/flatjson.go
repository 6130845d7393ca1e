/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"github.com/keboola/go-utils/pkg/orderedmap"

	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/internal/orderedjson"
	"bennypowers.dev/tokenbuild/token"
)

// Formatter outputs flat name to value JSON, keeping token order.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to flat key-value JSON. JSON has no comments, so
// the file header option is ignored.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	result := orderedmap.New()
	for _, tok := range tokens {
		result.Set(tok.Name, tok.Value)
	}
	return orderedjson.MarshalIndent(result)
}
