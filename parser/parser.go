/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads token source files into ordered token trees.
package parser

import (
	"fmt"

	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/token"
)

// Field names that mark a token and its metadata.
const (
	ValueField   = "value"
	TypeField    = "type"
	CommentField = "comment"
)

// Parse parses JSON (comments allowed) or YAML token data.
func Parse(data []byte) (*token.Tree, error) {
	if isLikelyJSON(data) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

// ParseFile reads and parses a token file.
func ParseFile(filesystem fs.FileSystem, path string) (*token.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	tree.FilePath = path
	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}
