/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading the token dictionary
// named by a compiler configuration.
package load

import (
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenbuild/config"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/logger"
	"bennypowers.dev/tokenbuild/parser"
	"bennypowers.dev/tokenbuild/token"
)

// ErrNoSources is returned when the source globs match no files.
var ErrNoSources = errors.New("no token source files found")

// Options configures how tokens are loaded.
type Options struct {
	// Root is the directory source globs are relative to.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem
}

// Dictionary is the merged token set of every source file.
type Dictionary struct {
	// Tokens in document order, files in lexical order.
	Tokens []*token.Token

	// Files that were read.
	Files []string

	// Collisions lists dot paths defined by more than one file.
	Collisions []string
}

// Get returns the token at the given dot path.
func (d *Dictionary) Get(path string) (*token.Token, bool) {
	for _, tok := range d.Tokens {
		if tok.DotPath() == path {
			return tok, true
		}
	}
	return nil, false
}

// Load parses every source file of cfg into a single Dictionary.
// A token whose path was already defined replaces the earlier token in
// place and is logged as a collision.
//
// The loading process:
//  1. Expands source globs relative to Options.Root
//  2. Parses each file (JSON with comments, or YAML)
//  3. Merges tokens by dot path
func Load(cfg *config.Config, opts Options) (*Dictionary, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	files, err := cfg.ExpandSources(filesystem, root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoSources, cfg.Source)
	}

	dict := &Dictionary{Files: files}
	index := make(map[string]int)

	for _, file := range files {
		tree, err := parser.ParseFile(filesystem, file)
		if err != nil {
			return nil, err
		}
		for _, tok := range tree.Tokens() {
			key := tok.DotPath()
			if i, ok := index[key]; ok {
				logger.Warn("token collision: %s in %s overrides %s", key, tok.FilePath, dict.Tokens[i].FilePath)
				dict.Collisions = append(dict.Collisions, key)
				dict.Tokens[i] = tok
				continue
			}
			index[key] = len(dict.Tokens)
			dict.Tokens = append(dict.Tokens, tok)
		}
	}

	return dict, nil
}
