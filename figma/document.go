/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"fmt"
	"path/filepath"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/orderedjson"
	"bennypowers.dev/tokenbuild/parser"
	"bennypowers.dev/tokenbuild/token"
)

// OutputFileName is the default name of the exported document.
const OutputFileName = "figma-tokens.json"

// Metadata is the "$metadata" entry of a Tokens Studio document.
type Metadata struct {
	TokenSetOrder []string `json:"tokenSetOrder"`
}

// Source pairs a category with its parsed tree.
type Source struct {
	Category Category
	Tree     *token.Tree
}

// Export builds the Tokens Studio document: an empty "$themes" list,
// "$metadata" with the token set order, then one flattened set per source.
func Export(sources []Source, flattener *Flattener) *orderedmap.OrderedMap {
	order := make([]string, 0, len(sources))
	for _, src := range sources {
		order = append(order, src.Category.Key)
	}

	doc := orderedmap.New()
	doc.Set("$themes", []any{})
	doc.Set("$metadata", Metadata{TokenSetOrder: order})
	for _, src := range sources {
		doc.Set(src.Category.Key, flattener.Flatten(src.Tree, src.Category))
	}
	return doc
}

// Marshal serializes a document with two-space indentation and without HTML
// escaping.
func Marshal(doc *orderedmap.OrderedMap) ([]byte, error) {
	data, err := orderedjson.MarshalIndent(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode figma tokens: %w", err)
	}
	return data, nil
}

// LoadSources parses the source file of every category from dir.
func LoadSources(filesystem fs.FileSystem, dir string, categories []Category) ([]Source, error) {
	sources := make([]Source, 0, len(categories))
	for _, cat := range categories {
		tree, err := parser.ParseFile(filesystem, filepath.Join(dir, cat.Source))
		if err != nil {
			return nil, fmt.Errorf("error loading %s tokens: %w", cat.Key, err)
		}
		sources = append(sources, Source{Category: cat, Tree: tree})
	}
	return sources, nil
}

// Options configures Generate.
type Options struct {
	// TokensDir holds the category source files.
	TokensDir string

	// Output is the path of the document to write.
	Output string

	// Categories defaults to DefaultCategories.
	Categories []Category

	// Types defaults to DefaultTypeMap.
	Types TypeMap
}

// Generate loads every category, exports the document and writes it.
func Generate(filesystem fs.FileSystem, opts Options) error {
	categories := opts.Categories
	if categories == nil {
		categories = DefaultCategories()
	}
	types := opts.Types
	if types == nil {
		types = DefaultTypeMap()
	}

	sources, err := LoadSources(filesystem, opts.TokensDir, categories)
	if err != nil {
		return err
	}

	data, err := Marshal(Export(sources, NewFlattener(types)))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.Output); dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", opts.Output, err)
		}
	}
	if err := filesystem.WriteFile(opts.Output, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", opts.Output, err)
	}
	return nil
}
