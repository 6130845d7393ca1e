/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Node is one entry of a token tree. A node that carried a "value" field in
// the source is a token; anything else is a group.
type Node struct {
	Key      string
	IsToken  bool
	Value    any
	Type     string
	Comment  string
	Children []*Node
}

// Tree is a parsed token source file. Children keep source document order.
type Tree struct {
	// FilePath is the file the tree was parsed from, if any.
	FilePath string

	// Root holds the top-level entries.
	Root *Node

	// Skipped lists paths of non-object entries that were ignored.
	Skipped [][]string
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{Root: &Node{}}
}

// Walk visits every token depth-first in document order.
func (t *Tree) Walk(fn func(path []string, n *Node)) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root.Children, nil, fn)
}

func walk(nodes []*Node, path []string, fn func([]string, *Node)) {
	for _, n := range nodes {
		current := append(slices.Clip(path), n.Key)
		if n.IsToken {
			fn(current, n)
			continue
		}
		walk(n.Children, current, fn)
	}
}

// Tokens returns the tree's tokens in document order.
func (t *Tree) Tokens() []*Token {
	var tokens []*Token
	t.Walk(func(path []string, n *Node) {
		tokens = append(tokens, &Token{
			Path:     path,
			Value:    n.Value,
			RawValue: n.Value,
			Type:     n.Type,
			Comment:  n.Comment,
			FilePath: t.FilePath,
		})
	})
	return tokens
}
