/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokenbuild/token"
)

func parseJSON(data []byte) (*token.Tree, error) {
	clean := bytes.TrimPrefix(jsonc.ToJSON(data), []byte("\xef\xbb\xbf"))

	root := orderedmap.New()
	if err := json.Unmarshal(clean, root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	tree := token.NewTree()
	tree.Root.Children = buildNodes(root, nil, tree)
	return tree, nil
}

// asOrderedMap unwraps nested objects, which the decoder may hand back by
// value or by pointer.
func asOrderedMap(v any) (*orderedmap.OrderedMap, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		return m, m != nil
	case orderedmap.OrderedMap:
		return &m, true
	default:
		return nil, false
	}
}

func buildNodes(m *orderedmap.OrderedMap, path []string, tree *token.Tree) []*token.Node {
	var nodes []*token.Node
	for _, key := range m.Keys() {
		raw, _ := m.Get(key)
		current := append(slices.Clip(path), key)

		child, ok := asOrderedMap(raw)
		if !ok {
			tree.Skipped = append(tree.Skipped, current)
			continue
		}

		if value, isToken := child.Get(ValueField); isToken {
			n := &token.Node{
				Key:     key,
				IsToken: true,
				Value:   plain(value),
			}
			if typ, ok := child.Get(TypeField); ok {
				n.Type, _ = typ.(string)
			}
			if comment, ok := child.Get(CommentField); ok {
				n.Comment, _ = comment.(string)
			}
			nodes = append(nodes, n)
			continue
		}

		nodes = append(nodes, &token.Node{
			Key:      key,
			Children: buildNodes(child, current, tree),
		})
	}
	orderNodes(nodes)
	return nodes
}

// plain converts ordered maps inside a token value to map[string]any so
// values can be handled without knowing about key order.
func plain(v any) any {
	if m, ok := asOrderedMap(v); ok {
		out := make(map[string]any, len(m.Keys()))
		for _, k := range m.Keys() {
			val, _ := m.Get(k)
			out[k] = plain(val)
		}
		return out
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, val := range s {
			out[i] = plain(val)
		}
		return out
	}
	return v
}
