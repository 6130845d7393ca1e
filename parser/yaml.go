/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenbuild/token"
)

func parseYAML(data []byte) (*token.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	tree := token.NewTree()
	if len(doc.Content) == 0 {
		return tree, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML root must be an object")
	}

	nodes, err := buildYAMLNodes(root, nil, tree)
	if err != nil {
		return nil, err
	}
	tree.Root.Children = nodes
	return tree, nil
}

// mappingField returns the value node stored under key in a mapping node.
func mappingField(node *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}
	return nil, false
}

func buildYAMLNodes(node *yaml.Node, path []string, tree *token.Tree) ([]*token.Node, error) {
	var nodes []*token.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		child := node.Content[i+1]
		current := append(slices.Clip(path), key)

		if child.Kind == yaml.AliasNode {
			child = child.Alias
		}
		if child.Kind != yaml.MappingNode {
			tree.Skipped = append(tree.Skipped, current)
			continue
		}

		if valueNode, isToken := mappingField(child, ValueField); isToken {
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return nil, fmt.Errorf("failed to decode value at %v: %w", current, err)
			}
			n := &token.Node{
				Key:     key,
				IsToken: true,
				Value:   normalize(value),
			}
			if typ, ok := mappingField(child, TypeField); ok && typ.Kind == yaml.ScalarNode {
				n.Type = typ.Value
			}
			if comment, ok := mappingField(child, CommentField); ok && comment.Kind == yaml.ScalarNode {
				n.Comment = comment.Value
			}
			nodes = append(nodes, n)
			continue
		}

		children, err := buildYAMLNodes(child, current, tree)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &token.Node{Key: key, Children: children})
	}
	orderNodes(nodes)
	return nodes, nil
}

// normalize makes decoded YAML values look like decoded JSON values:
// string-keyed maps and float64 numbers.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return v
	}
}
