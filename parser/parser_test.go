/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuild/internal/mapfs"
	"bennypowers.dev/tokenbuild/parser"
)

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
  // brand palette
  "color": {
    "base": {
      "white": { "value": "#FFFFFF", "type": "color", "comment": "Page background" },
      "black": { "value": "#000000", "type": "color" }
    }
  },
  "spacing": {
    "4": { "value": 16, "type": "dimension" }
  }
}`)

	tree, err := parser.Parse(data)
	require.NoError(t, err)

	tokens := tree.Tokens()
	require.Len(t, tokens, 3)

	assert.Equal(t, "color.base.white", tokens[0].DotPath())
	assert.Equal(t, "#FFFFFF", tokens[0].Value)
	assert.Equal(t, "color", tokens[0].Type)
	assert.Equal(t, "Page background", tokens[0].Comment)

	assert.Equal(t, "color.base.black", tokens[1].DotPath())
	assert.Empty(t, tokens[1].Comment)

	assert.Equal(t, "spacing.4", tokens[2].DotPath())
	assert.Equal(t, float64(16), tokens[2].Value)
	assert.Equal(t, tokens[2].Value, tokens[2].RawValue)
}

func TestParse_DocumentOrder(t *testing.T) {
	tree, err := parser.Parse([]byte(`{"z": {"value": 1}, "a": {"value": 2}, "m": {"value": 3}}`))
	require.NoError(t, err)

	var keys []string
	for _, tok := range tree.Tokens() {
		keys = append(keys, tok.DotPath())
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestParse_IndexKeysFirst(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "json",
			src:  `{"s": {"0.5": {"value": 1}, "1": {"value": 2}, "px": {"value": 3}, "10": {"value": 4}, "2": {"value": 5}, "01": {"value": 6}}}`,
		},
		{
			name: "yaml",
			src:  "s:\n  \"0.5\": {value: 1}\n  \"1\": {value: 2}\n  px: {value: 3}\n  \"10\": {value: 4}\n  \"2\": {value: 5}\n  \"01\": {value: 6}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse([]byte(tt.src))
			require.NoError(t, err)

			var keys []string
			for _, tok := range tree.Tokens() {
				keys = append(keys, tok.DotPath())
			}
			assert.Equal(t, []string{"s.1", "s.2", "s.10", "s.0.5", "s.px", "s.01"}, keys)
		})
	}
}

func TestParse_SkipsNonObjectEntries(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
  "$schema": "https://example.com/schema.json",
  "color": {
    "note": "not a token",
    "red": { "value": "#ff0000" }
  }
}`))
	require.NoError(t, err)

	assert.Len(t, tree.Tokens(), 1)
	assert.Equal(t, [][]string{{"$schema"}, {"color", "note"}}, tree.Skipped)
}

func TestParse_CompositeValue(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
  "shadow": {
    "sm": { "value": { "x": 0, "y": 1, "blur": 2, "color": "#000" }, "type": "shadow" }
  }
}`))
	require.NoError(t, err)

	tokens := tree.Tokens()
	require.Len(t, tokens, 1)
	value, ok := tokens[0].Value.(map[string]any)
	require.True(t, ok, "composite value should be a plain map, got %T", tokens[0].Value)
	assert.Equal(t, float64(2), value["blur"])
	assert.Equal(t, "#000", value["color"])
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
color:
  base:
    white:
      value: "#FFFFFF"
      type: color
      comment: Page background
spacing:
  "4":
    value: 16
    type: dimension
`)

	tree, err := parser.Parse(data)
	require.NoError(t, err)

	tokens := tree.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, "color.base.white", tokens[0].DotPath())
	assert.Equal(t, "Page background", tokens[0].Comment)
	assert.Equal(t, "spacing.4", tokens[1].DotPath())
	assert.Equal(t, float64(16), tokens[1].Value)
}

func TestParse_YAMLRootMustBeObject(t *testing.T) {
	_, err := parser.Parse([]byte("- a\n- b\n"))
	assert.Error(t, err)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := parser.Parse([]byte(`{"color": `))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/colors.json", `{"color": {"red": {"value": "#ff0000"}}}`, 0644)

	tree, err := parser.ParseFile(mfs, "/tokens/colors.json")
	require.NoError(t, err)
	assert.Equal(t, "/tokens/colors.json", tree.FilePath)

	tokens := tree.Tokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, "/tokens/colors.json", tokens[0].FilePath)

	_, err = parser.ParseFile(mfs, "/tokens/missing.json")
	assert.Error(t, err)
}
