/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuild/figma"
	"bennypowers.dev/tokenbuild/parser"
)

func TestFlattenValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		label string
		want  any
	}{
		{"spacing rem to px", "1rem", figma.LabelSpacing, "16"},
		{"border radius rem to px", "0.5rem", figma.LabelBorderRadius, "8"},
		{"fractional result", "0.125rem", figma.LabelSpacing, "2"},
		{"zero", "0rem", figma.LabelSpacing, "0"},
		{"negative", "-0.25rem", figma.LabelSpacing, "-4"},
		{"unitless number is scaled", "2", figma.LabelSpacing, "32"},
		{"padded value", " 1.5rem ", figma.LabelSpacing, "24"},
		{"px is left alone", "1px", figma.LabelSpacing, "1px"},
		{"keyword is left alone", "auto", figma.LabelBorderRadius, "auto"},
		{"only the first rem is removed", "1rem 2rem", figma.LabelSpacing, "1 2rem"},
		{"bare unit leaves an empty string", "rem", figma.LabelSpacing, ""},
		{"typography passes through", "1rem", figma.LabelTypography, "1rem"},
		{"sizing passes through", "2.5rem", figma.LabelSizing, "2.5rem"},
		{"color passes through", "#fff", figma.LabelColor, "#fff"},
		{"numbers pass through", 4.0, figma.LabelSpacing, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, figma.FlattenValue(tt.value, tt.label))
		})
	}
}

func TestConvertType(t *testing.T) {
	tests := []struct {
		typ   string
		label string
		want  string
	}{
		{"color", figma.LabelColor, "color"},
		{"dimension", figma.LabelSpacing, "sizing"},
		{"dimension", figma.LabelSizing, "sizing"},
		{"dimension", figma.LabelBorderRadius, "borderRadius"},
		{"fontFamily", figma.LabelTypography, "fontFamilies"},
		{"fontWeight", figma.LabelTypography, "fontWeights"},
		{"number", figma.LabelTypography, "lineHeights"},
		{"shadow", figma.LabelShadow, "boxShadow"},
		{"duration", figma.LabelTypography, "duration"},
		{"", figma.LabelColor, ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, figma.ConvertType(tt.typ, tt.label))
		})
	}
}

func TestFlatten(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
		"radius": {
			"md": { "value": "0.375rem", "type": "dimension", "comment": "Default" },
			"nested": {
				"lg": { "value": "0.5rem", "type": "dimension" }
			},
			"stray": "not a token"
		}
	}`))
	require.NoError(t, err)

	set := figma.Flatten(tree, figma.Category{Key: "radius", Label: figma.LabelBorderRadius})

	assert.Equal(t, []string{"radius-md", "radius-nested-lg"}, set.Keys())

	md, ok := set.Get("radius-md")
	require.True(t, ok)
	assert.Equal(t, figma.Token{Value: "6", Type: "borderRadius", Description: "Default"}, md)

	lg, ok := set.Get("radius-nested-lg")
	require.True(t, ok)
	assert.Equal(t, figma.Token{Value: "8", Type: "borderRadius"}, lg)
}

func TestFlatten_IndexKeysFirst(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
		"spacing": {
			"0.5": { "value": "0.125rem", "type": "dimension" },
			"1": { "value": "0.25rem", "type": "dimension" },
			"px": { "value": "1px", "type": "dimension" },
			"10": { "value": "2.5rem", "type": "dimension" },
			"2": { "value": "0.5rem", "type": "dimension" }
		}
	}`))
	require.NoError(t, err)

	set := figma.Flatten(tree, figma.Category{Key: "spacing", Label: figma.LabelSpacing})

	assert.Equal(t, []string{
		"spacing-1",
		"spacing-2",
		"spacing-10",
		"spacing-0.5",
		"spacing-px",
	}, set.Keys())
}

func TestFlatten_DuplicateNameKeepsFirstPosition(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
		"a": {
			"b": { "value": "first" },
			"c": { "value": "middle" }
		},
		"a-b": { "value": "second" }
	}`))
	require.NoError(t, err)

	set := figma.Flatten(tree, figma.Category{Key: "colors", Label: figma.LabelColor})

	assert.Equal(t, []string{"a-b", "a-c"}, set.Keys())
	got, _ := set.Get("a-b")
	assert.Equal(t, "second", got.(figma.Token).Value)
}

func TestFlatten_NullValueIsAToken(t *testing.T) {
	tree, err := parser.Parse([]byte(`{ "x": { "value": null, "type": "color" } }`))
	require.NoError(t, err)

	set := figma.Flatten(tree, figma.Category{Key: "colors", Label: figma.LabelColor})
	got, ok := set.Get("x")
	require.True(t, ok)
	assert.Nil(t, got.(figma.Token).Value)
}

func TestFlatten_Idempotent(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
		"spacing": {
			"1": { "value": "0.25rem", "type": "dimension" },
			"2": { "value": "0.5rem", "type": "dimension" }
		}
	}`))
	require.NoError(t, err)
	cat := figma.Category{Key: "spacing", Label: figma.LabelSpacing}

	first, err := figma.Marshal(figma.Flatten(tree, cat))
	require.NoError(t, err)
	second, err := figma.Marshal(figma.Flatten(tree, cat))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestFlatten_EveryTokenOnceWithAllowedType(t *testing.T) {
	tree, err := parser.Parse([]byte(`{
		"font": {
			"family": { "sans": { "value": "Geist", "type": "fontFamily" } },
			"weight": { "bold": { "value": "700", "type": "fontWeight" } },
			"lineHeight": { "tight": { "value": "1.25", "type": "number" } },
			"size": { "sm": { "value": "0.875rem", "type": "dimension" } }
		}
	}`))
	require.NoError(t, err)

	var want []string
	for _, tok := range tree.Tokens() {
		want = append(want, tok.Path[0]+"-"+tok.Path[1]+"-"+tok.Path[2])
	}

	set := figma.Flatten(tree, figma.Category{Key: "typography", Label: figma.LabelTypography})
	assert.Equal(t, want, set.Keys())

	for _, key := range set.Keys() {
		v, _ := set.Get(key)
		assert.True(t, slices.Contains(figma.TargetTypes, v.(figma.Token).Type), "unexpected type for %s", key)
	}
}
