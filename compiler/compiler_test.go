/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compiler_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuild/build"
	"bennypowers.dev/tokenbuild/compiler"
	"bennypowers.dev/tokenbuild/config"
	"bennypowers.dev/tokenbuild/internal/logger"
	"bennypowers.dev/tokenbuild/internal/mapfs"
	"bennypowers.dev/tokenbuild/resolver"
	"bennypowers.dev/tokenbuild/testutil"
)

var _ build.Compiler = (*compiler.Engine)(nil)

func setup(t *testing.T) (*mapfs.MapFileSystem, *config.Config) {
	t.Helper()
	logger.SetOutput(io.Discard)

	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")
	cfg, err := config.Load(mfs, "/project", "")
	require.NoError(t, err)
	return mfs, cfg
}

func read(t *testing.T, mfs *mapfs.MapFileSystem, path string) string {
	t.Helper()
	data, err := mfs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCompile_WrittenFiles(t *testing.T) {
	mfs, cfg := setup(t)

	files, err := build.Run(compiler.New(mfs, "/project"), cfg, build.DefaultOptions())
	require.NoError(t, err)

	want := []string{
		"/project/tokens/colors.css",
		"/project/tokens/spacing.css",
		"/project/tokens/typography.css",
		"/project/tokens/border-radius.css",
		"/project/tokens/component-sizes.css",
		"/project/tokens/shadows.css",
		"/project/dist/tokens.js",
		"/project/dist/tokens.json",
	}
	assert.Equal(t, want, files)
	for _, f := range want {
		assert.True(t, mfs.Exists(f), "%s should exist", f)
	}

	// the configuration itself is left untouched
	assert.Equal(t, "css", cfg.Platforms["css"].TransformGroup)
	assert.Equal(t, compiler.FormatCSSVariables, cfg.Platforms["css"].Files[0].Format)
}

func TestCompile_Colors(t *testing.T) {
	mfs, cfg := setup(t)

	_, err := build.Run(compiler.New(mfs, "/project"), cfg, build.DefaultOptions())
	require.NoError(t, err)

	want := "/**\n" +
		" * DESIGN TOKENS - COLORS\n" +
		" * \n" +
		" * Color palette for the design system.\n" +
		" * Based on shadcn/ui zinc color scheme.\n" +
		" * \n" +
		" * Usage:\n" +
		" *   background: var(--color-primary);\n" +
		" */\n" +
		"\n" +
		":root {\n" +
		"  /* Page background */\n" +
		"  --color-background: #ffffff;\n" +
		"  --color-foreground: #09090b;\n" +
		"  /* Primary brand color */\n" +
		"  --color-primary-default: #18181b;\n" +
		"  --color-primary-foreground: #ffffff;\n" +
		"  --color-overlay: rgba(0, 0, 0, 0.8);\n" +
		"}\n"
	assert.Equal(t, want, read(t, mfs, "/project/tokens/colors.css"))
}

func TestCompile_CustomNames(t *testing.T) {
	mfs, cfg := setup(t)

	_, err := build.Run(compiler.New(mfs, "/project"), cfg, build.DefaultOptions())
	require.NoError(t, err)

	typography := read(t, mfs, "/project/tokens/typography.css")
	assert.Contains(t, typography, "  --font-sans: Geist, sans-serif;\n")
	assert.Contains(t, typography, "  --font-mono: Geist Mono, monospace;\n")
	assert.Contains(t, typography, "  --font-size-sm: 0.875rem;\n")
	assert.Contains(t, typography, "  --font-weight-medium: 500;\n")
	assert.Contains(t, typography, "  --line-height-tight: 1.25;\n")
	assert.Contains(t, typography, "@import url(")

	sizes := read(t, mfs, "/project/tokens/component-sizes.css")
	assert.Contains(t, sizes, "  /* Buttons and inputs */\n  --component-height-default: 2.5rem;\n")
	assert.Contains(t, sizes, "  --icon-size-sm: 1rem;\n")

	shadows := read(t, mfs, "/project/tokens/shadows.css")
	assert.Contains(t, shadows, "  --shadow-inner: inset 0 2px 4px 0 rgba(0, 0, 0, 0.05);\n")
	assert.Contains(t, shadows, "/* Dark Mode Adjustments */")

	spacing := read(t, mfs, "/project/tokens/spacing.css")
	assert.NotContains(t, spacing, "Dark Mode")
	assert.Contains(t, spacing, "  /* 4px */\n  --spacing-1: 0.25rem;\n")
}

func TestCompile_JSPlatforms(t *testing.T) {
	mfs, cfg := setup(t)

	_, err := build.Run(compiler.New(mfs, "/project"), cfg, build.DefaultOptions())
	require.NoError(t, err)

	tokensJSON := read(t, mfs, "/project/dist/tokens.json")
	assert.True(t, strings.HasPrefix(tokensJSON, "{\n  \"RadiusSm\": \"0.125rem\",\n"))
	assert.Contains(t, tokensJSON, "  \"ColorBaseBackground\": \"#ffffff\",\n")
	assert.Contains(t, tokensJSON, "  \"ColorPrimaryForeground\": \"#ffffff\",\n")
	assert.Contains(t, tokensJSON, "  \"ColorOverlay\": \"#000000\",\n")
	assert.Contains(t, tokensJSON, "  \"FontLineHeightTight\": \"1.25\"\n}\n")

	tokensJS := read(t, mfs, "/project/dist/tokens.js")
	assert.True(t, strings.HasPrefix(tokensJS, "export const RadiusSm = \"0.125rem\";\n"))
	assert.Contains(t, tokensJS, "export const RadiusMd = \"0.375rem\"; // Default radius\n")
	assert.Contains(t, tokensJS, "export const SizeComponentHeightSm = \"2.25rem\";\n")
	assert.NotContains(t, tokensJS, "Do not edit directly")
}

func TestBuildAllPlatforms_StandardGroups(t *testing.T) {
	mfs, cfg := setup(t)

	_, err := compiler.New(mfs, "/project").BuildAllPlatforms(cfg)
	require.NoError(t, err)

	colors := read(t, mfs, "/project/tokens/colors.css")
	assert.True(t, strings.HasPrefix(colors, "/**\n * Do not edit directly\n"))
	assert.Contains(t, colors, "  --color-base-background: #ffffff; /* Page background */\n")
	assert.Contains(t, colors, "  --color-primary-foreground: #ffffff;\n")

	typography := read(t, mfs, "/project/tokens/typography.css")
	assert.Contains(t, typography, "  --font-line-height-tight: 1.25;\n")
}

func TestDictionary(t *testing.T) {
	mfs, cfg := setup(t)

	tokens, err := compiler.New(mfs, "/project").Dictionary(cfg, "css")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	for _, tok := range tokens {
		assert.True(t, tok.IsResolved, "%s should be resolved", tok.DotPath())
		assert.False(t, resolver.HasReferences(tok.Value), "%s still has references", tok.DotPath())
		assert.NotEmpty(t, tok.Attributes.Category)
	}

	_, err = compiler.New(mfs, "/project").Dictionary(cfg, "android")
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		platform *config.Platform
		want     error
	}{
		{
			name:     "unknown group",
			platform: &config.Platform{TransformGroup: "scss", Files: []config.File{{Destination: "a.css", Format: "css/variables"}}},
			want:     compiler.ErrUnknownTransformGroup,
		},
		{
			name:     "unknown transform",
			platform: &config.Platform{Transforms: []string{"attribute/cti", "name/cti/snake"}},
			want:     compiler.ErrUnknownTransform,
		},
		{
			name:     "unknown format",
			platform: &config.Platform{TransformGroup: "css", Files: []config.File{{Destination: "a.scss", Format: "scss/variables"}}},
			want:     compiler.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs, cfg := setup(t)
			cfg.Platforms = map[string]*config.Platform{"broken": tt.platform}

			_, err := compiler.New(mfs, "/project").BuildAllPlatforms(cfg)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "platform broken")
		})
	}
}

func TestBuild_CircularReference(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := mapfs.New()
	mfs.AddFile("/p/tokens.json", `{
  "color": {
    "a": { "value": "{color.b.value}", "type": "color" },
    "b": { "value": "{color.a.value}", "type": "color" }
  }
}`, 0644)

	cfg := &config.Config{
		Source: config.Sources{"tokens.json"},
		Platforms: map[string]*config.Platform{
			"css": {TransformGroup: "css", BuildPath: "out/", Files: []config.File{{Destination: "colors.css", Format: "css/variables"}}},
		},
	}

	_, err := compiler.New(mfs, "/p").BuildAllPlatforms(cfg)
	require.ErrorIs(t, err, resolver.ErrCircularReference)
	assert.False(t, mfs.Exists("/p/out/colors.css"))
}

func TestBuild_Filters(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := mapfs.New()
	mfs.AddFile("/p/tokens.yaml", `
color:
  red:
    value: "#f00"
    type: color
spacing:
  sm:
    value: 0.5rem
    type: dimension
`, 0644)

	cfg := &config.Config{
		Source: config.Sources{"*.yaml"},
		Platforms: map[string]*config.Platform{
			"css": {TransformGroup: "css", BuildPath: "out/", Files: []config.File{
				{Destination: "by-type.css", Format: "css/variables", Filter: &config.Filter{Type: "dimension"}},
				{Destination: "all.css", Format: "css/variables"},
			}},
		},
	}

	_, err := compiler.New(mfs, "/p").BuildAllPlatforms(cfg)
	require.NoError(t, err)

	byType := read(t, mfs, "/p/out/by-type.css")
	assert.Contains(t, byType, "--spacing-sm: 0.5rem;")
	assert.NotContains(t, byType, "--color-red")

	all := read(t, mfs, "/p/out/all.css")
	assert.Contains(t, all, "--color-red: #ff0000;")
	assert.Contains(t, all, "--spacing-sm: 0.5rem;")
}

func TestCompile_IndexKeysFirst(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := mapfs.New()
	mfs.AddFile("/p/spacing.json", `{
  "spacing": {
    "0.5": { "value": "0.125rem", "type": "dimension" },
    "px": { "value": "1px", "type": "dimension" },
    "10": { "value": "2.5rem", "type": "dimension" },
    "2": { "value": "0.5rem", "type": "dimension" }
  }
}`, 0644)

	cfg := &config.Config{
		Source: config.Sources{"*.json"},
		Platforms: map[string]*config.Platform{
			"css": {TransformGroup: "css", BuildPath: "out/", Files: []config.File{
				{Destination: "spacing.css", Format: "css/variables"},
			}},
		},
	}

	_, err := build.Run(compiler.New(mfs, "/p"), cfg, build.DefaultOptions())
	require.NoError(t, err)

	css := read(t, mfs, "/p/out/spacing.css")
	var order []int
	for _, decl := range []string{"--spacing-2:", "--spacing-10:", "--spacing-0.5:", "--spacing-px:"} {
		i := strings.Index(css, decl)
		require.GreaterOrEqual(t, i, 0, "missing %s in\n%s", decl, css)
		order = append(order, i)
	}
	assert.IsIncreasing(t, order, "declarations out of order:\n%s", css)
}
