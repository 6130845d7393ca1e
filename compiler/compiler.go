/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compiler builds platform outputs from a token configuration:
// load sources, transform, resolve references, filter, format and write.
package compiler

import (
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenbuild/config"
	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/formatter/css"
	"bennypowers.dev/tokenbuild/formatter/flatjson"
	"bennypowers.dev/tokenbuild/formatter/js"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/logger"
	"bennypowers.dev/tokenbuild/load"
	"bennypowers.dev/tokenbuild/resolver"
	"bennypowers.dev/tokenbuild/token"
	"bennypowers.dev/tokenbuild/transform"
)

var (
	// ErrUnknownFormat is returned when a file names an unregistered format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownTransform is returned when a platform names an unregistered transform.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownTransformGroup is returned when a platform names an unregistered transform group.
	ErrUnknownTransformGroup = errors.New("unknown transform group")
)

// Format names.
const (
	FormatCSSVariables           = "css/variables"
	FormatCSSVariablesWithHeader = "css/variables-with-header"
	FormatJSONFlat               = "json/flat"
	FormatJavaScriptES6          = "javascript/es6"
)

// Engine compiles token configurations. The zero value is not usable; use New.
type Engine struct {
	fs         fs.FileSystem
	root       string
	transforms map[string]transform.Transform
	groups     map[string][]string
	formats    map[string]formatter.Formatter
}

// New creates an Engine reading and writing through filesystem, with paths
// relative to root. Standard transforms, groups and formats are registered.
func New(filesystem fs.FileSystem, root string) *Engine {
	e := &Engine{
		fs:         filesystem,
		root:       root,
		transforms: make(map[string]transform.Transform),
		groups:     make(map[string][]string),
		formats:    make(map[string]formatter.Formatter),
	}
	for _, t := range transform.Standard() {
		e.RegisterTransform(t)
	}
	for name, members := range transform.StandardGroups() {
		e.RegisterTransformGroup(name, members)
	}
	e.RegisterFormat(FormatCSSVariables, css.NewVariables())
	e.RegisterFormat(FormatJSONFlat, flatjson.New())
	e.RegisterFormat(FormatJavaScriptES6, js.New())
	return e
}

// RegisterTransform adds or replaces a transform.
func (e *Engine) RegisterTransform(t transform.Transform) {
	e.transforms[t.Name] = t
}

// RegisterTransformGroup adds or replaces a named list of transforms.
func (e *Engine) RegisterTransformGroup(name string, transforms []string) {
	e.groups[name] = transforms
}

// RegisterFormat adds or replaces a format.
func (e *Engine) RegisterFormat(name string, f formatter.Formatter) {
	e.formats[name] = f
}

// Compile registers the name transform as name/cti/kebab-custom, the
// custom/css transform group and f as css/variables-with-header, points the
// css platform at them, then builds every platform. cfg is not modified.
func (e *Engine) Compile(cfg *config.Config, names transform.NameFunc, f formatter.Formatter) ([]string, error) {
	e.RegisterTransform(transform.Named(transform.NameKebabCustom, names))
	e.RegisterTransformGroup(transform.GroupCustomCSS, transform.CustomCSSGroup())
	e.RegisterFormat(FormatCSSVariablesWithHeader, f)

	cfg = cfg.Clone()
	if p, ok := cfg.Platforms["css"]; ok {
		p.TransformGroup = transform.GroupCustomCSS
		p.Transforms = nil
		for i := range p.Files {
			p.Files[i].Format = FormatCSSVariablesWithHeader
		}
	}

	return e.BuildAllPlatforms(cfg)
}

// BuildAllPlatforms builds every platform in name order and returns the
// paths of the written files.
func (e *Engine) BuildAllPlatforms(cfg *config.Config) ([]string, error) {
	dict, err := e.load(cfg)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range cfg.PlatformNames() {
		files, err := e.buildPlatform(name, cfg.Platforms[name], dict)
		if err != nil {
			return written, err
		}
		written = append(written, files...)
	}
	return written, nil
}

// BuildPlatform builds a single platform.
func (e *Engine) BuildPlatform(cfg *config.Config, name string) ([]string, error) {
	platform, ok := cfg.Platforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q", name)
	}
	dict, err := e.load(cfg)
	if err != nil {
		return nil, err
	}
	return e.buildPlatform(name, platform, dict)
}

// Dictionary returns the tokens of a platform after transforms and
// reference resolution, in document order.
func (e *Engine) Dictionary(cfg *config.Config, name string) ([]*token.Token, error) {
	platform, ok := cfg.Platforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q", name)
	}
	dict, err := e.load(cfg)
	if err != nil {
		return nil, err
	}
	return e.compilePlatform(name, platform, dict)
}

func (e *Engine) load(cfg *config.Config) (*load.Dictionary, error) {
	return load.Load(cfg, load.Options{Root: e.root, FS: e.fs})
}

func (e *Engine) buildPlatform(name string, platform *config.Platform, dict *load.Dictionary) ([]string, error) {
	tokens, err := e.compilePlatform(name, platform, dict)
	if err != nil {
		return nil, err
	}

	logger.Info("\n%s", name)

	written := make([]string, 0, len(platform.Files))
	for _, file := range platform.Files {
		path, err := e.writeFile(platform, file, tokens)
		if err != nil {
			return written, fmt.Errorf("platform %s: %w", name, err)
		}
		logger.Success("✔︎ %s", filepath.ToSlash(platform.BuildPath+file.Destination))
		written = append(written, path)
	}
	return written, nil
}

func (e *Engine) compilePlatform(name string, platform *config.Platform, dict *load.Dictionary) ([]*token.Token, error) {
	transforms, err := e.platformTransforms(platform)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", name, err)
	}

	tokens := make([]*token.Token, len(dict.Tokens))
	for i, tok := range dict.Tokens {
		tokens[i] = tok.Clone()
		if err := applyTransforms(tokens[i], transforms); err != nil {
			return nil, fmt.Errorf("platform %s: %w", name, err)
		}
	}

	if err := resolver.ResolveAliases(tokens); err != nil {
		return nil, fmt.Errorf("platform %s: %w", name, err)
	}
	return tokens, nil
}

func (e *Engine) platformTransforms(platform *config.Platform) ([]transform.Transform, error) {
	names := platform.Transforms
	if len(names) == 0 {
		group, ok := e.groups[platform.TransformGroup]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransformGroup, platform.TransformGroup)
		}
		names = group
	}

	transforms := make([]transform.Transform, 0, len(names))
	for _, name := range names {
		t, ok := e.transforms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// applyTransforms runs transforms in order. Value transforms skip tokens
// that reference other tokens; those take the referenced value once
// resolved.
func applyTransforms(tok *token.Token, transforms []transform.Transform) error {
	hasRefs := resolver.HasReferences(tok.Value)
	for _, t := range transforms {
		if t.Kind == transform.KindValue && hasRefs {
			continue
		}
		if !t.Matches(tok) {
			continue
		}
		if err := t.Apply(tok); err != nil {
			return fmt.Errorf("transform %s: %w", t.Name, err)
		}
	}
	return nil
}

func (e *Engine) writeFile(platform *config.Platform, file config.File, tokens []*token.Token) (string, error) {
	f, ok := e.formats[file.Format]
	if !ok {
		return "", fmt.Errorf("%w: %q for %s", ErrUnknownFormat, file.Format, file.Destination)
	}

	var selected []*token.Token
	for _, tok := range tokens {
		if file.Filter.Matches(tok) {
			selected = append(selected, tok)
		}
	}

	content, err := f.Format(selected, formatter.Options{
		Destination:    file.Destination,
		FilterCategory: file.Filter.Category(),
		ShowFileHeader: file.Options.FileHeader(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to format %s: %w", file.Destination, err)
	}

	path := filepath.Join(e.root, platform.BuildPath+file.Destination)
	if err := e.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := e.fs.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
