/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the token compiler configuration: source globs
// and the platforms to build.
package config

import (
	"encoding/json"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenbuild/token"
)

// Config represents the token compiler configuration.
type Config struct {
	// Source lists token files to load. Entries may be globs.
	Source Sources `yaml:"source" json:"source"`

	// Platforms maps a platform name to its build settings.
	Platforms map[string]*Platform `yaml:"platforms" json:"platforms"`
}

// Platform configures one build target.
type Platform struct {
	// TransformGroup names the transform group applied to every token.
	TransformGroup string `yaml:"transformGroup" json:"transformGroup"`

	// Transforms lists transforms to apply instead of a group.
	Transforms []string `yaml:"transforms,omitempty" json:"transforms,omitempty"`

	// BuildPath is prepended to every file destination.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Files are the outputs written for this platform.
	Files []File `yaml:"files" json:"files"`
}

// File configures one output file.
type File struct {
	Destination string      `yaml:"destination" json:"destination"`
	Format      string      `yaml:"format" json:"format"`
	Filter      *Filter     `yaml:"filter,omitempty" json:"filter,omitempty"`
	Options     FileOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// Filter selects the tokens written to a file. Every set field must match.
type Filter struct {
	// Attributes match token attributes by key ("category", "type", ...).
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`

	// Type matches the token type.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

// FileOptions are per-file formatter options.
type FileOptions struct {
	// ShowFileHeader toggles the "Do not edit directly" banner. Nil means true.
	ShowFileHeader *bool `yaml:"showFileHeader,omitempty" json:"showFileHeader,omitempty"`
}

// Sources is a list of token file paths or globs. A bare string is
// shorthand for a single entry.
type Sources []string

// UnmarshalYAML handles both string and list forms.
func (s *Sources) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Sources{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

// UnmarshalJSON handles both string and list forms.
func (s *Sources) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Sources{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source:    nil,
		Platforms: map[string]*Platform{},
	}
}

// PlatformNames returns the platform names in build order.
func (c *Config) PlatformNames() []string {
	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy that can be rewritten without touching c.
func (c *Config) Clone() *Config {
	out := &Config{
		Source:    slices.Clone(c.Source),
		Platforms: make(map[string]*Platform, len(c.Platforms)),
	}
	for name, p := range c.Platforms {
		cp := *p
		cp.Transforms = slices.Clone(p.Transforms)
		cp.Files = make([]File, len(p.Files))
		for i, f := range p.Files {
			if f.Filter != nil {
				filter := *f.Filter
				if f.Filter.Attributes != nil {
					filter.Attributes = make(map[string]string, len(f.Filter.Attributes))
					for k, v := range f.Filter.Attributes {
						filter.Attributes[k] = v
					}
				}
				f.Filter = &filter
			}
			cp.Files[i] = f
		}
		out.Platforms[name] = &cp
	}
	return out
}

// Matches reports whether tok passes the filter. A nil filter matches all.
func (f *Filter) Matches(tok *token.Token) bool {
	if f == nil {
		return true
	}
	if f.Type != "" && f.Type != tok.Type {
		return false
	}
	for key, want := range f.Attributes {
		got, ok := tok.Attributes.Get(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Category returns the category attribute the filter selects, if any.
func (f *Filter) Category() string {
	if f == nil {
		return ""
	}
	return f.Attributes["category"]
}

// FileHeader reports whether the file banner should be written.
func (o FileOptions) FileHeader() bool {
	return o.ShowFileHeader == nil || *o.ShowFileHeader
}
