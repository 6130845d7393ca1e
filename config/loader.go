/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tbfs "bennypowers.dev/tokenbuild/fs"
)

// DefaultFileName is the config file read when none is given.
const DefaultFileName = "config.json"

// Load reads the config at path, relative to rootDir unless absolute.
// JSON files may contain comments. Files ending in .yaml or .yml are read
// as YAML.
func Load(filesystem tbfs.FileSystem, rootDir, path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("error parsing config %s: %w", path, err)
		}
	}

	if cfg.Platforms == nil {
		cfg.Platforms = map[string]*Platform{}
	}
	return cfg, nil
}

// ExpandSources expands glob patterns in Source and returns absolute paths
// in lexical order, without duplicates. Plain paths are returned as given
// even if missing; reading them reports the error.
func (c *Config) ExpandSources(filesystem tbfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, pattern := range c.Source {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, fmt.Errorf("error expanding source %q: %w", pattern, err)
		}
		slices.Sort(expanded)
		for _, path := range expanded {
			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
		}
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem tbfs.FileSystem, rootDir, pattern string) ([]string, error) {
	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tbfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	if !filesystem.Exists(baseDir) {
		return nil, nil
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(filepath.ToSlash(relPattern), filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
