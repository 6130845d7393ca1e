/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the CSS build pipeline: a token compiler configured
// with the custom variable names and the documented CSS format.
package build

import (
	"bennypowers.dev/tokenbuild/config"
	"bennypowers.dev/tokenbuild/formatter"
	"bennypowers.dev/tokenbuild/formatter/css"
	"bennypowers.dev/tokenbuild/transform"
)

// Compiler turns a configuration into written files, using names for CSS
// variable names and f for CSS files.
type Compiler interface {
	Compile(cfg *config.Config, names transform.NameFunc, f formatter.Formatter) ([]string, error)
}

// Options holds the lookup tables used by the pipeline.
type Options struct {
	Mappings transform.NameMappings
	CSS      css.Options
}

// DefaultOptions returns the built-in name mappings and CSS tables.
func DefaultOptions() Options {
	return Options{
		Mappings: transform.DefaultNameMappings(),
		CSS:      css.DefaultOptions(),
	}
}

// Run compiles cfg and returns the written file paths.
func Run(c Compiler, cfg *config.Config, opts Options) ([]string, error) {
	names := transform.NewNameTransform(opts.Mappings)
	return c.Compile(cfg, names.Name, css.New(opts.CSS))
}
