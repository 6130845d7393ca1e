/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tokenbuild CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Get returns the version string, preferring ldflags over module build info.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}

// Full returns the version with the commit when known.
func Full() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
	}
	return Get()
}

// Info returns build information as a map for JSON output.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"buildTime": BuildTime,
	}
}
