/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokenbuild.
package build

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenbuild/build"
	"bennypowers.dev/tokenbuild/cmd/internal/cmdutil"
	"bennypowers.dev/tokenbuild/compiler"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/logger"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build CSS, JSON and JavaScript token files",
	Long: `Compile the token sources named by the config file into every configured
platform. The css platform uses the custom variable names and writes each
category file with its documentation header.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	cmdutil.AddConfigFlag(Cmd)
}

func run(cmd *cobra.Command, args []string) error {
	root, err := cmdutil.Root()
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := cmdutil.LoadConfig(cmd, filesystem, root)
	if err != nil {
		return err
	}

	logger.Info("Building tokens...")

	files, err := buildlib.Run(compiler.New(filesystem, root), cfg, buildlib.DefaultOptions())
	if err != nil {
		return err
	}

	logger.Success("\n✅ Tokens built successfully!")
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nGenerated files:")
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			rel = file
		}
		fmt.Fprintf(out, "  %s\n", filepath.ToSlash(rel))
	}
	return nil
}
