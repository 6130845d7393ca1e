/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma provides the figma command for tokenbuild.
package figma

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuild/cmd/internal/cmdutil"
	figmalib "bennypowers.dev/tokenbuild/figma"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/logger"
)

// Cmd is the figma cobra command.
var Cmd = &cobra.Command{
	Use:   "figma",
	Short: "Generate a Tokens Studio for Figma document",
	Long: `Read the six category files (colors, spacing, typography, border-radius,
shadows, component-sizes) and write one Tokens Studio for Figma JSON document.

rem values in spacing and border radius are converted to pixels (1rem = 16px).`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("tokens-dir", "tokens-json", "Directory holding the category token files")
	Cmd.Flags().StringP("output", "o", figmalib.OutputFileName, "Output file")
}

func run(cmd *cobra.Command, args []string) error {
	tokensDir, _ := cmd.Flags().GetString("tokens-dir")
	output, _ := cmd.Flags().GetString("output")

	root, err := cmdutil.Root()
	if err != nil {
		return err
	}
	if !filepath.IsAbs(tokensDir) {
		tokensDir = filepath.Join(root, tokensDir)
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	err = figmalib.Generate(fs.NewOSFileSystem(), figmalib.Options{
		TokensDir:  tokensDir,
		Output:     output,
		Categories: figmalib.DefaultCategories(),
		Types:      figmalib.DefaultTypeMap(),
	})
	if err != nil {
		return err
	}

	logger.Success("✅ Figma tokens generated successfully!")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📁 Output: %s\n", output)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, `1. Install "Tokens Studio for Figma" plugin in Figma`)
	fmt.Fprintf(out, "2. Load %s into the plugin\n", filepath.Base(output))
	fmt.Fprintln(out, "3. Apply tokens to your Figma components")
	return nil
}
