/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenbuild.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuild/cmd/internal/cmdutil"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/internal/logger"
	"bennypowers.dev/tokenbuild/parser"
	"bennypowers.dev/tokenbuild/token"
	"bennypowers.dev/tokenbuild/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Validate design token files for problems the build pipelines would pass
through silently: entries that are not tokens, missing or unknown types,
name collisions, unitless dimensions and broken references.

Without arguments, the source files of the config file are validated.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	cmdutil.AddConfigFlag(Cmd)
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	root, err := cmdutil.Root()
	if err != nil {
		return err
	}
	filesystem := fs.NewOSFileSystem()

	// Use config sources if no args provided
	files := args
	if len(files) == 0 {
		cfg, err := cmdutil.LoadConfig(cmd, filesystem, root)
		if err != nil {
			return err
		}
		files, err = cfg.ExpandSources(filesystem, root)
		if err != nil {
			return err
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	out := cmd.OutOrStdout()
	failures := 0
	warnings := 0
	var allTokens []*token.Token

	report := func(problems []validator.ValidationError) {
		for _, p := range problems {
			if p.Severity == validator.SeverityError {
				failures++
				logger.Error("%s", p.Error())
				continue
			}
			warnings++
			if !quiet {
				logger.Warn("%s", p.Error())
			}
		}
	}

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		tree, err := parser.ParseFile(filesystem, file)
		if err != nil {
			logger.Error("%v", err)
			failures++
			continue
		}

		report(validator.ValidateTree(tree, file))

		tokens := tree.Tokens()
		allTokens = append(allTokens, tokens...)
		if !quiet {
			fmt.Fprintf(out, "  %d tokens\n", len(tokens))
		}
	}

	report(validator.ValidateReferences(allTokens))

	if failures > 0 || (strict && warnings > 0) {
		return fmt.Errorf("validation failed: %d errors, %d warnings", failures, warnings)
	}

	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}
