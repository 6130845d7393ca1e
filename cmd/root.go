/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenbuild.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenbuild/cmd/build"
	"bennypowers.dev/tokenbuild/cmd/figma"
	"bennypowers.dev/tokenbuild/cmd/list"
	"bennypowers.dev/tokenbuild/cmd/validate"
	"bennypowers.dev/tokenbuild/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokenbuild",
	Short: "Build design tokens for Figma and CSS",
	Long: `tokenbuild turns design token JSON files into a Tokens Studio for Figma
document and into CSS custom properties, flat JSON and ES module bundles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root directory (env TOKENBUILD_ROOT)")

	viper.SetEnvPrefix("TOKENBUILD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(figma.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
