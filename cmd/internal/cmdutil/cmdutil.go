/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmdutil holds helpers shared by the subcommands.
package cmdutil

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenbuild/config"
	"bennypowers.dev/tokenbuild/fs"
)

// Root returns the absolute project root from --root or TOKENBUILD_ROOT.
func Root() (string, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}
	return abs, nil
}

// AddConfigFlag registers --config on cmd.
func AddConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", config.DefaultFileName, "Compiler config file (env TOKENBUILD_CONFIG)")
}

// LoadConfig binds the running command's --config flag to viper and loads
// the config it names.
func LoadConfig(cmd *cobra.Command, filesystem fs.FileSystem, root string) (*config.Config, error) {
	if err := viper.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		return nil, err
	}
	return config.Load(filesystem, root, viper.GetString("config"))
}
