/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokenbuild.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuild/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return Write(cmd.OutOrStdout(), format)
	},
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// Write prints the build information as one text line or as a JSON object.
func Write(w io.Writer, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "tokenbuild %s\n", version.Full())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(version.Info())
	default:
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}
}
