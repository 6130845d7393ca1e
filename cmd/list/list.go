/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenbuild.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuild/cmd/internal/cmdutil"
	"bennypowers.dev/tokenbuild/compiler"
	"bennypowers.dev/tokenbuild/fs"
	"bennypowers.dev/tokenbuild/resolver"
	"bennypowers.dev/tokenbuild/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List compiled tokens of a platform",
	Long:  `List the tokens of one platform after transforms and reference resolution, as a table or as JSON.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	cmdutil.AddConfigFlag(Cmd)
	Cmd.Flags().StringP("platform", "p", "css", "Platform to list")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("category", "", "Filter by category attribute")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// Row is one listed token.
type Row struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Type     string   `json:"type,omitempty"`
	Value    string   `json:"value"`
	Comment  string   `json:"comment,omitempty"`
	RefChain []string `json:"refChain,omitempty"`
	IsColor  bool     `json:"-"`
}

func run(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	typeFilter, _ := cmd.Flags().GetString("type")
	categoryFilter, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")

	root, err := cmdutil.Root()
	if err != nil {
		return err
	}
	filesystem := fs.NewOSFileSystem()
	cfg, err := cmdutil.LoadConfig(cmd, filesystem, root)
	if err != nil {
		return err
	}

	tokens, err := compiler.New(filesystem, root).Dictionary(cfg, platform)
	if err != nil {
		return err
	}

	rows := Rows(filterTokens(tokens, typeFilter, categoryFilter), tokens)

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table":
		Table(cmd.OutOrStdout(), rows)
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected table or json", format)
	}
}

// filterTokens returns the tokens matching every non-empty filter.
func filterTokens(tokens []*token.Token, typeFilter, categoryFilter string) []*token.Token {
	filtered := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typeFilter != "" && tok.Type != typeFilter {
			continue
		}
		if categoryFilter != "" && tok.Attributes.Category != categoryFilter {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// Rows converts tokens to display rows. all is used to follow references.
func Rows(tokens, all []*token.Token) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, Row{
			Name:     tok.Name,
			Path:     tok.DotPath(),
			Type:     tok.Type,
			Value:    tok.StringValue(),
			Comment:  tok.Comment,
			RefChain: resolver.Chain(tok, all),
			IsColor:  tok.Type == token.TypeColor,
		})
	}
	return rows
}

// ColumnWidths returns the widths of the name and type columns.
func ColumnWidths(rows []Row) (name, typ int) {
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table.
func Table(w io.Writer, rows []Row) {
	nameW, typeW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		refChain := ""
		if len(r.RefChain) > 0 {
			refChain = " → " + strings.Join(r.RefChain, " → ")
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, refChain)
	}
}
