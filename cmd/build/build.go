/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for bruecke.
package build

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/internal/cli"
	"bennypowers.dev/bruecke/internal/logger"
	"bennypowers.dev/bruecke/token"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build tokens with a transform group",
	Long: `Parse and merge token files, flatten them into tokens and apply a transform group.

The default group, tokensBruecke/shadow-css, serializes shadow values as CSS
box-shadow strings and names tokens in kebab case. Tokens are printed to stdout.

Examples:
  # Build the files named in .config/bruecke.yaml
  bruecke build

  # Build explicit files with a name prefix
  bruecke build --prefix ds tokens/*.json

  # List the shadow tokens as JSON
  bruecke build --type shadow --format json`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
	Cmd.Flags().String("type", "", "Only print tokens of this type")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	typeFilter, _ := cmd.Flags().GetString("type")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	filesystem := fs.NewOSFileSystem()
	settings, err := cli.Load(viper.GetViper(), filesystem)
	if err != nil {
		return err
	}

	files, err := settings.Files(filesystem, args)
	if err != nil {
		return err
	}

	logger.Info("Build started...")
	tokens, err := settings.Engine(filesystem).Build(cmd.Context(), files, settings.Config.TransformGroup)
	if err != nil {
		return err
	}

	tokens = filterTokens(tokens, typeFilter)
	out := cmd.OutOrStdout()
	if format == "json" {
		err = writeJSON(out, tokens)
	} else {
		err = writeTable(out, tokens)
	}
	if err != nil {
		return err
	}

	logger.Info("Build completed!")
	return nil
}

func filterTokens(tokens []*token.Token, typ string) []*token.Token {
	if typ == "" {
		return tokens
	}
	return slices.DeleteFunc(slices.Clone(tokens), func(t *token.Token) bool {
		return t.Type != typ
	})
}

func writeTable(w io.Writer, tokens []*token.Token) error {
	for _, tok := range tokens {
		typ := tok.Type
		if typ == "" {
			typ = "-"
		}
		if _, err := fmt.Fprintf(w, "%-40s %-12s %s\n", tok.Name, typ, oneLine(token.Text(tok.Value))); err != nil {
			return err
		}
	}
	return nil
}

// oneLine collapses whitespace so each token stays on one row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type tokenOutput struct {
	Name        string            `json:"name"`
	Value       token.Node        `json:"value"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	FilePath    string            `json:"filePath,omitempty"`
}

func writeJSON(w io.Writer, tokens []*token.Token) error {
	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Name:        tok.Name,
			Value:       tok.Value,
			Type:        tok.Type,
			Description: tok.Description,
			Attributes:  tok.Attributes,
			FilePath:    tok.FilePath,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
