/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize provides the normalize command for bruecke.
package normalize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/internal/cli"
	"bennypowers.dev/bruecke/token"
)

// Cmd is the normalize cobra command.
var Cmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Print token files with reserved keys normalized",
	Long: `Parse token files, rewrite "$value", "$type", "$description" and "$extensions"
to their bare form, merge the files in order and print the result as JSON.

Top-level "$meta" entries are dropped. Without arguments the config's source
patterns are used.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("compact", false, "Print JSON without indentation")
}

func run(cmd *cobra.Command, args []string) error {
	compact, _ := cmd.Flags().GetBool("compact")

	filesystem := fs.NewOSFileSystem()
	settings, err := cli.Load(viper.GetViper(), filesystem)
	if err != nil {
		return err
	}

	files, err := settings.Files(filesystem, args)
	if err != nil {
		return err
	}

	doc, err := settings.Engine(filesystem).Load(cmd.Context(), files)
	if err != nil {
		return err
	}

	return writeDocument(cmd.OutOrStdout(), doc, compact)
}

// writeDocument prints doc as JSON, keeping key order.
func writeDocument(w io.Writer, doc *token.Mapping, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
