/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for bruecke.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/internal/cli"
	"bennypowers.dev/bruecke/internal/logger"
	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/pipeline"
	"bennypowers.dev/bruecke/validator"
)

// ErrValidationFailed is returned when any file has errors.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Check token files for problems that survive normalization unnoticed:
reserved keys given both with and without "$", shadows without a color
and colors that are not valid CSS.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("fail-on-warnings", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	failOnWarnings, _ := cmd.Flags().GetBool("fail-on-warnings")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	settings, err := cli.Load(viper.GetViper(), filesystem)
	if err != nil {
		return err
	}

	files, err := settings.Files(filesystem, args)
	if err != nil {
		return err
	}

	engine := settings.Engine(filesystem)
	opts := options{quiet: quiet, failOnWarnings: failOnWarnings}
	failed := false
	for _, file := range files {
		ok := validateFile(cmd.OutOrStdout(), engine, filesystem, file, opts)
		failed = failed || !ok
	}

	if failed {
		return ErrValidationFailed
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "All files valid.")
	}
	return nil
}

type options struct {
	quiet          bool
	failOnWarnings bool
}

// validateFile reports the issues of one file and whether it passed.
func validateFile(out io.Writer, engine *pipeline.Engine, filesystem fs.FileSystem, file string, opts options) bool {
	if !opts.quiet {
		fmt.Fprintf(out, "Validating %s...\n", file)
	}

	p, err := engine.ParserFor(file)
	if err != nil {
		logger.Error("%v", err)
		return false
	}

	data, err := filesystem.ReadFile(file)
	if err != nil {
		logger.Error("reading %s: %v", file, err)
		return false
	}

	doc, err := p.Decode(data)
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		logger.Error("%v", &parser.ParseError{Path: file, Err: err})
		return false
	}

	issues := validator.Validate(doc, file)
	warnings := 0
	for _, issue := range issues {
		if issue.Severity == validator.SeverityError {
			logger.Error("%v", &issue)
			continue
		}
		warnings++
		if !opts.quiet {
			logger.Warn("%v", &issue)
		}
	}

	if !opts.quiet {
		fmt.Fprintf(out, "  %d issues\n", len(issues))
	}
	if validator.HasErrors(issues) {
		return false
	}
	return !opts.failOnWarnings || warnings == 0
}
