/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for bruecke.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/bruecke/cmd/build"
	"bennypowers.dev/bruecke/cmd/normalize"
	"bennypowers.dev/bruecke/cmd/validate"
	"bennypowers.dev/bruecke/cmd/version"
	"bennypowers.dev/bruecke/internal/cli"
	"bennypowers.dev/bruecke/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bruecke",
	Short: "Build design tokens exported by Tokens Bruecke",
	Long: `bruecke normalizes DTCG token files exported by the Tokens Bruecke Figma plugin
and turns them into flat, transformed design tokens.

Settings come from .config/bruecke.{yaml,yml,json,toml} under --root, and may be
overridden by flags or BRUECKE_* environment variables (e.g. BRUECKE_PREFIX).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(viper.GetBool(cli.KeyDebug))
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cli.AddFlags(rootCmd.PersistentFlags())
	cobra.CheckErr(cli.Bind(viper.GetViper(), rootCmd.PersistentFlags()))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(normalize.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
