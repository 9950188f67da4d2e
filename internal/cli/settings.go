/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli shares configuration plumbing between bruecke commands.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/bruecke/config"
	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/pipeline"
)

// EnvPrefix is the prefix of environment variables that override flags,
// e.g. BRUECKE_TRANSFORM_GROUP.
const EnvPrefix = "BRUECKE"

// Setting keys shared by the persistent flags and the environment.
const (
	KeyRoot           = "root"
	KeyPrefix         = "prefix"
	KeyTransformGroup = "transform-group"
	KeyStrict         = "strict"
	KeySkipInvalid    = "skip-invalid"
	KeyDebug          = "debug"
)

// ErrNoFiles indicates that neither arguments nor config sources named a file.
var ErrNoFiles = errors.New("no files specified and no files found in config")

// AddFlags declares the persistent flags on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyRoot, ".", "Project root containing .config/bruecke.*")
	flags.String(KeyPrefix, "", "Prefix prepended to token names")
	flags.StringP(KeyTransformGroup, "t", "", "Transform group to apply")
	flags.Bool(KeyStrict, false, "Fail when two keys normalize to the same key")
	flags.Bool(KeySkipInvalid, false, "Log malformed files and continue")
	flags.Bool(KeyDebug, false, "Print debug output")
}

// Bind binds flags and BRUECKE_* environment variables into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// Settings is the resolved configuration of a command run.
type Settings struct {
	Root   string
	Config *config.Config
}

// Load reads the config file under the root setting and applies any flag
// or environment overrides on top of it.
func Load(v *viper.Viper, filesystem fs.FileSystem) (*Settings, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, err
	}

	if v.IsSet(KeyPrefix) {
		cfg.Prefix = v.GetString(KeyPrefix)
	}
	if v.IsSet(KeyTransformGroup) {
		if group := v.GetString(KeyTransformGroup); group != "" {
			cfg.TransformGroup = group
		}
	}
	if v.IsSet(KeyStrict) {
		cfg.Strict = v.GetBool(KeyStrict)
	}
	if v.IsSet(KeySkipInvalid) {
		cfg.SkipInvalid = v.GetBool(KeySkipInvalid)
	}

	return &Settings{Root: root, Config: cfg}, nil
}

// Files returns args when given, otherwise the config's expanded sources.
func (s *Settings) Files(filesystem fs.FileSystem, args []string) ([]string, error) {
	files := args
	if len(files) == 0 {
		expanded, err := s.Config.ExpandFiles(filesystem, s.Root)
		if err != nil {
			return nil, fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// Engine creates a pipeline engine configured from s.
func (s *Settings) Engine(filesystem fs.FileSystem) *pipeline.Engine {
	return pipeline.New(filesystem, pipeline.Options{
		Parser:      s.Config.ParserOptions(),
		Transform:   s.Config.TransformOptions(),
		SkipInvalid: s.Config.SkipInvalid,
	})
}
