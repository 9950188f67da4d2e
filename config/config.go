/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token build.
package config

import (
	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/transform"
)

// Config represents the build configuration.
type Config struct {
	// Source lists token files to load. Entries may be doublestar globs
	// such as "tokens/**/*.json".
	Source []string `yaml:"source" json:"source" toml:"source"`

	// TransformGroup names the transform group applied to every token.
	TransformGroup string `yaml:"transformGroup" json:"transformGroup" toml:"transformGroup"`

	// Prefix is prepended to token names by name transforms.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Strict fails a file when two of its keys normalize to the same key.
	Strict bool `yaml:"strict" json:"strict" toml:"strict"`

	// SkipInvalid logs malformed files and continues with the rest.
	SkipInvalid bool `yaml:"skipInvalid" json:"skipInvalid" toml:"skipInvalid"`
}

// DefaultSource is the source pattern used when none is configured.
const DefaultSource = "tokens/**/*.json"

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source:         []string{DefaultSource},
		TransformGroup: transform.GroupShadowCSS,
	}
}

// ParserOptions returns the parser options implied by the config.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{Strict: c.Strict}
}

// TransformOptions returns the transform options implied by the config.
func (c *Config) TransformOptions() transform.Options {
	return transform.Options{Prefix: c.Prefix}
}

// applyDefaults fills fields left empty by a config file.
func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Source) == 0 {
		c.Source = def.Source
	}
	if c.TransformGroup == "" {
		c.TransformGroup = def.TransformGroup
	}
}
