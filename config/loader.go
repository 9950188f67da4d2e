/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	brfs "bennypowers.dev/bruecke/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "bruecke"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/bruecke.{yaml,yml,json,toml} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem brfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		if err := decode(ext, data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg.applyDefaults()
		return cfg, nil
	}

	return nil, nil
}

func decode(ext string, data []byte, cfg *Config) error {
	switch ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config extension %s", ext)
	}
}

// LoadOrDefault returns the config found under rootDir, or defaults.
// A config file that fails to decode is reported rather than ignored.
func LoadOrDefault(filesystem brfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

// ExpandFiles expands the Source patterns against rootDir. Files matched by
// several patterns are listed once, at their first match.
func (c *Config) ExpandFiles(filesystem brfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, pattern := range c.Source {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range expanded {
			if !slices.Contains(result, p) {
				result = append(result, p)
			}
		}
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem brfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}
	pattern = filepath.ToSlash(pattern)

	if !containsGlob(pattern) {
		// Not a glob; a missing file is reported when it is read.
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and matches the rest with doublestar.
func expandGlob(filesystem brfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = path.Dir(baseDir)
	}

	relPattern := relTo(baseDir, pattern)
	if !doublestar.ValidatePattern(relPattern) {
		return nil, fmt.Errorf("invalid source pattern %q", pattern)
	}

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip what cannot be read, including a missing base directory.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := relTo(baseDir, p)
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// relTo returns p relative to the slash-separated directory base.
func relTo(base, p string) string {
	if base == "." {
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, base), "/")
}
