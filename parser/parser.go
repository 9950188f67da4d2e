/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides token file parsing and named parser registrations.
package parser

import (
	"errors"
	"fmt"
	"regexp"

	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/normalize"
	"bennypowers.dev/bruecke/token"
)

// MetaKey is the top-level build metadata field removed before normalization.
const MetaKey = "$meta"

// Default parser registrations.
const (
	DefaultName    = "parser/tokensBruecke"
	DefaultPattern = `\.json$|\.tokens\.json$|\.tokens$`

	YAMLName    = "parser/tokensBruecke-yaml"
	YAMLPattern = `\.ya?ml$`
)

// Options configures a DocumentParser.
type Options struct {
	// Strict fails on normalized key collisions instead of letting the later key win.
	Strict bool

	// Format selects the decoder of parsers created with New.
	Format Format
}

// Parser is a named parser registration.
type Parser interface {
	// Name is the registration name.
	Name() string

	// Match reports whether the parser handles the file at path.
	Match(path string) bool

	// Parse parses file contents into a normalized token document.
	Parse(data []byte) (token.Node, error)

	// Decode parses file contents without removing "$meta" or normalizing keys.
	Decode(data []byte) (token.Node, error)
}

// DocumentParser parses DTCG-style token files in a single format.
type DocumentParser struct {
	name    string
	pattern *regexp.Regexp
	format  Format
	opts    Options
}

// New creates a parser registered as name for files matching pattern.
func New(name, pattern string, opts Options) (*DocumentParser, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("parser %s: invalid pattern: %w", name, err)
	}
	return &DocumentParser{name: name, pattern: re, format: opts.Format, opts: opts}, nil
}

// NewDefault creates the JSON parser for .json, .tokens.json and .tokens files.
// Opts.Format is ignored.
func NewDefault(opts Options) *DocumentParser {
	return &DocumentParser{name: DefaultName, pattern: regexp.MustCompile(DefaultPattern), format: FormatJSON, opts: opts}
}

// NewYAML creates the YAML parser for .yaml and .yml files.
// Opts.Format is ignored.
func NewYAML(opts Options) *DocumentParser {
	return &DocumentParser{name: YAMLName, pattern: regexp.MustCompile(YAMLPattern), format: FormatYAML, opts: opts}
}

// Name implements Parser.
func (p *DocumentParser) Name() string {
	return p.name
}

// Match implements Parser.
func (p *DocumentParser) Match(path string) bool {
	return p.pattern.MatchString(path)
}

// Format returns the format the parser decodes.
func (p *DocumentParser) Format() Format {
	return p.format
}

// Parse implements Parser.
func (p *DocumentParser) Parse(data []byte) (token.Node, error) {
	return parse(data, p.format, p.opts.Strict)
}

// Decode implements Parser.
func (p *DocumentParser) Decode(data []byte) (token.Node, error) {
	raw, err := Decode(data, p.format)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return raw, nil
}

// Parse decodes a JSON token file, drops the top-level "$meta" field and
// normalizes reserved keys. Malformed input yields a *ParseError.
func Parse(data []byte) (token.Node, error) {
	return parse(data, FormatJSON, false)
}

// ParseStrict is like Parse but reports normalized key collisions as a
// *ParseError wrapping normalize.ErrKeyCollision.
func ParseStrict(data []byte) (token.Node, error) {
	return parse(data, FormatJSON, true)
}

func parse(data []byte, format Format, strict bool) (token.Node, error) {
	raw, err := decodeWithoutMeta(data, format)
	if err != nil {
		return nil, err
	}
	if !strict {
		return normalize.Keys(raw), nil
	}
	doc, err := normalize.KeysStrict(raw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return doc, nil
}

func decodeWithoutMeta(data []byte, format Format) (token.Node, error) {
	raw, err := Decode(data, format)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if m, ok := raw.(*token.Mapping); ok {
		m.Delete(MetaKey)
	}
	return raw, nil
}

// ParseFile reads and parses the file at path with p.
// A *ParseError carries the file path.
func ParseFile(p Parser, filesystem fs.FileSystem, path string) (token.Node, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := p.Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{Path: path, Err: pe.Err}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}
