/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline drives registered parsers and transforms over token files.
//
// It stands in for a build engine: it parses explicitly named files,
// merges them into one document, flattens tokens and applies a transform
// group. It does not discover files, resolve references or write output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/bruecke/fs"
	"bennypowers.dev/bruecke/internal/logger"
	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/token"
	"bennypowers.dev/bruecke/transform"
)

// Sentinel errors for pipeline operations.
var (
	// ErrNoParser indicates that no registered parser matches a file.
	ErrNoParser = errors.New("no parser matches file")

	// ErrNotObject indicates a token file whose top-level value is not an object.
	ErrNotObject = errors.New("top-level value must be an object")
)

// Options configures an Engine.
type Options struct {
	// Parser configures the default parsers.
	Parser parser.Options

	// Transform is passed to every transform.
	Transform transform.Options

	// SkipInvalid logs files that fail to parse and continues with the rest.
	// When false the first failure aborts the build.
	SkipInvalid bool

	// Concurrency bounds how many files are parsed at once.
	// Zero means GOMAXPROCS.
	Concurrency int
}

// Engine holds parser and transform registrations.
type Engine struct {
	filesystem fs.FileSystem
	opts       Options
	transforms *transform.Registry

	mu      sync.RWMutex
	parsers []parser.Parser
}

// New creates an engine with the default parsers, transforms and groups registered.
func New(filesystem fs.FileSystem, opts Options) *Engine {
	return &Engine{
		filesystem: filesystem,
		opts:       opts,
		transforms: transform.NewDefaultRegistry(),
		parsers: []parser.Parser{
			parser.NewDefault(opts.Parser),
			parser.NewYAML(opts.Parser),
		},
	}
}

// RegisterParser adds p. Parsers registered later take precedence.
func (e *Engine) RegisterParser(p parser.Parser) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parsers = append([]parser.Parser{p}, e.parsers...)
}

// Transforms returns the engine's transform registry.
func (e *Engine) Transforms() *transform.Registry {
	return e.transforms
}

// ParserFor returns the parser that handles path.
func (e *Engine) ParserFor(path string) (parser.Parser, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.parsers {
		if p.Match(path) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoParser, path)
}

// ParseFile parses one file with the matching parser.
func (e *Engine) ParseFile(path string) (token.Node, error) {
	p, err := e.ParserFor(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsing %s with %s", path, p.Name())
	return parser.ParseFile(p, e.filesystem, path)
}

// Source is one parsed token file.
type Source struct {
	Path     string
	Document *token.Mapping
}

// ParseAll parses paths concurrently and returns the parsed files in
// argument order. Failed files are dropped when SkipInvalid is set.
func (e *Engine) ParseAll(ctx context.Context, paths []string) ([]Source, error) {
	results := make([]*Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	limit := e.opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := e.parseObject(path)
			if err != nil {
				if e.opts.SkipInvalid {
					logger.Warn("skipping %v", err)
					return nil
				}
				return err
			}
			results[i] = &Source{Path: path, Document: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(paths))
	for _, r := range results {
		if r != nil {
			sources = append(sources, *r)
		}
	}
	return sources, nil
}

func (e *Engine) parseObject(path string) (*token.Mapping, error) {
	doc, err := e.ParseFile(path)
	if err != nil {
		return nil, err
	}
	m, ok := doc.(*token.Mapping)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotObject)
	}
	return m, nil
}

// Load parses paths and deep-merges them in argument order.
// Values overwritten by a later file are logged as warnings.
func (e *Engine) Load(ctx context.Context, paths []string) (*token.Mapping, error) {
	sources, err := e.ParseAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	return merge(sources), nil
}

func merge(sources []Source) *token.Mapping {
	merged := token.NewMapping()
	for _, src := range sources {
		for _, p := range token.Merge(merged, src.Document) {
			logger.Warn("%s overrides %s", src.Path, p)
		}
	}
	return merged
}

// Build parses and merges paths, flattens the merged document into tokens
// and applies the named transform group. Each token's FilePath is the last
// file that defined it.
func (e *Engine) Build(ctx context.Context, paths []string, group string) ([]*token.Token, error) {
	// Fail on an unknown group before doing any parsing.
	if _, err := e.transforms.Group(group); err != nil {
		return nil, err
	}

	sources, err := e.ParseAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	origins := make(map[string]string)
	for _, src := range sources {
		for _, t := range token.Flatten(src.Document, src.Path) {
			origins[t.DotPath()] = src.Path
		}
	}

	tokens := token.Flatten(merge(sources), "")
	for _, t := range tokens {
		t.FilePath = origins[t.DotPath()]
	}

	if err := e.transforms.ApplyGroup(group, tokens, e.opts.Transform); err != nil {
		return nil, err
	}
	return tokens, nil
}
