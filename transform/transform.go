/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides named token transforms, transform groups and
// the shadow value serializer.
package transform

import (
	"maps"
	"slices"

	"bennypowers.dev/bruecke/token"
)

// Type says which part of a token a transform rewrites.
type Type string

const (
	// TypeValue transforms replace Token.Value.
	TypeValue Type = "value"

	// TypeName transforms replace Token.Name.
	TypeName Type = "name"

	// TypeAttribute transforms add to Token.Attributes.
	TypeAttribute Type = "attribute"
)

// Options are platform settings passed to every transform.
type Options struct {
	// Prefix is prepended to names by name transforms.
	Prefix string
}

// Transform is a named, typed token rewrite.
type Transform interface {
	// Name is the registration name (e.g., "name/cti/kebab").
	Name() string

	// Type is the part of the token the transform rewrites.
	Type() Type

	// Matches reports whether the transform applies to t.
	Matches(t *token.Token) bool

	// Apply rewrites t in place.
	Apply(t *token.Token, opts Options)
}

// Matcher selects the tokens a transform applies to. A nil Matcher matches every token.
type Matcher func(t *token.Token) bool

// MatchType matches tokens whose type is one of types.
func MatchType(types ...string) Matcher {
	return func(t *token.Token) bool {
		return slices.Contains(types, t.Type)
	}
}

type transform struct {
	name    string
	typ     Type
	matcher Matcher
	apply   func(t *token.Token, opts Options)
}

func (tr *transform) Name() string { return tr.name }
func (tr *transform) Type() Type { return tr.typ }

func (tr *transform) Matches(t *token.Token) bool {
	return tr.matcher == nil || tr.matcher(t)
}

func (tr *transform) Apply(t *token.Token, opts Options) {
	tr.apply(t, opts)
}

// ValueTransform creates a transform whose result becomes the token's value.
func ValueTransform(name string, matcher Matcher, fn func(t *token.Token) string) Transform {
	return &transform{
		name:    name,
		typ:     TypeValue,
		matcher: matcher,
		apply: func(t *token.Token, _ Options) {
			t.Value = token.String(fn(t))
		},
	}
}

// NameTransform creates a transform whose result becomes the token's name.
func NameTransform(name string, matcher Matcher, fn func(t *token.Token, opts Options) string) Transform {
	return &transform{
		name:    name,
		typ:     TypeName,
		matcher: matcher,
		apply: func(t *token.Token, opts Options) {
			t.Name = fn(t, opts)
		},
	}
}

// AttributeTransform creates a transform whose result is merged into the token's attributes.
func AttributeTransform(name string, matcher Matcher, fn func(t *token.Token) map[string]string) Transform {
	return &transform{
		name:    name,
		typ:     TypeAttribute,
		matcher: matcher,
		apply: func(t *token.Token, _ Options) {
			attrs := fn(t)
			if len(attrs) == 0 {
				return
			}
			if t.Attributes == nil {
				t.Attributes = make(map[string]string, len(attrs))
			}
			maps.Copy(t.Attributes, attrs)
		},
	}
}
