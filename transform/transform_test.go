/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/bruecke/token"
	"bennypowers.dev/bruecke/transform"
)

func newTokens() []*token.Token {
	return []*token.Token{
		{
			Name:  "shadow.card.raised",
			Path:  []string{"shadow", "card", "raised"},
			Type:  "shadow",
			Value: token.MustFromAny(map[string]any{"offsetY": 2.0, "blur": 4.0, "color": "#000"}),
		},
		{
			Name:  "color.brand.primary",
			Path:  []string{"color", "brand", "primary"},
			Type:  "color",
			Value: token.String("rgb(255, 0, 0)"),
		},
	}
}

func TestDefaultGroup_ShadowCSS(t *testing.T) {
	r := transform.NewDefaultRegistry()
	tokens := newTokens()

	err := r.ApplyGroup(transform.GroupShadowCSS, tokens, transform.Options{})
	require.NoError(t, err)

	assert.Equal(t, "shadow-card-raised", tokens[0].Name)
	assert.Equal(t, token.String("0 2 4 0 #000"), tokens[0].Value)
	assert.Equal(t, map[string]string{
		"category": "shadow",
		"type":     "card",
		"item":     "raised",
	}, tokens[0].Attributes)

	// Shadow transform only applies to shadow tokens.
	assert.Equal(t, "color-brand-primary", tokens[1].Name)
	assert.Equal(t, token.String("rgb(255, 0, 0)"), tokens[1].Value)
}

func TestApplyGroup_Prefix(t *testing.T) {
	r := transform.NewDefaultRegistry()
	tokens := newTokens()

	require.NoError(t, r.ApplyGroup(transform.GroupCSS, tokens, transform.Options{Prefix: "ds"}))

	assert.Equal(t, "ds-shadow-card-raised", tokens[0].Name)
	assert.Equal(t, "ds-color-brand-primary", tokens[1].Name)
}

func TestApplyGroup_Unknown(t *testing.T) {
	r := transform.NewDefaultRegistry()
	err := r.ApplyGroup("custom/css", newTokens(), transform.Options{})
	assert.True(t, errors.Is(err, transform.ErrUnknownGroup))
}

func TestRegisterGroup_UnknownMember(t *testing.T) {
	r := transform.NewRegistry()
	err := r.RegisterGroup("broken", "does/not-exist")
	assert.True(t, errors.Is(err, transform.ErrUnknownTransform))
	assert.Empty(t, r.GroupNames())
}

func TestRegistry_CustomTransformOrder(t *testing.T) {
	r := transform.NewRegistry()
	r.Register(transform.ValueTransform("value/upper", nil, func(t *token.Token) string {
		return token.Text(t.Value) + "!"
	}))
	r.Register(transform.ValueTransform("value/wrap", transform.MatchType("color"), func(t *token.Token) string {
		return "[" + token.Text(t.Value) + "]"
	}))
	require.NoError(t, r.RegisterGroup("custom", "value/upper", "value/wrap"))

	tokens := newTokens()
	require.NoError(t, r.ApplyGroup("custom", tokens, transform.Options{}))

	assert.Equal(t, token.String("[rgb(255, 0, 0)!]"), tokens[1].Value)

	tr, ok := r.Get("value/wrap")
	require.True(t, ok)
	assert.Equal(t, transform.TypeValue, tr.Type())
}

func TestDefaultGroupNames(t *testing.T) {
	r := transform.NewDefaultRegistry()
	assert.Equal(t, []string{"css", "scss", "tokensBruecke/shadow-css"}, r.GroupNames())
}

func TestNameCases(t *testing.T) {
	tests := []struct {
		input    string
		fn       func(string) string
		expected string
	}{
		{"color brand primary", transform.ToKebabCase, "color-brand-primary"},
		{"color brandPrimary", transform.ToKebabCase, "color-brand-primary"},
		{"size 100", transform.ToKebabCase, "size-100"},
		{"color brand primary", transform.ToCamelCase, "colorBrandPrimary"},
		{"color brand primary", transform.ToPascalCase, "ColorBrandPrimary"},
		{"color brand primary", transform.ToSnakeCase, "color_brand_primary"},
		{"color brand primary", transform.ToConstantCase, "COLOR_BRAND_PRIMARY"},
		{"", transform.ToCamelCase, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.fn(tt.input), tt.input)
	}
}

func TestColorTransforms(t *testing.T) {
	r := transform.NewDefaultRegistry()

	hex, ok := r.Get(transform.ColorHex)
	require.True(t, ok)

	tokens := []*token.Token{
		{Type: "color", Value: token.String("rgb(255, 0, 0)")},
		{Type: "color", Value: token.String("rgba(0, 0, 0, 0.5)")},
		{Type: "color", Value: token.MustFromAny(map[string]any{
			"colorSpace": "srgb",
			"components": []any{1.0, 1.0, 1.0},
		})},
		{Type: "color", Value: token.String("not-a-color")},
	}
	transform.Apply([]transform.Transform{hex}, tokens, transform.Options{})

	assert.Equal(t, token.String("#ff0000"), tokens[0].Value)
	assert.Equal(t, token.String("#00000080"), tokens[1].Value)
	assert.Equal(t, token.String("#ffffff"), tokens[2].Value)
	assert.Equal(t, token.String("not-a-color"), tokens[3].Value)
}

func TestStructuredColor_ToCSS(t *testing.T) {
	m := token.MustFromAny(map[string]any{
		"colorSpace": "oklch",
		"components": []any{0.7, 0.15, 200.0},
		"alpha":      0.5,
	}).(*token.Mapping)

	c, ok := transform.ParseStructuredColor(m)
	require.True(t, ok)
	assert.Equal(t, "oklch(0.7 0.15 200 / 0.5)", c.ToCSS())

	_, ok = transform.ParseStructuredColor(token.MustFromAny(map[string]any{
		"colorSpace": "cmyk",
		"components": []any{0.0},
	}).(*token.Mapping))
	assert.False(t, ok)
}
