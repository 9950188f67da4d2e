/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/bruecke/token"
	"bennypowers.dev/bruecke/transform"
)

func TestSerializeShadow(t *testing.T) {
	tests := []struct {
		name     string
		shadow   transform.Shadow
		expected string
	}{
		{
			name:     "defaults",
			shadow:   transform.Shadow{Color: token.String("#000")},
			expected: "0 0 0 0 #000",
		},
		{
			name: "full",
			shadow: transform.Shadow{
				OffsetX: token.Number(2),
				OffsetY: token.Number(4),
				Blur:    token.Number(8),
				Spread:  token.Number(0),
				Color:   token.String("rgba(0,0,0,.2)"),
			},
			expected: "2 4 8 0 rgba(0,0,0,.2)",
		},
		{
			name: "null fields",
			shadow: transform.Shadow{
				OffsetX: token.Null{},
				Blur:    token.Null{},
				Color:   token.String("red"),
			},
			expected: "0 0 0 0 red",
		},
		{
			name: "dimension strings",
			shadow: transform.Shadow{
				OffsetX: token.String("2px"),
				OffsetY: token.String("-1px"),
				Blur:    token.String("0"),
				Color:   token.String("#00000033"),
			},
			expected: "2px -1px 0 0 #00000033",
		},
		{
			name: "empty string falls back to zero",
			shadow: transform.Shadow{
				OffsetX: token.String(""),
				Color:   token.String("#000"),
			},
			expected: "0 0 0 0 #000",
		},
		{
			name: "fractional and negative numbers",
			shadow: transform.Shadow{
				OffsetX: token.Number(-0.5),
				OffsetY: token.Number(1.25),
				Color:   token.String("#000"),
			},
			expected: "-0.5 1.25 0 0 #000",
		},
		{
			name: "boolean is kept",
			shadow: transform.Shadow{
				Spread: token.Bool(false),
				Color:  token.String("#000"),
			},
			expected: "0 0 0 false #000",
		},
		{
			name:     "missing color",
			shadow:   transform.Shadow{OffsetX: token.Number(1)},
			expected: "1 0 0 0 undefined",
		},
		{
			name:     "null color",
			shadow:   transform.Shadow{Color: token.Null{}},
			expected: "0 0 0 0 null",
		},
		{
			name: "structured dimension and color",
			shadow: transform.Shadow{
				OffsetX: token.MustFromAny(map[string]any{"value": 2.0, "unit": "px"}),
				Color: token.MustFromAny(map[string]any{
					"colorSpace": "srgb",
					"components": []any{0.0, 0.0, 0.0},
				}),
			},
			expected: "2px 0 0 0 #000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transform.SerializeShadow(tt.shadow))
		})
	}
}

func TestShadowFromNode(t *testing.T) {
	m := token.MustFromAny(map[string]any{
		"offsetX": 1.0,
		"blur":    3.0,
		"color":   "#fff",
		"inset":   true,
	}).(*token.Mapping)

	s := transform.ShadowFromNode(m)

	assert.Nil(t, s.OffsetY)
	assert.Nil(t, s.Spread)
	assert.Equal(t, "1 0 3 0 #fff", transform.SerializeShadow(s))
}

func TestSerializeShadowValue_Layers(t *testing.T) {
	value := token.MustFromAny([]any{
		map[string]any{"offsetY": 1.0, "blur": 2.0, "color": "#0000001a"},
		map[string]any{"offsetY": 4.0, "blur": 8.0, "color": "#00000033"},
	})

	assert.Equal(t, "0 1 2 0 #0000001a, 0 4 8 0 #00000033", transform.SerializeShadowValue(value))
}

func TestSerializeShadowValue_Reference(t *testing.T) {
	assert.Equal(t, "{shadow.base}", transform.SerializeShadowValue(token.String("{shadow.base}")))
}
