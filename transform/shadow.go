/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"

	"bennypowers.dev/bruecke/token"
)

// Shadow is one shadow effect as found in a shadow token's value.
// A nil field means the key was absent.
type Shadow struct {
	OffsetX token.Node
	OffsetY token.Node
	Blur    token.Node
	Spread  token.Node
	Color   token.Node
}

// ShadowFromNode reads a shadow value mapping. Unknown keys are ignored.
func ShadowFromNode(m *token.Mapping) Shadow {
	var s Shadow
	s.OffsetX, _ = m.Get("offsetX")
	s.OffsetY, _ = m.Get("offsetY")
	s.Blur, _ = m.Get("blur")
	s.Spread, _ = m.Get("spread")
	s.Color, _ = m.Get("color")
	return s
}

// SerializeShadow renders s as "<offsetX> <offsetY> <blur> <spread> <color>".
//
// Offsets, blur and spread fall back to "0" when absent, null, numeric zero
// or the empty string; any other value keeps its text, so "2px" stays "2px"
// and false stays "false". A missing color is rendered as "undefined".
func SerializeShadow(s Shadow) string {
	return strings.Join([]string{
		shadowLength(s.OffsetX),
		shadowLength(s.OffsetY),
		shadowLength(s.Blur),
		shadowLength(s.Spread),
		shadowColor(s.Color),
	}, " ")
}

// SerializeShadowValue renders a shadow token value. A sequence is treated as
// layered shadows and joined with ", ". Other nodes are returned as text.
func SerializeShadowValue(n token.Node) string {
	switch v := n.(type) {
	case *token.Mapping:
		return SerializeShadow(ShadowFromNode(v))
	case token.Sequence:
		layers := make([]string, len(v))
		for i, layer := range v {
			layers[i] = SerializeShadowValue(layer)
		}
		return strings.Join(layers, ", ")
	default:
		return token.Text(n)
	}
}

func shadowLength(n token.Node) string {
	switch v := n.(type) {
	case nil, token.Null:
		return "0"
	case token.Number:
		if v == 0 {
			return "0"
		}
	case token.String:
		if v == "" {
			return "0"
		}
	case *token.Mapping:
		if dim, ok := dimensionText(v); ok {
			return dim
		}
	}
	return token.Text(n)
}

// dimensionText renders a structured {value, unit} dimension.
func dimensionText(m *token.Mapping) (string, bool) {
	value, ok := m.Get(token.KeyValue)
	if !ok {
		return "", false
	}
	num, ok := value.(token.Number)
	if !ok {
		return "", false
	}
	unit, _ := m.GetString("unit")
	return token.FormatNumber(float64(num)) + unit, true
}

func shadowColor(n token.Node) string {
	switch v := n.(type) {
	case nil:
		return "undefined"
	case *token.Mapping:
		if c, ok := ParseStructuredColor(v); ok {
			return c.ToCSS()
		}
	}
	return token.Text(n)
}
