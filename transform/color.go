/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/bruecke/token"
)

// AlphaThreshold is the value below which alpha is included in CSS output.
// Values >= 0.999 are treated as fully opaque.
const AlphaThreshold = 0.999

// ValidColorSpaces lists the color spaces of DTCG structured colors.
var ValidColorSpaces = map[string]bool{
	"srgb":         true,
	"display-p3":   true,
	"a98-rgb":      true,
	"prophoto-rgb": true,
	"rec2020":      true,
	"xyz-d50":      true,
	"xyz-d65":      true,
	"lab":          true,
	"lch":          true,
	"oklab":        true,
	"oklch":        true,
	"srgb-linear":  true,
	"hsl":          true,
	"hwb":          true,
}

// StructuredColor is a DTCG structured color value,
// e.g. {"colorSpace": "srgb", "components": [1, 0, 0], "alpha": 0.5}.
type StructuredColor struct {
	ColorSpace string
	// Components holds float64 values or the "none" keyword.
	Components []any
	Alpha      *float64
	Hex        string
}

// ParseStructuredColor reads a structured color mapping. It reports false when
// the mapping has no recognised color space or no components.
func ParseStructuredColor(m *token.Mapping) (StructuredColor, bool) {
	var c StructuredColor
	space, ok := m.GetString("colorSpace")
	if !ok || !ValidColorSpaces[space] {
		return c, false
	}
	c.ColorSpace = space

	comps, ok := m.Get("components")
	seq, isSeq := comps.(token.Sequence)
	if !ok || !isSeq {
		return c, false
	}
	for _, comp := range seq {
		switch v := comp.(type) {
		case token.Number:
			c.Components = append(c.Components, float64(v))
		case token.String:
			c.Components = append(c.Components, string(v))
		default:
			return c, false
		}
	}

	if alpha, ok := m.Get("alpha"); ok {
		if a, ok := alpha.(token.Number); ok {
			f := float64(a)
			c.Alpha = &f
		}
	}
	c.Hex, _ = m.GetString("hex")
	return c, true
}

// ToCSS returns the CSS representation of the color.
func (c StructuredColor) ToCSS() string {
	if c.Hex != "" {
		return c.Hex
	}

	if c.ColorSpace == "srgb" {
		if hex, ok := c.srgbHex(); ok {
			return hex
		}
	}

	var sb strings.Builder
	for i, comp := range c.Components {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch v := comp.(type) {
		case float64:
			sb.WriteString(fmt.Sprintf("%.4g", v))
		case string:
			sb.WriteString(v)
		}
	}
	compStr := sb.String()

	hasAlpha := c.Alpha != nil && *c.Alpha < AlphaThreshold

	switch c.ColorSpace {
	case "hsl", "hwb", "lab", "lch", "oklab", "oklch":
		if hasAlpha {
			return fmt.Sprintf("%s(%s / %.4g)", c.ColorSpace, compStr, *c.Alpha)
		}
		return fmt.Sprintf("%s(%s)", c.ColorSpace, compStr)
	default:
		if hasAlpha {
			return fmt.Sprintf("color(%s %s / %.4g)", c.ColorSpace, compStr, *c.Alpha)
		}
		return fmt.Sprintf("color(%s %s)", c.ColorSpace, compStr)
	}
}

// srgbHex converts sRGB components to hex. Colors with visible alpha or a
// "none" component cannot be expressed as 6-digit hex.
func (c StructuredColor) srgbHex() (string, bool) {
	if len(c.Components) != 3 {
		return "", false
	}
	if c.Alpha != nil && *c.Alpha < AlphaThreshold {
		return "", false
	}
	var rgb [3]float64
	for i, comp := range c.Components {
		f, ok := comp.(float64)
		if !ok {
			return "", false
		}
		rgb[i] = f
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped().Hex(), true
}

// ParseCSSColor parses a CSS color string.
func ParseCSSColor(s string) (csscolorparser.Color, error) {
	return csscolorparser.Parse(s)
}

// HexColor converts a color token value to hex. Opaque colors produce
// "#rrggbb"; translucent colors produce "#rrggbbaa".
func HexColor(n token.Node) (string, bool) {
	switch v := n.(type) {
	case token.String:
		parsed, err := ParseCSSColor(string(v))
		if err != nil {
			return "", false
		}
		if parsed.A < AlphaThreshold {
			return parsed.HexString(), true
		}
		return colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}.Clamped().Hex(), true
	case *token.Mapping:
		c, ok := ParseStructuredColor(v)
		if !ok || c.ColorSpace != "srgb" {
			return "", false
		}
		if c.Hex != "" {
			return c.Hex, true
		}
		return c.srgbHex()
	default:
		return "", false
	}
}

// CSSColor renders a color token value as CSS. Strings pass through unchanged.
func CSSColor(n token.Node) string {
	if m, ok := n.(*token.Mapping); ok {
		if c, ok := ParseStructuredColor(m); ok {
			return c.ToCSS()
		}
	}
	return token.Text(n)
}
