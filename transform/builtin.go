/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"slices"
	"strings"

	"bennypowers.dev/bruecke/token"
)

// Built-in transform names.
const (
	ShadowCSS       = "tokensBruecke/shadow-css"
	AttributeCTI    = "attribute/cti"
	NameCTIKebab    = "name/cti/kebab"
	NameCTICamel    = "name/cti/camel"
	NameCTIPascal   = "name/cti/pascal"
	NameCTISnake    = "name/cti/snake"
	NameCTIConstant = "name/cti/constant"
	ColorCSS        = "color/css"
	ColorHex        = "color/hex"
)

// Built-in group names.
const (
	GroupShadowCSS = "tokensBruecke/shadow-css"
	GroupCSS       = "css"
	GroupSCSS      = "scss"
)

// ctiAttributes are the attribute names assigned to path segments, in order.
var ctiAttributes = []string{"category", "type", "item", "subitem", "state"}

// RegisterDefaults registers the built-in transforms and groups on r.
func RegisterDefaults(r *Registry) {
	r.Register(ValueTransform(ShadowCSS, MatchType("shadow"), func(t *token.Token) string {
		return SerializeShadowValue(t.Value)
	}))

	r.Register(AttributeTransform(AttributeCTI, nil, func(t *token.Token) map[string]string {
		attrs := make(map[string]string, len(ctiAttributes))
		for i, segment := range t.Path {
			if i >= len(ctiAttributes) {
				break
			}
			attrs[ctiAttributes[i]] = segment
		}
		return attrs
	}))

	r.Register(NameTransform(NameCTIKebab, nil, ctiName(ToKebabCase)))
	r.Register(NameTransform(NameCTICamel, nil, ctiName(ToCamelCase)))
	r.Register(NameTransform(NameCTIPascal, nil, ctiName(ToPascalCase)))
	r.Register(NameTransform(NameCTISnake, nil, ctiName(ToSnakeCase)))
	r.Register(NameTransform(NameCTIConstant, nil, ctiName(ToConstantCase)))

	r.Register(ValueTransform(ColorCSS, MatchType("color"), func(t *token.Token) string {
		return CSSColor(t.Value)
	}))
	r.Register(ValueTransform(ColorHex, MatchType("color"), func(t *token.Token) string {
		if hex, ok := HexColor(t.Value); ok {
			return hex
		}
		return token.Text(t.Value)
	}))

	// Members are registered above, so these cannot fail.
	_ = r.RegisterGroup(GroupShadowCSS, ShadowCSS, AttributeCTI, NameCTIKebab)
	_ = r.RegisterGroup(GroupCSS, AttributeCTI, NameCTIKebab, ColorCSS, ShadowCSS)
	_ = r.RegisterGroup(GroupSCSS, AttributeCTI, NameCTIKebab, ColorCSS, ShadowCSS)
}

// ctiName builds a name from the optional prefix and the token path.
func ctiName(caseFn func(string) string) func(t *token.Token, opts Options) string {
	return func(t *token.Token, opts Options) string {
		parts := t.Path
		if opts.Prefix != "" {
			parts = slices.Concat([]string{opts.Prefix}, t.Path)
		}
		return caseFn(strings.Join(parts, " "))
	}
}
