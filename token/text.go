/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Text returns the natural textual representation of a node.
//
// Strings are returned verbatim and numbers in their shortest decimal form
// ("2", "0.5"). Sequences are comma-joined and mappings are rendered as
// compact JSON. An absent node yields the empty string.
func Text(n Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case String:
		return string(v)
	case Number:
		return FormatNumber(float64(v))
	case Bool:
		return strconv.FormatBool(bool(v))
	case Null:
		return "null"
	case Sequence:
		parts := make([]string, len(v))
		for i, el := range v {
			parts[i] = Text(el)
		}
		return strings.Join(parts, ",")
	case *Mapping:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// FormatNumber formats f without trailing zeros or exponent for ordinary
// magnitudes. Very large and very small magnitudes use exponent notation.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
