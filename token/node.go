/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Node is one node of a parsed token document.
//
// The set of implementations is closed: *Mapping, Sequence, String, Number,
// Bool and Null. Callers dispatch with a type switch. A nil Node means the
// value is absent, which is distinct from an explicit Null.
type Node interface {
	isNode()
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// String is a string scalar.
type String string

// Number is a numeric scalar. Token files carry JSON numbers, so all numbers
// are held as float64.
type Number float64

// Bool is a boolean scalar.
type Bool bool

// Null is an explicit null scalar.
type Null struct{}

func (*Mapping) isNode() {}
func (Sequence) isNode() {}
func (String) isNode() {}
func (Number) isNode() {}
func (Bool) isNode() {}
func (Null) isNode() {}

// MarshalJSON encodes Null as JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// IsScalar reports whether n is a String, Number, Bool or Null.
func IsScalar(n Node) bool {
	switch n.(type) {
	case String, Number, Bool, Null:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Mapping:
		return v.Clone()
	case Sequence:
		out := make(Sequence, len(v))
		for i, el := range v {
			out[i] = Clone(el)
		}
		return out
	default:
		return n
	}
}

// Equal reports whether a and b are structurally equal, including mapping key order.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Mapping:
		y, ok := b.(*Mapping)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if !slices.Equal(x.Keys(), y.Keys()) {
			return false
		}
		for k, v := range x.All() {
			w, _ := y.Get(k)
			if !Equal(v, w) {
				return false
			}
		}
		return true
	case Sequence:
		y, ok := b.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// FromAny converts values produced by encoding/json or yaml.v3 into nodes.
// Go maps are unordered, so mapping keys are sorted.
func FromAny(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Node:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case []any:
		out := make(Sequence, len(x))
		for i, el := range x {
			n, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, n)
		}
		return m, nil
	case map[any]any:
		conv := make(map[string]any, len(x))
		for k, val := range x {
			conv[fmt.Sprintf("%v", k)] = val
		}
		return FromAny(conv)
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// MustFromAny is like FromAny but panics on unsupported values.
// It is intended for literals in tests and examples.
func MustFromAny(v any) Node {
	n, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return n
}
