/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize rewrites DTCG "$"-prefixed reserved keys to their bare form.
package normalize

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/bruecke/token"
)

// Prefix marks a reserved key in DTCG token files.
const Prefix = "$"

// ReservedKeys are the bare keys whose "$"-prefixed form is normalized.
var ReservedKeys = []string{
	token.KeyValue,
	token.KeyType,
	token.KeyDescription,
	token.KeyExtensions,
}

// ErrKeyCollision indicates that two keys of one mapping normalize to the same key.
var ErrKeyCollision = errors.New("normalized key collision")

// CollisionError reports where a collision happened in strict mode.
type CollisionError struct {
	// Path is the dot path of the mapping that holds both keys.
	Path string
	// Key is the normalized key both inputs map to.
	Key string
}

func (e *CollisionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %q at document root", ErrKeyCollision, e.Key)
	}
	return fmt.Sprintf("%s: %q at %s", ErrKeyCollision, e.Key, e.Path)
}

func (e *CollisionError) Unwrap() error {
	return ErrKeyCollision
}

// BareKey returns the normalized form of key: "$value" becomes "value",
// while keys outside the reserved set (e.g., "$custom") are returned unchanged.
func BareKey(key string) string {
	bare, ok := strings.CutPrefix(key, Prefix)
	if ok && slices.Contains(ReservedKeys, bare) {
		return bare
	}
	return key
}

// Keys returns a copy of n with every reserved "$"-prefixed key replaced by
// its bare form, at every depth including inside sequences. Scalars are
// returned unchanged and the input is never mutated.
//
// When two keys of one mapping normalize to the same key, the later one wins
// and the key keeps the position of the first.
func Keys(n token.Node) token.Node {
	out, _ := keys(n, nil, false)
	return out
}

// KeysStrict is like Keys but fails with a *CollisionError instead of
// letting the later key win.
func KeysStrict(n token.Node) (token.Node, error) {
	return keys(n, nil, true)
}

func keys(n token.Node, path []string, strict bool) (token.Node, error) {
	switch v := n.(type) {
	case token.Sequence:
		out := make(token.Sequence, len(v))
		for i, el := range v {
			norm, err := keys(el, path, strict)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case *token.Mapping:
		out := token.NewMapping()
		for k, val := range v.All() {
			bare := BareKey(k)
			if strict && out.Has(bare) {
				return nil, &CollisionError{Path: strings.Join(path, "."), Key: bare}
			}
			norm, err := keys(val, slices.Concat(path, []string{bare}), strict)
			if err != nil {
				return nil, err
			}
			out.Set(bare, norm)
		}
		return out, nil
	default:
		return n, nil
	}
}
