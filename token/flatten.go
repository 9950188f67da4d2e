/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Flatten extracts tokens from a normalized document in document order.
//
// Any mapping that owns a "value" key is a token and is not descended into.
// A group's "type" is inherited by descendants that declare none. Group
// "extensions" are metadata and never contain tokens.
func Flatten(doc *Mapping, filePath string) []*Token {
	var result []*Token
	flatten(doc, nil, "", filePath, &result)
	return result
}

func flatten(group *Mapping, path []string, inheritedType, filePath string, result *[]*Token) {
	currentType := inheritedType
	if t, ok := group.GetString(KeyType); ok {
		currentType = t
	}

	for key, child := range group.All() {
		childMap, ok := child.(*Mapping)
		if !ok || key == KeyExtensions {
			continue
		}
		childPath := slices.Concat(path, []string{key})

		value, isToken := childMap.Get(KeyValue)
		if !isToken {
			flatten(childMap, childPath, currentType, filePath, result)
			continue
		}

		t := &Token{
			Name:     joinPath(childPath),
			Value:    value,
			Original: value,
			Type:     currentType,
			Path:     childPath,
			FilePath: filePath,
		}
		if typ, ok := childMap.GetString(KeyType); ok {
			t.Type = typ
		}
		if desc, ok := childMap.GetString(KeyDescription); ok {
			t.Description = desc
		}
		if ext, ok := childMap.Get(KeyExtensions); ok {
			t.Extensions = ext
		}
		*result = append(*result, t)
	}
}
