/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the token document model and flattened design tokens.
package token

import "strings"

// Reserved keys of a normalized token document.
const (
	KeyValue       = "value"
	KeyType        = "type"
	KeyDescription = "description"
	KeyExtensions  = "extensions"
)

// Token is a single design token flattened out of a normalized document.
type Token struct {
	// Name is the token's output identifier. It starts as the dot path and is
	// rewritten by name transforms (e.g., "color-primary").
	Name string `json:"name"`

	// Value is the token's current value. Value transforms replace it with a String.
	Value Node `json:"value"`

	// Original is the value as it appeared in the source document.
	Original Node `json:"-"`

	// Type is the token's own type, or the nearest type declared by an enclosing group.
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Extensions carries vendor metadata verbatim.
	Extensions Node `json:"extensions,omitempty"`

	// Attributes are filled by attribute transforms (e.g., category, type, item).
	Attributes map[string]string `json:"attributes,omitempty"`

	// Path is the key path to this token (e.g., ["color", "primary"]).
	Path []string `json:"path"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"filePath,omitempty"`
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return joinPath(t.Path)
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
