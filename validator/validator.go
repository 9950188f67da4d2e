/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in decoded token documents before they are normalized.
package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/bruecke/normalize"
	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/token"
	"bennypowers.dev/bruecke/transform"
)

// Severity ranks an Issue.
type Severity int

const (
	// SeverityWarning marks output that is produced but probably not intended.
	SeverityWarning Severity = iota
	// SeverityError marks output that is known to be broken.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single validation finding.
type Issue struct {
	Severity Severity
	// FilePath is the path to the file containing the issue.
	FilePath string
	// Path is the dot path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *Issue) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// HasErrors reports whether any issue has SeverityError.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool {
		return i.Severity == SeverityError
	})
}

// Validate checks a decoded document that still carries its "$"-prefixed keys.
// It reports:
//   - mappings where a reserved key and its "$" form both appear
//   - shadow tokens whose layers lack a color
//   - color values that cannot be parsed as CSS colors
//
// A top-level "$meta" field is build metadata and is not checked.
func Validate(raw token.Node, filePath string) []Issue {
	if m, ok := raw.(*token.Mapping); ok && m.Has(parser.MetaKey) {
		m = m.Clone()
		m.Delete(parser.MetaKey)
		raw = m
	}
	v := &walker{filePath: filePath}
	v.walk(raw, nil, "")
	return v.issues
}

type walker struct {
	filePath string
	issues   []Issue
}

func (v *walker) add(sev Severity, path []string, msg, suggestion string) {
	v.issues = append(v.issues, Issue{
		Severity:   sev,
		FilePath:   v.filePath,
		Path:       strings.Join(path, "."),
		Message:    msg,
		Suggestion: suggestion,
	})
}

func (v *walker) walk(n token.Node, path []string, inheritedType string) {
	switch x := n.(type) {
	case token.Sequence:
		for _, el := range x {
			v.walk(el, path, inheritedType)
		}
	case *token.Mapping:
		v.checkCollisions(x, path)

		typ := inheritedType
		if s, ok := reserved(x, token.KeyType).(token.String); ok {
			typ = string(s)
		}

		if value := reserved(x, token.KeyValue); value != nil {
			v.checkValue(value, path, typ)
			return
		}

		for k, child := range x.All() {
			if normalize.BareKey(k) != k || slices.Contains(normalize.ReservedKeys, k) {
				continue
			}
			v.walk(child, slices.Concat(path, []string{k}), typ)
		}
	}
}

func (v *walker) checkCollisions(m *token.Mapping, path []string) {
	seen := make(map[string]string, m.Len())
	for k := range m.All() {
		bare := normalize.BareKey(k)
		if first, ok := seen[bare]; ok {
			v.add(SeverityWarning, path,
				fmt.Sprintf("%q and %q both normalize to %q", first, k, bare),
				fmt.Sprintf("remove one of them; %q wins", k))
			continue
		}
		seen[bare] = k
	}
}

func (v *walker) checkValue(value token.Node, path []string, typ string) {
	switch typ {
	case "shadow":
		v.checkShadow(value, path)
	case "color":
		v.checkColor(value, path)
	}
}

func (v *walker) checkShadow(value token.Node, path []string) {
	switch x := value.(type) {
	case token.Sequence:
		for i, layer := range x {
			v.checkShadow(layer, slices.Concat(path, []string{strconv.Itoa(i)}))
		}
	case *token.Mapping:
		color, ok := x.Get("color")
		if !ok {
			v.add(SeverityError, path, "shadow has no color",
				`add a "color" entry; the serialized shadow would end in "undefined"`)
			return
		}
		v.checkColor(color, path)
	}
}

func (v *walker) checkColor(value token.Node, path []string) {
	switch x := value.(type) {
	case token.String:
		if _, err := transform.ParseCSSColor(string(x)); err != nil {
			v.add(SeverityWarning, path,
				fmt.Sprintf("color %q is not a valid CSS color", string(x)),
				"use a hex, rgb(), hsl() or named color")
		}
	case *token.Mapping:
		if _, ok := transform.ParseStructuredColor(x); !ok {
			v.add(SeverityWarning, path, "structured color has no known colorSpace or components",
				`use {"colorSpace": "srgb", "components": [r, g, b]}`)
		}
	case token.Null:
		v.add(SeverityWarning, path, "color is null", "")
	}
}

// reserved returns the value stored under key or its "$" form, preferring
// whichever comes last in m as normalization does.
func reserved(m *token.Mapping, key string) token.Node {
	var out token.Node
	for k, val := range m.All() {
		if k == key || k == normalize.Prefix+key {
			out = val
		}
	}
	return out
}
