/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return strings.ToLower(strings.Join(SplitIntoWords(s), "-"))
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return strings.ToLower(strings.Join(SplitIntoWords(s), "_"))
}

// ToConstantCase converts a string to CONSTANT_CASE.
func ToConstantCase(s string) string {
	return strings.ToUpper(strings.Join(SplitIntoWords(s), "_"))
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	words := SplitIntoWords(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		sb.WriteString(title(word))
	}
	return sb.String()
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, word := range SplitIntoWords(s) {
		sb.WriteString(title(word))
	}
	return sb.String()
}

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces and
// camelCase boundaries. Consecutive capitals stay in one word.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ' || r == '/':
			flush()
		case i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()

	return words
}

// title upper-cases the first letter of word and lower-cases the rest.
// A Caser is stateful, so one is created per call.
func title(word string) string {
	return cases.Title(language.Und).String(word)
}
