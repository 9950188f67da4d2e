/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/bruecke/normalize"
	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/testutil"
	"bennypowers.dev/bruecke/token"
)

func TestParseFile_Golden(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/bruecke", "/test")

	doc, err := parser.ParseFile(parser.NewDefault(parser.Options{}), mfs, "/test/tokens.json")
	require.NoError(t, err)

	result, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	result = append(result, '\n')

	goldenPath := "fixtures/bruecke/expected.json"
	testutil.UpdateGoldenFile(t, goldenPath, result)
	expected := testutil.LoadFixtureFile(t, goldenPath)

	gotStr := strings.ReplaceAll(string(result), "\r\n", "\n")
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	if gotStr != expectedStr {
		t.Errorf("output mismatch.\n\nGot:\n%s\n\nExpected:\n%s", gotStr, expectedStr)
	}
}

func TestParse_StripsMeta(t *testing.T) {
	data := []byte(`{
		"$meta": {"secret": "build-only-annotation"},
		"group": {"$meta": {"kept": true}, "$value": 1}
	}`)

	doc, err := parser.Parse(data)
	require.NoError(t, err)

	m := doc.(*token.Mapping)
	assert.False(t, m.Has(parser.MetaKey))
	assert.NotContains(t, token.Text(doc), "build-only-annotation")

	group, _ := m.Get("group")
	assert.Equal(t, []string{"$meta", "value"}, group.(*token.Mapping).Keys())
}

func TestParse_NonObjectRoot(t *testing.T) {
	doc, err := parser.Parse([]byte(`[{"$value": 1}, 2]`))
	require.NoError(t, err)

	expected := token.Sequence{
		token.MappingOf(token.Entry{Key: "value", Value: token.Number(1)}),
		token.Number(2),
	}
	assert.True(t, token.Equal(expected, doc))
}

func TestParse_Collisions(t *testing.T) {
	doc, err := parser.Parse([]byte(`{"value": 1, "$value": 2}`))
	require.NoError(t, err)
	v, _ := doc.(*token.Mapping).Get("value")
	assert.Equal(t, token.Number(2), v)

	_, err = parser.ParseStrict([]byte(`{"value": 1, "$value": 2}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, normalize.ErrKeyCollision))
	var pe *parser.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	doc, err := parser.Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	m := doc.(*token.Mapping)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, token.Number(3), v)
}

func TestParse_Scalars(t *testing.T) {
	doc, err := parser.Parse([]byte(`{"s": "x", "n": -1.5e2, "t": true, "z": null, "e": []}`))
	require.NoError(t, err)

	expected := token.MappingOf(
		token.Entry{Key: "s", Value: token.String("x")},
		token.Entry{Key: "n", Value: token.Number(-150)},
		token.Entry{Key: "t", Value: token.Bool(true)},
		token.Entry{Key: "z", Value: token.Null{}},
		token.Entry{Key: "e", Value: token.Sequence{}},
	)
	assert.True(t, token.Equal(expected, doc))
}

func TestParse_Invalid(t *testing.T) {
	inputs := map[string]string{
		"missing value": `{"color": {"$value": }}`,
		"unterminated":  `{"color": {`,
		"trailing data": `{} {}`,
		"plain text":    "hello world",
		"stray brace":   "not json at all }",
		"yaml mapping":  "color: red",
		"yaml tokens":   "color:\n  $value: red\n",
		"empty":         "",
	}

	def := parser.NewDefault(parser.Options{})
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse([]byte(input))
			require.Error(t, err)

			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Empty(t, pe.Path)
			assert.True(t, errors.Is(err, parser.ErrSyntax))

			_, err = def.Parse([]byte(input))
			assert.True(t, errors.Is(err, parser.ErrSyntax))
		})
	}
}

func TestDocumentParser_YAMLInvalid(t *testing.T) {
	yml := parser.NewYAML(parser.Options{})
	for _, input := range []string{"a: [1, 2\nb: 3", ""} {
		_, err := yml.Parse([]byte(input))
		var pe *parser.ParseError
		require.True(t, errors.As(err, &pe), "input %q", input)
		assert.True(t, errors.Is(err, parser.ErrSyntax))
	}
}

func TestDocumentParser_Format(t *testing.T) {
	def := parser.NewDefault(parser.Options{Format: parser.FormatYAML})
	assert.Equal(t, parser.FormatJSON, def.Format())
	assert.Equal(t, parser.FormatYAML, parser.NewYAML(parser.Options{}).Format())

	p, err := parser.New("parser/yaml-tokens", `\.tokens\.ya?ml$`, parser.Options{Format: parser.FormatYAML})
	require.NoError(t, err)
	doc, err := p.Parse([]byte("color:\n  $value: red\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"color":{"value":"red"}}`, token.Text(doc))

	raw, err := p.Decode([]byte("$meta: 1\ncolor:\n  $value: red\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"$meta", "color"}, raw.(*token.Mapping).Keys())
}

func TestParseFile_ErrorNamesFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/invalid", "/test")

	_, err := parser.ParseFile(parser.NewDefault(parser.Options{}), mfs, "/test/broken.json")
	require.Error(t, err)

	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/test/broken.json", pe.Path)
	assert.Contains(t, err.Error(), "/test/broken.json")
}

func TestParseFile_Missing(t *testing.T) {
	mfs := testutil.NewMapFS(nil)

	_, err := parser.ParseFile(parser.NewDefault(parser.Options{}), mfs, "/missing.json")
	require.Error(t, err)

	var pe *parser.ParseError
	assert.False(t, errors.As(err, &pe))
}

func TestParseFile_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/yaml", "/test")

	doc, err := parser.ParseFile(parser.NewYAML(parser.Options{}), mfs, "/test/tokens.yaml")
	require.NoError(t, err)

	expected := token.MappingOf(
		token.Entry{Key: "size", Value: token.MappingOf(
			token.Entry{Key: "type", Value: token.String("dimension")},
			token.Entry{Key: "base", Value: token.MappingOf(
				token.Entry{Key: "value", Value: token.String("16px")},
			)},
			token.Entry{Key: "ratio", Value: token.MappingOf(
				token.Entry{Key: "value", Value: token.Number(1.25)},
				token.Entry{Key: "type", Value: token.String("number")},
			)},
		)},
	)
	assert.True(t, token.Equal(expected, doc))
}

func TestDocumentParser_Match(t *testing.T) {
	def := parser.NewDefault(parser.Options{})
	yml := parser.NewYAML(parser.Options{})

	tests := []struct {
		path string
		json bool
		yaml bool
	}{
		{"tokens/base.json", true, false},
		{"tokens/base.tokens.json", true, false},
		{"tokens/base.tokens", true, false},
		{"tokens/base.json.bak", false, false},
		{"tokens/base.yaml", false, true},
		{"tokens/base.yml", false, true},
		{"tokens/README.md", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.json, def.Match(tt.path))
			assert.Equal(t, tt.yaml, yml.Match(tt.path))
		})
	}

	assert.Equal(t, parser.DefaultName, def.Name())
	assert.Equal(t, parser.YAMLName, yml.Name())
}

func TestNew(t *testing.T) {
	p, err := parser.New("parser/custom", `\.dtcg$`, parser.Options{Strict: true})
	require.NoError(t, err)
	assert.True(t, p.Match("a.dtcg"))

	_, err = p.Parse([]byte(`{"$type": "a", "type": "b"}`))
	assert.True(t, errors.Is(err, normalize.ErrKeyCollision))

	_, err = parser.New("parser/broken", `(`, parser.Options{})
	assert.Error(t, err)
}
