/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/bruecke/parser"
	"bennypowers.dev/bruecke/testutil"
	"bennypowers.dev/bruecke/validator"
)

func decode(t *testing.T, src string) []validator.Issue {
	t.Helper()
	doc, err := parser.DecodeJSON([]byte(src))
	require.NoError(t, err)
	return validator.Validate(doc, "tokens.json")
}

func TestValidate_Fixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/bruecke", "/test")
	data, err := mfs.ReadFile("/test/tokens.json")
	require.NoError(t, err)
	doc, err := parser.DecodeJSON(data)
	require.NoError(t, err)

	issues := validator.Validate(doc, "/test/tokens.json")
	assert.False(t, validator.HasErrors(issues), "unexpected errors: %v", issues)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		severity validator.Severity
		path     string
		message  string
	}{
		{
			name:     "collision",
			src:      `{"a": {"$value": "1", "value": "2"}}`,
			severity: validator.SeverityWarning,
			path:     "a",
			message:  `"$value" and "value" both normalize to "value"`,
		},
		{
			name:     "shadow without color",
			src:      `{"shadow": {"$type": "shadow", "card": {"$value": {"offsetX": "1px"}}}}`,
			severity: validator.SeverityError,
			path:     "shadow.card",
			message:  "shadow has no color",
		},
		{
			name:     "layered shadow without color",
			src:      `{"s": {"$type": "shadow", "$value": [{"color": "#000"}, {"blur": "2px"}]}}`,
			severity: validator.SeverityError,
			path:     "s.1",
			message:  "shadow has no color",
		},
		{
			name:     "bad shadow color",
			src:      `{"s": {"type": "shadow", "value": {"color": "notacolor"}}}`,
			severity: validator.SeverityWarning,
			path:     "s",
			message:  `color "notacolor" is not a valid CSS color`,
		},
		{
			name:     "bad color token",
			src:      `{"color": {"$type": "color", "x": {"$value": "#ggg"}}}`,
			severity: validator.SeverityWarning,
			path:     "color.x",
			message:  `color "#ggg" is not a valid CSS color`,
		},
		{
			name:     "bad structured color",
			src:      `{"c": {"$type": "color", "$value": {"colorSpace": "nope", "components": [0, 0, 0]}}}`,
			severity: validator.SeverityWarning,
			path:     "c",
			message:  "structured color has no known colorSpace or components",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := decode(t, tt.src)
			require.Len(t, issues, 1, "issues: %v", issues)
			assert.Equal(t, tt.severity, issues[0].Severity)
			assert.Equal(t, tt.path, issues[0].Path)
			assert.Equal(t, tt.message, issues[0].Message)
			assert.Equal(t, "tokens.json", issues[0].FilePath)
		})
	}
}

func TestValidate_Clean(t *testing.T) {
	issues := decode(t, `{
		"color": {"$type": "color", "primary": {"$value": "rgb(0, 80, 255)"}},
		"shadow": {"$type": "shadow", "focus": {"$value": {"offsetX": 0, "color": "#00000080"}}}
	}`)
	assert.Empty(t, issues)
}

func TestValidate_SkipsTopLevelMeta(t *testing.T) {
	issues := decode(t, `{
		"$meta": {"value": 1, "$value": 2, "shadow": {"$type": "shadow", "$value": {}}},
		"group": {"$meta": {"value": 1, "$value": 2}}
	}`)
	require.Len(t, issues, 1, "issues: %v", issues)
	assert.Equal(t, "group.$meta", issues[0].Path)
}

func TestIssue_Error(t *testing.T) {
	issue := &validator.Issue{
		FilePath:   "a.json",
		Path:       "shadow.card",
		Message:    "shadow has no color",
		Suggestion: "add one",
	}
	assert.Equal(t, "a.json: shadow.card: shadow has no color (add one)", issue.Error())

	var err error = issue
	var target *validator.Issue
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "error", validator.SeverityError.String())
	assert.Equal(t, "warning", validator.SeverityWarning.String())
}
