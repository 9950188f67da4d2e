/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "errors"

// ErrSyntax indicates that a token file is not valid JSON or YAML.
var ErrSyntax = errors.New("invalid token document syntax")

// ParseError reports a token file that could not be parsed.
type ParseError struct {
	// Path is the file that failed, when known.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "failed to parse token document: " + e.Err.Error()
	}
	return "failed to parse " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
