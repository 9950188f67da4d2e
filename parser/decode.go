/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/bruecke/token"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Format selects how a token file is decoded.
type Format int

const (
	// FormatJSON is JSON with comments and trailing commas.
	FormatJSON Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// Decode parses token data in the given format into a document, keeping key
// order. Duplicate keys resolve last-write-wins at the position of the first
// occurrence. Malformed input yields an error wrapping ErrSyntax.
func Decode(data []byte, format Format) (token.Node, error) {
	if format == FormatYAML {
		return DecodeYAML(data)
	}
	return DecodeJSON(data)
}

// DecodeJSON parses JSON token data. Comments and trailing commas are allowed.
func DecodeJSON(data []byte) (token.Node, error) {
	return decodeJSON(jsonc.ToJSON(bytes.TrimPrefix(data, utf8BOM)))
}

// DecodeYAML parses YAML token data.
func DecodeYAML(data []byte) (token.Node, error) {
	return decodeYAML(data)
}

func decodeJSON(data []byte) (token.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := readJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrSyntax)
	}
	return n, nil
}

func readJSON(dec *json.Decoder) (token.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			m := token.NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			seq := token.Sequence{}
			for dec.More() {
				val, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				seq = append(seq, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return token.String(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return token.Number(f), nil
	case bool:
		return token.Bool(v), nil
	case nil:
		return token.Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeYAML(data []byte) (token.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrSyntax)
	}
	n, err := fromYAML(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return n, nil
}

func fromYAML(node *yaml.Node) (token.Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return token.Null{}, nil
		}
		return fromYAML(node.Content[0])
	case yaml.AliasNode:
		return fromYAML(node.Alias)
	case yaml.MappingNode:
		m := token.NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := fromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, val)
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make(token.Sequence, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := fromYAML(child)
			if err != nil {
				return nil, err
			}
			seq = append(seq, val)
		}
		return seq, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return token.Null{}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return token.Bool(b), nil
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, err
			}
			return token.Number(f), nil
		default:
			return token.String(node.Value), nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}
