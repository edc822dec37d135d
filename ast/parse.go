// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"

	"github.com/tailscale/hujson"
)

// Parse decodes data into a Value. The input may be standard JSON or HuJSON
// ("JSON with commas and comments"); comments and trailing commas are
// accepted and discarded. A "//" comment must be terminated by a newline,
// even at the end of input. The input must comprise a single top-level
// value.
//
// Object member order is preserved. A number with no fraction or exponent
// that fits in an int64 decodes as Int; all other numbers decode as Float.
func Parse(data []byte) (Value, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromHu(v.Value)
}

func fromHu(v hujson.ValueTrimmed) (Value, error) {
	switch t := v.(type) {
	case hujson.Literal:
		return fromLiteral(t)

	case *hujson.Object:
		out := make(Object, 0, len(t.Members))
		for _, m := range t.Members {
			name, ok := m.Name.Value.(hujson.Literal)
			if !ok || name.Kind() != '"' {
				return nil, fmt.Errorf("invalid object key %s", m.Name.Pack())
			}
			mv, err := fromHu(m.Value.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, &Member{Key: name.String(), Value: mv})
		}
		return out, nil

	case *hujson.Array:
		out := make(Array, 0, len(t.Elements))
		for _, e := range t.Elements {
			ev, err := fromHu(e.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown value %T", v)
	}
}

func fromLiteral(lit hujson.Literal) (Value, error) {
	switch lit.Kind() {
	case 'n':
		return Null{}, nil
	case 't':
		return Bool(true), nil
	case 'f':
		return Bool(false), nil
	case '"':
		return String(lit.String()), nil
	case '0':
		text := string(lit)
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(z), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", text, err)
		}
		return Float(f), nil
	default:
		return nil, fmt.Errorf("unknown literal %q", string(lit))
	}
}
