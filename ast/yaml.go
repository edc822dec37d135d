// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes data as a single YAML document into a Value. YAML and
// JSON share a data model for the shapes this package represents, so the
// result uses the same types as Parse: mappings become Objects with key
// order preserved, sequences become Arrays, and scalars become Null, Bool,
// Int, Float, or String.
//
// Scalar mapping keys are delivered by the decoder as strings, so "1: one"
// decodes the same as `"1": one`. A mapping key that does not arrive as a
// string is an error. Unsigned integers too large for an int64 are
// converted to Float.
func ParseYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(raw)
}

func fromYAML(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return Float(t), nil
		}
		return Int(t), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil

	case []any:
		out := make(Array, 0, len(t))
		for _, e := range t {
			ev, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil

	case yaml.MapSlice:
		out := make(Object, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("invalid mapping key %v (%T)", item.Key, item.Key)
			}
			mv, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, &Member{Key: key, Value: mv})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown YAML value %T", v)
	}
}
