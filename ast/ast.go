// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an in-memory representation for JSON-shaped data: a
// closed family of concrete types covering null, Boolean, numeric, string,
// array, and object values. Arrays preserve element order, and objects
// preserve the order in which their members were added.
//
// Values are constructed programmatically with ToValue, Field, and ArrayOf,
// or decoded from text with Parse (JSON and HuJSON) and ParseYAML. The
// package does not include a scanner of its own; decoding is delegated to
// the underlying libraries.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jpull/internal/escape"
)

// A Value is an arbitrary JSON value. The concrete types defined by this
// package are Null, Bool, Int, Float, String, Array, Object, and *Member.
type Value interface {
	// JSON converts the value into JSON source text.
	JSON() string

	// String converts the value into a human-readable string. The result is
	// not necessarily valid JSON.
	String() string
}

// Null represents the JSON null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// A Bool represents a JSON true or false constant.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

// An Int represents a JSON number with no fractional part.
type Int int64

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) String() string { return z.JSON() }

// A Float represents a JSON number with a fractional part or exponent.
type Float float64

func (n Float) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

func (n Float) String() string { return n.JSON() }

// A String represents a JSON string value. Its contents are the plain text
// of the string, without quotation marks or escapes.
type String string

func (s String) JSON() string { return Quote(string(s)) }

func (s String) String() string { return string(s) }

// Quote converts s into a JSON string literal, including the surrounding
// quotation marks.
func Quote(s string) string { return escape.Quote(s) }

// An Array is a sequence of values preserving element order.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// An Object is a collection of key-value members preserving the order in
// which the members were added.
type Object []*Member

// Find returns the first member of o with the given key, or nil if no such
// member exists.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Keys returns the keys of the members of o, in order of appearance.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, elt := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value. The value
// is converted as by ToValue, which panics if it is not a supported type.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

func (m *Member) JSON() string {
	k := Quote(m.Key)
	v := m.Value.JSON()
	buf := make([]byte, len(k)+len(v)+1)
	n := copy(buf, k)
	buf[n] = ':'
	copy(buf[n+1:], v)
	return string(buf)
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// ToValue converts a plain Go value into an ast.Value. It panics if v does
// not have one of the supported types:
//
//	nil         Null
//	bool        Bool
//	int, int64  Int
//	float64     Float
//	string      String
//	Value       itself
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case Value:
		return t
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// ArrayOf constructs an array of the given values, each converted as by
// ToValue. It panics if any value is not a supported type.
func ArrayOf(vs ...any) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}
