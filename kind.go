// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull

import "github.com/creachadair/jpull/ast"

// Kind is the shape of a JSON value, as reported by the PeekKind method of
// a Reader.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // no value, or a value of unknown type
	Null                // the null constant
	Bool                // true or false
	Integer             // number with no fractional part
	Number              // number with a fractional part or exponent
	String              // quoted string
	Array               // array
	Object              // object
)

var kindStr = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "bool",
	Integer: "integer",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// Numeric reports whether k is one of the numeric kinds, Integer or Number.
func (k Kind) Numeric() bool { return k == Integer || k == Number }

// kindOf maps a value to its kind. A *Member, or a Value implementation
// from outside the ast package, maps to Invalid.
func kindOf(v ast.Value) Kind {
	switch v.(type) {
	case ast.Null:
		return Null
	case ast.Bool:
		return Bool
	case ast.Int:
		return Integer
	case ast.Float:
		return Number
	case ast.String:
		return String
	case ast.Array:
		return Array
	case ast.Object:
		return Object
	default:
		return Invalid
	}
}
