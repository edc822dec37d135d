// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"strconv"

	"github.com/creachadair/jpull/ast"
)

// A Sink receives the structure of a value replayed by the Emit method of a
// Reader. If a method reports an error, the replay stops and that error is
// returned to the caller. Emit ensures that Begin and End calls are
// correctly paired.
type Sink interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report the key of the next object member. Each call is followed by the
	// calls for the member's value.
	Key(name string) error

	// Report a null value.
	Null() error

	// Report a Boolean value.
	Bool(b bool) error

	// Report a number with no fractional part.
	Int(z int64) error

	// Report a number with a fractional part or exponent.
	Float(n float64) error

	// Report a string value. The contents are plain text, without quotation
	// marks or escapes.
	String(s string) error
}

// Emit consumes the pending value and replays its complete structure into s
// in document order. The pending value is consumed even if the replay
// fails. If a sink method reports an error, the replay stops and Emit
// returns that error. If the replay reaches a value of no valid kind,
// either a *Member outside an Object or a Value implementation from outside
// the ast package, Emit stops and reports a *TypeError locating that value.
// Emit panics with ErrNoValue if no value is pending.
func (r *Reader) Emit(s Sink) error {
	v := r.peek()
	path := r.Path()
	r.clear()
	return emitValue(v, path, s)
}

// emitValue replays v into s. The path locates v itself; it is extended
// with an index or key step for each container entered.
func emitValue(v ast.Value, path string, s Sink) error {
	switch t := v.(type) {
	case ast.Null:
		return s.Null()
	case ast.Bool:
		return s.Bool(bool(t))
	case ast.Int:
		return s.Int(int64(t))
	case ast.Float:
		return s.Float(float64(t))
	case ast.String:
		return s.String(string(t))
	case ast.Array:
		if err := s.BeginArray(); err != nil {
			return err
		}
		for i, elt := range t {
			sub := path + "[" + strconv.Itoa(i) + "]"
			if err := emitValue(elt, sub, s); err != nil {
				return err
			}
		}
		return s.EndArray()
	case ast.Object:
		if err := s.BeginObject(); err != nil {
			return err
		}
		for _, m := range t {
			if err := s.Key(m.Key); err != nil {
				return err
			}
			if err := emitValue(m.Value, path+pathKey(m.Key), s); err != nil {
				return err
			}
		}
		return s.EndObject()
	default:
		return &TypeError{Want: Invalid, Value: v, Path: path}
	}
}
