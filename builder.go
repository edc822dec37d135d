// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"errors"

	"github.com/creachadair/jpull/ast"
)

// A Builder is a Sink that reassembles the events of a replay into a Value.
// After a replay completes without error, Value returns the result.
//
// The zero Builder is ready for use. A Builder reports errors rather than
// panicking when events arrive out of protocol order, so it is safe to
// drive from sources other than a Reader.
type Builder struct {
	stk  []*buildScope
	out  ast.Value
	done bool
}

// A buildScope is an open container under construction.
type buildScope struct {
	arr    ast.Array
	obj    ast.Object
	key    string
	hasKey bool
	isObj  bool
}

// Value returns the completed value, or nil if no complete value has been
// built.
func (b *Builder) Value() ast.Value {
	if !b.done {
		return nil
	}
	return b.out
}

// Reset restores b to its initial state, discarding any partial or complete
// value.
func (b *Builder) Reset() { *b = Builder{} }

// checkStart reports an error unless a new value may begin at this point.
func (b *Builder) checkStart() error {
	if b.done {
		return errors.New("multiple top-level values")
	}
	if n := len(b.stk); n > 0 {
		if sc := b.stk[n-1]; sc.isObj && !sc.hasKey {
			return errors.New("value without a key")
		}
	}
	return nil
}

// attach adds v to the container under construction, or records it as the
// result if no container is open.
func (b *Builder) attach(v ast.Value) error {
	if err := b.checkStart(); err != nil {
		return err
	}
	n := len(b.stk)
	if n == 0 {
		b.out = v
		b.done = true
		return nil
	}
	sc := b.stk[n-1]
	if sc.isObj {
		sc.obj = append(sc.obj, &ast.Member{Key: sc.key, Value: v})
		sc.key, sc.hasKey = "", false
	} else {
		sc.arr = append(sc.arr, v)
	}
	return nil
}

// BeginObject implements part of the Sink interface.
func (b *Builder) BeginObject() error {
	if err := b.checkStart(); err != nil {
		return err
	}
	b.stk = append(b.stk, &buildScope{isObj: true})
	return nil
}

// EndObject implements part of the Sink interface.
func (b *Builder) EndObject() error {
	n := len(b.stk)
	if n == 0 || !b.stk[n-1].isObj {
		return errors.New("unbalanced EndObject")
	}
	sc := b.stk[n-1]
	if sc.hasKey {
		return errors.New("member without a value")
	}
	b.stk = b.stk[:n-1]
	if sc.obj == nil {
		sc.obj = ast.Object{}
	}
	return b.attach(sc.obj)
}

// BeginArray implements part of the Sink interface.
func (b *Builder) BeginArray() error {
	if err := b.checkStart(); err != nil {
		return err
	}
	b.stk = append(b.stk, &buildScope{})
	return nil
}

// EndArray implements part of the Sink interface.
func (b *Builder) EndArray() error {
	n := len(b.stk)
	if n == 0 || b.stk[n-1].isObj {
		return errors.New("unbalanced EndArray")
	}
	sc := b.stk[n-1]
	b.stk = b.stk[:n-1]
	if sc.arr == nil {
		sc.arr = ast.Array{}
	}
	return b.attach(sc.arr)
}

// Key implements part of the Sink interface.
func (b *Builder) Key(name string) error {
	n := len(b.stk)
	if n == 0 || !b.stk[n-1].isObj {
		return errors.New("key outside an object")
	}
	sc := b.stk[n-1]
	if sc.hasKey {
		return errors.New("member without a value")
	}
	sc.key, sc.hasKey = name, true
	return nil
}

// Null implements part of the Sink interface.
func (b *Builder) Null() error { return b.attach(ast.Null{}) }

// Bool implements part of the Sink interface.
func (b *Builder) Bool(v bool) error { return b.attach(ast.Bool(v)) }

// Int implements part of the Sink interface.
func (b *Builder) Int(z int64) error { return b.attach(ast.Int(z)) }

// Float implements part of the Sink interface.
func (b *Builder) Float(n float64) error { return b.attach(ast.Float(n)) }

// String implements part of the Sink interface.
func (b *Builder) String(s string) error { return b.attach(ast.String(s)) }
