// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/creachadair/jpull/ast"
)

// A Reader is a forward-only cursor over a decoded JSON value.
//
// A reader holds at most one pending value, the value under consideration at
// the current position. Operations on the reader either probe the pending
// value (PeekKind), consume it (the Try and Expect methods, Take, Skip, and
// Emit), or produce the next pending value from an open array or object
// scope (Next, NextKey, TryKey).
//
// Entering an array or object opens a scope. Scopes form a stack: reading
// continues in an inner scope until it is exhausted or closed, then resumes
// in the scope that contains it. Once the root value and all scopes have
// been consumed the reader is exhausted: no value is pending and no scope is
// open.
//
// The reader checks its protocol. Consuming when no value is pending,
// iterating a scope of the wrong kind or with a value still pending, and
// closing a scope that is not open are mistakes in the calling code; they
// panic with ErrNoValue, ErrOutOfOrder, and ErrNotInScope respectively.
// Methods taking candidate lists check them before anything else, and panic
// with ErrBadCandidates if the list is not sorted and distinct. By contrast,
// a mismatch between the shape the caller asked for and the data actually
// found is an ordinary outcome, reported by return values (Try) or errors
// (Expect), never by a panic.
//
// A Reader is not safe for concurrent use. To read one value from multiple
// positions, give each goroutine its own Clone.
type Reader struct {
	pend pending
	top  frame
}

// New constructs a Reader whose pending value is root.
// A nil root is treated as ast.Null.
func New(root ast.Value) *Reader {
	if root == nil {
		root = ast.Null{}
	}
	return &Reader{pend: pending{value: root, ok: true}}
}

// A pending is the reader's one-value lookahead slot. The zero pending is
// empty. An empty slot is distinct from a slot holding ast.Null.
type pending struct {
	value ast.Value
	ok    bool
}

// peek returns the pending value, or panics with ErrNoValue.
func (r *Reader) peek() ast.Value {
	if !r.pend.ok {
		panic(ErrNoValue)
	}
	return r.pend.value
}

func (r *Reader) clear() { r.pend = pending{} }

func (r *Reader) load(v ast.Value) { r.pend = pending{value: v, ok: true} }

// PeekKind reports the kind of the pending value without consuming it, or
// Invalid if no value is pending. Unlike the consuming methods, PeekKind
// never panics.
func (r *Reader) PeekKind() Kind {
	if !r.pend.ok {
		return Invalid
	}
	return kindOf(r.pend.value)
}

// TryNull consumes a pending null and reports true. Any other pending value
// is left in place, and TryNull reports false.
func (r *Reader) TryNull() bool {
	if _, ok := r.peek().(ast.Null); ok {
		r.clear()
		return true
	}
	return false
}

// TryBool consumes a pending Boolean and returns its value. Any other
// pending value is left in place.
func (r *Reader) TryBool() (bool, bool) {
	if b, ok := r.peek().(ast.Bool); ok {
		r.clear()
		return bool(b), true
	}
	return false, false
}

// TryInt consumes a pending number that has no fractional part and returns
// it as an int64. An Int always matches; a Float matches only if its value
// is exactly representable as an int64. Any other pending value is left in
// place.
func (r *Reader) TryInt() (int64, bool) {
	switch t := r.peek().(type) {
	case ast.Int:
		r.clear()
		return int64(t), true
	case ast.Float:
		if z, ok := exactInt64(float64(t)); ok {
			r.clear()
			return z, true
		}
	}
	return 0, false
}

// TryNumber consumes a pending number of either numeric kind and returns it
// as a float64. Any other pending value is left in place.
func (r *Reader) TryNumber() (float64, bool) {
	switch t := r.peek().(type) {
	case ast.Int:
		r.clear()
		return float64(t), true
	case ast.Float:
		r.clear()
		return float64(t), true
	}
	return 0, false
}

// TryString consumes a pending string and returns it. With no arguments any
// string matches. Otherwise match must be sorted and distinct, the pending
// string must equal one of its elements, and the matching element itself is
// returned, so callers that intern their candidates get the interned copy
// back. A pending value that is not a string, or a string not among the
// candidates, is left in place.
func (r *Reader) TryString(match ...string) (string, bool) {
	checkCandidates(match)
	s, ok := r.peek().(ast.String)
	if !ok {
		return "", false
	}
	if len(match) == 0 {
		r.clear()
		return string(s), true
	}
	if i, ok := slices.BinarySearch(match, string(s)); ok {
		r.clear()
		return match[i], true
	}
	return "", false
}

// TryArray consumes a pending array and opens a scope over its elements,
// reporting true. Any other pending value is left in place. After a
// successful TryArray no value is pending; use Next to load elements.
func (r *Reader) TryArray() bool {
	a, ok := r.peek().(ast.Array)
	if !ok {
		return false
	}
	r.clear()
	r.top = &arrayFrame{prev: r.top, elems: a}
	return true
}

// TryObject consumes a pending object and opens a scope over its members,
// reporting true. Any other pending value is left in place. After a
// successful TryObject no value is pending; use NextKey or TryKey to load
// member values.
func (r *Reader) TryObject() bool {
	o, ok := r.peek().(ast.Object)
	if !ok {
		return false
	}
	r.clear()
	r.top = &objectFrame{prev: r.top, members: o}
	return true
}

// ExpectNull consumes a pending null, or reports a *TypeError leaving the
// pending value in place.
func (r *Reader) ExpectNull() error {
	if !r.TryNull() {
		return r.typeErr(Null)
	}
	return nil
}

// ExpectBool consumes and returns a pending Boolean, or reports a
// *TypeError leaving the pending value in place.
func (r *Reader) ExpectBool() (bool, error) {
	b, ok := r.TryBool()
	if !ok {
		return false, r.typeErr(Bool)
	}
	return b, nil
}

// ExpectInt consumes and returns a pending number with no fractional part,
// with the matching rules of TryInt, or reports a *TypeError leaving the
// pending value in place.
func (r *Reader) ExpectInt() (int64, error) {
	z, ok := r.TryInt()
	if !ok {
		return 0, r.typeErr(Integer)
	}
	return z, nil
}

// ExpectNumber consumes and returns a pending number of either numeric
// kind, or reports a *TypeError leaving the pending value in place.
func (r *Reader) ExpectNumber() (float64, error) {
	f, ok := r.TryNumber()
	if !ok {
		return 0, r.typeErr(Number)
	}
	return f, nil
}

// ExpectString consumes and returns a pending string, or reports a
// *TypeError leaving the pending value in place.
func (r *Reader) ExpectString() (string, error) {
	s, ok := r.TryString()
	if !ok {
		return "", r.typeErr(String)
	}
	return s, nil
}

// ExpectArray consumes a pending array and opens a scope over its elements,
// or reports a *TypeError leaving the pending value in place.
func (r *Reader) ExpectArray() error {
	if !r.TryArray() {
		return r.typeErr(Array)
	}
	return nil
}

// ExpectObject consumes a pending object and opens a scope over its
// members, or reports a *TypeError leaving the pending value in place.
func (r *Reader) ExpectObject() error {
	if !r.TryObject() {
		return r.typeErr(Object)
	}
	return nil
}

// Take consumes and returns the pending value, whatever its kind, without
// entering it.
func (r *Reader) Take() ast.Value {
	v := r.peek()
	r.clear()
	return v
}

// Skip consumes and discards the pending value, whatever its kind.
// Skipping an array or object discards its entire contents.
func (r *Reader) Skip() { r.Take() }

// Next advances to the next element of the innermost open array, loading it
// as the pending value, and reports true. When the array is exhausted, Next
// closes its scope and reports false, and reading resumes in the enclosing
// scope. Next panics with ErrOutOfOrder unless the innermost open scope is
// an array and no value is pending.
func (r *Reader) Next() bool {
	f, ok := r.top.(*arrayFrame)
	if !ok || r.pend.ok {
		panic(ErrOutOfOrder)
	}
	if f.pos >= len(f.elems) {
		r.top = f.prev
		return false
	}
	r.load(f.elems[f.pos])
	f.pos++
	return true
}

// NextKey advances to the next member of the innermost open object, loading
// its value as the pending value, and returns its key with ok true. When
// the object is exhausted, NextKey closes its scope and returns ok false,
// and reading resumes in the enclosing scope. Members are delivered in the
// order they appear in the object. NextKey panics with ErrOutOfOrder unless
// the innermost open scope is an object and no value is pending.
func (r *Reader) NextKey() (key string, ok bool) {
	f, ok := r.top.(*objectFrame)
	if !ok || r.pend.ok {
		panic(ErrOutOfOrder)
	}
	if f.pos >= len(f.members) {
		r.top = f.prev
		return "", false
	}
	m := f.members[f.pos]
	f.pos++
	r.load(m.Value)
	return m.Key, true
}

// MoreKeys reports whether the innermost open object has members remaining,
// without advancing. When the object is exhausted, MoreKeys closes its
// scope before reporting false, exactly as NextKey does. MoreKeys panics
// with ErrOutOfOrder unless the innermost open scope is an object and no
// value is pending.
func (r *Reader) MoreKeys() bool {
	f, ok := r.top.(*objectFrame)
	if !ok || r.pend.ok {
		panic(ErrOutOfOrder)
	}
	if f.pos >= len(f.members) {
		r.top = f.prev
		return false
	}
	return true
}

// TryKey examines the next member of the innermost open object. If its key
// equals one of the candidate keys, which must be sorted and distinct,
// TryKey consumes the member, loads its value as the pending value, and
// returns the matching candidate element. Otherwise the reader is left
// unchanged: the member, if any, remains current, and an exhausted object
// scope is not closed. TryKey panics with ErrOutOfOrder unless the
// innermost open scope is an object and no value is pending.
func (r *Reader) TryKey(keys ...string) (string, bool) {
	checkCandidates(keys)
	f, ok := r.top.(*objectFrame)
	if !ok || r.pend.ok {
		panic(ErrOutOfOrder)
	}
	if f.pos >= len(f.members) {
		return "", false
	}
	m := f.members[f.pos]
	i, ok := slices.BinarySearch(keys, m.Key)
	if !ok {
		return "", false
	}
	f.pos++
	r.load(m.Value)
	return keys[i], true
}

// SkipMember advances past the next member of the innermost open object
// without loading its value, and reports true. When the object is
// exhausted, SkipMember closes its scope and reports false. SkipMember
// panics with ErrOutOfOrder unless the innermost open scope is an object
// and no value is pending.
func (r *Reader) SkipMember() bool {
	f, ok := r.top.(*objectFrame)
	if !ok || r.pend.ok {
		panic(ErrOutOfOrder)
	}
	if f.pos >= len(f.members) {
		r.top = f.prev
		return false
	}
	f.pos++
	return true
}

// EndArray closes the nearest open array scope, discarding the pending
// value if any, the unread remainder of that array, and any open scopes
// nested inside it. Reading resumes in the scope enclosing the array.
// EndArray panics with ErrNotInScope if no array scope is open.
func (r *Reader) EndArray() {
	for f := r.top; f != nil; f = f.up() {
		if af, ok := f.(*arrayFrame); ok {
			r.top = af.prev
			r.clear()
			return
		}
	}
	panic(ErrNotInScope)
}

// EndObject closes the nearest open object scope, discarding the pending
// value if any, the unread remainder of that object, and any open scopes
// nested inside it. Reading resumes in the scope enclosing the object.
// EndObject panics with ErrNotInScope if no object scope is open.
func (r *Reader) EndObject() {
	for f := r.top; f != nil; f = f.up() {
		if of, ok := f.(*objectFrame); ok {
			r.top = of.prev
			r.clear()
			return
		}
	}
	panic(ErrNotInScope)
}

// Clone returns a new Reader with the same state as r. The clone and the
// original advance independently. The values and containers below them are
// shared, but neither reader ever modifies them.
func (r *Reader) Clone() *Reader {
	return &Reader{pend: r.pend, top: cloneFrames(r.top)}
}

// Path reports the location of the most recently loaded position as a
// JSONPath-style string rooted at "$", for use in diagnostics.
func (r *Reader) Path() string {
	var steps []string
	for f := r.top; f != nil; f = f.up() {
		switch t := f.(type) {
		case *arrayFrame:
			if t.pos > 0 {
				steps = append(steps, "["+strconv.Itoa(t.pos-1)+"]")
			}
		case *objectFrame:
			if t.pos > 0 {
				steps = append(steps, pathKey(t.members[t.pos-1].Key))
			}
		}
	}
	slices.Reverse(steps)
	return "$" + strings.Join(steps, "")
}

func (r *Reader) typeErr(want Kind) error {
	return &TypeError{Want: want, Value: r.pend.value, Path: r.Path()}
}

// A frame is one open scope of a reader, linked to the scope enclosing it.
type frame interface {
	up() frame
	clone(up frame) frame
}

type arrayFrame struct {
	prev  frame
	elems ast.Array
	pos   int // number of elements already delivered
}

func (f *arrayFrame) up() frame { return f.prev }

func (f *arrayFrame) clone(up frame) frame { g := *f; g.prev = up; return &g }

type objectFrame struct {
	prev    frame
	members ast.Object
	pos     int // number of members already delivered or skipped
}

func (f *objectFrame) up() frame { return f.prev }

func (f *objectFrame) clone(up frame) frame { g := *f; g.prev = up; return &g }

func cloneFrames(f frame) frame {
	if f == nil {
		return nil
	}
	return f.clone(cloneFrames(f.up()))
}

// checkCandidates panics with ErrBadCandidates unless keys is sorted in
// ascending order with no duplicates.
func checkCandidates(keys []string) {
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic(ErrBadCandidates)
		}
	}
}

// exactInt64 reports whether f is exactly representable as an int64, and if
// so returns that value.
func exactInt64(f float64) (int64, bool) {
	const lim = 1 << 63 // 2^63 is exactly representable as a float64
	if math.IsNaN(f) || f >= lim || f < -lim {
		return 0, false
	}
	z := int64(f)
	return z, float64(z) == f
}

// pathKey formats an object key as a path step, using dot notation for keys
// that look like identifiers and bracketed quotes otherwise.
func pathKey(key string) string {
	if key == "" {
		return `[""]`
	}
	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return "[" + strconv.Quote(key) + "]"
	}
	return "." + key
}
