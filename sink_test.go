// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jpull"
	"github.com/creachadair/jpull/ast"
	"github.com/google/go-cmp/cmp"
)

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

// A testSink records a transcript of the events it receives, one per line.
type testSink struct {
	buf bytes.Buffer
}

func (t *testSink) pr(msg string, args ...any) error {
	fmt.Fprintf(&t.buf, msg, args...)
	t.buf.WriteByte('\n')
	return nil
}

func (t *testSink) output() string { return t.buf.String() }

func (t *testSink) BeginObject() error    { return t.pr("BeginObject") }
func (t *testSink) EndObject() error      { return t.pr("EndObject") }
func (t *testSink) BeginArray() error     { return t.pr("BeginArray") }
func (t *testSink) EndArray() error       { return t.pr("EndArray") }
func (t *testSink) Key(name string) error { return t.pr("Key %q", name) }
func (t *testSink) Null() error           { return t.pr("Null") }
func (t *testSink) Bool(b bool) error     { return t.pr("Bool %v", b) }
func (t *testSink) Int(z int64) error     { return t.pr("Int %d", z) }
func (t *testSink) Float(n float64) error { return t.pr("Float %v", n) }
func (t *testSink) String(s string) error { return t.pr("String %q", s) }

func TestEmit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`null`, "Null"},
		{`true`, "Bool true"},
		{`15`, "Int 15"},
		{`-0.25`, "Float -0.25"},
		{`"abc"`, `String "abc"`},
		{`[]`, "BeginArray\nEndArray"},
		{`{}`, "BeginObject\nEndObject"},

		{`{"x": null, "y": [true]}`, `
BeginObject
Key "x"
Null
Key "y"
BeginArray
Bool true
EndArray
EndObject`},

		{`[1, ["two", 3.5], {"four": 4}]`, `
BeginArray
Int 1
BeginArray
String "two"
Float 3.5
EndArray
BeginObject
Key "four"
Int 4
EndObject
EndArray`},
	}
	for _, test := range tests {
		r := jpull.New(mustParse(t, test.input))
		sink := new(testSink)
		if err := r.Emit(sink); err != nil {
			t.Errorf("Emit %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := diffStrings(test.want, sink.output()); diff != "" {
			t.Errorf("Input: %#q\nTranscript: (-want, +got)\n%s", test.input, diff)
		}

		// Emit consumed the value.
		if got := r.PeekKind(); got != jpull.Invalid {
			t.Errorf("PeekKind after Emit: got %v, want %v", got, jpull.Invalid)
		}
	}
}

func TestEmitMidStream(t *testing.T) {
	r := jpull.New(mustParse(t, `[{"a": 1}, "after"]`))
	if err := r.ExpectArray(); err != nil {
		t.Fatalf("ExpectArray: unexpected error: %v", err)
	}
	if !r.Next() {
		t.Fatal("Next: got false, want true")
	}

	sink := new(testSink)
	if err := r.Emit(sink); err != nil {
		t.Fatalf("Emit: unexpected error: %v", err)
	}
	const want = "BeginObject\nKey \"a\"\nInt 1\nEndObject"
	if diff := diffStrings(want, sink.output()); diff != "" {
		t.Errorf("Transcript: (-want, +got)\n%s", diff)
	}

	// Iteration resumes cleanly after the replay.
	if !r.Next() {
		t.Fatal("Next: got false, want true")
	}
	if s, err := r.ExpectString(); err != nil || s != "after" {
		t.Errorf(`ExpectString: got %q, %v; want "after", nil`, s, err)
	}
	if r.Next() {
		t.Error("Next: got true, want false")
	}
}

// An errSink fails with err after n events have been delivered.
type errSink struct {
	n   int
	err error
}

func (e *errSink) event() error {
	e.n--
	if e.n < 0 {
		return e.err
	}
	return nil
}

func (e *errSink) BeginObject() error  { return e.event() }
func (e *errSink) EndObject() error    { return e.event() }
func (e *errSink) BeginArray() error   { return e.event() }
func (e *errSink) EndArray() error     { return e.event() }
func (e *errSink) Key(string) error    { return e.event() }
func (e *errSink) Null() error         { return e.event() }
func (e *errSink) Bool(bool) error     { return e.event() }
func (e *errSink) Int(int64) error     { return e.event() }
func (e *errSink) Float(float64) error { return e.event() }
func (e *errSink) String(string) error { return e.event() }

func TestEmitSinkError(t *testing.T) {
	werr := errors.New("sink full")
	for n := range 8 {
		r := jpull.New(mustParse(t, `{"a": [1, 2, 3]}`))
		err := r.Emit(&errSink{n: n, err: werr})
		if !errors.Is(err, werr) {
			t.Errorf("Emit (n=%d): got %v, want %v", n, err, werr)
		}
	}
}

// A fakeValue satisfies ast.Value without being one of its concrete types.
type fakeValue struct{}

func (fakeValue) JSON() string   { return "fake" }
func (fakeValue) String() string { return "fake" }

func TestEmitForeignValue(t *testing.T) {
	r := jpull.New(fakeValue{})
	var terr *jpull.TypeError
	if err := r.Emit(new(testSink)); !errors.As(err, &terr) {
		t.Fatalf("Emit: got %v, want *TypeError", err)
	}
	if terr.Want != jpull.Invalid {
		t.Errorf("TypeError.Want: got %v, want %v", terr.Want, jpull.Invalid)
	}
	if terr.Path != "$" {
		t.Errorf("TypeError.Path: got %q, want %q", terr.Path, "$")
	}
}

func TestEmitForeignValuePath(t *testing.T) {
	// The error locates the foreign value itself, not the origin of the
	// replay.
	root := ast.Object{
		ast.Field("a", 1),
		ast.Field("b", ast.Array{ast.Null{}, fakeValue{}}),
	}
	var terr *jpull.TypeError
	if err := jpull.New(root).Emit(new(testSink)); !errors.As(err, &terr) {
		t.Fatalf("Emit: got %v, want *TypeError", err)
	}
	if want := "$.b[1]"; terr.Path != want {
		t.Errorf("TypeError.Path: got %q, want %q", terr.Path, want)
	}

	// Replaying from inside open scopes, the position of the origin prefixes
	// the path.
	r := jpull.New(ast.ArrayOf(true, root))
	if err := r.ExpectArray(); err != nil {
		t.Fatalf("ExpectArray: unexpected error: %v", err)
	}
	if !r.Next() {
		t.Fatal("Next: got false, want true")
	}
	r.Skip()
	if !r.Next() {
		t.Fatal("Next: got false, want true")
	}
	if err := r.Emit(new(testSink)); !errors.As(err, &terr) {
		t.Fatalf("Emit: got %v, want *TypeError", err)
	}
	if want := "$[1].b[1]"; terr.Path != want {
		t.Errorf("TypeError.Path: got %q, want %q", terr.Path, want)
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`false`,
		`12345`,
		`-6.25`,
		`"hello"`,
		`[]`,
		`{}`,
		`[null]`,
		`{"a": 1, "b": [true, {"c": "d"}], "e": {"f": [], "g": {}}}`,
		`[[["deep"]], 2.5, {"end": null}]`,
	}
	for _, test := range tests {
		root := mustParse(t, test)

		var b jpull.Builder
		if err := jpull.New(root).Emit(&b); err != nil {
			t.Errorf("Emit %#q: unexpected error: %v", test, err)
			continue
		}
		if diff := cmp.Diff(root, b.Value()); diff != "" {
			t.Errorf("Rebuilt %#q: (-want, +got)\n%s", test, diff)
		}
	}
}

func TestBuilderErrors(t *testing.T) {
	t.Run("KeyOutsideObject", func(t *testing.T) {
		var b jpull.Builder
		if err := b.Key("k"); err == nil {
			t.Error("Key: got nil, want error")
		}
	})
	t.Run("KeyInArray", func(t *testing.T) {
		var b jpull.Builder
		if err := b.BeginArray(); err != nil {
			t.Fatalf("BeginArray: unexpected error: %v", err)
		}
		if err := b.Key("k"); err == nil {
			t.Error("Key: got nil, want error")
		}
	})
	t.Run("ValueWithoutKey", func(t *testing.T) {
		var b jpull.Builder
		if err := b.BeginObject(); err != nil {
			t.Fatalf("BeginObject: unexpected error: %v", err)
		}
		if err := b.Int(1); err == nil {
			t.Error("Int: got nil, want error")
		}
	})
	t.Run("DoubleKey", func(t *testing.T) {
		var b jpull.Builder
		if err := b.BeginObject(); err != nil {
			t.Fatalf("BeginObject: unexpected error: %v", err)
		}
		if err := b.Key("a"); err != nil {
			t.Fatalf("Key: unexpected error: %v", err)
		}
		if err := b.Key("b"); err == nil {
			t.Error("Key: got nil, want error")
		}
	})
	t.Run("MemberWithoutValue", func(t *testing.T) {
		var b jpull.Builder
		if err := b.BeginObject(); err != nil {
			t.Fatalf("BeginObject: unexpected error: %v", err)
		}
		if err := b.Key("a"); err != nil {
			t.Fatalf("Key: unexpected error: %v", err)
		}
		if err := b.EndObject(); err == nil {
			t.Error("EndObject: got nil, want error")
		}
	})
	t.Run("UnbalancedEnd", func(t *testing.T) {
		var b jpull.Builder
		if err := b.EndArray(); err == nil {
			t.Error("EndArray: got nil, want error")
		}
		if err := b.BeginObject(); err != nil {
			t.Fatalf("BeginObject: unexpected error: %v", err)
		}
		if err := b.EndArray(); err == nil {
			t.Error("EndArray: got nil, want error")
		}
	})
	t.Run("MultipleValues", func(t *testing.T) {
		var b jpull.Builder
		if err := b.Null(); err != nil {
			t.Fatalf("Null: unexpected error: %v", err)
		}
		if err := b.Null(); err == nil {
			t.Error("Null: got nil, want error")
		}
	})
	t.Run("Incomplete", func(t *testing.T) {
		var b jpull.Builder
		if err := b.BeginArray(); err != nil {
			t.Fatalf("BeginArray: unexpected error: %v", err)
		}
		if got := b.Value(); got != nil {
			t.Errorf("Value: got %v, want nil", got)
		}
	})
	t.Run("Reset", func(t *testing.T) {
		var b jpull.Builder
		if err := b.Null(); err != nil {
			t.Fatalf("Null: unexpected error: %v", err)
		}
		b.Reset()
		if got := b.Value(); got != nil {
			t.Errorf("Value after Reset: got %v, want nil", got)
		}
		if err := b.Bool(true); err != nil {
			t.Errorf("Bool after Reset: unexpected error: %v", err)
		}
	})
}
