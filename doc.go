// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jpull implements a pull-style reader over decoded JSON values.
//
// A Reader consumes a value tree in document order under the control of the
// caller: the caller asks for the shapes it expects, and the reader either
// delivers the corresponding Go value or reports that the data has a
// different shape. This inverts the push model of a streaming parser, and
// suits hand-written deserializers that know what they are looking for.
//
// # Reading
//
// Construct a Reader from an ast.Value. The reader holds one pending value
// at a time, initially the root:
//
//	r := jpull.New(root)
//	if err := r.ExpectObject(); err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// The Try methods consume the pending value only if it has the requested
// shape, and otherwise leave the reader unchanged:
//
//	if s, ok := r.TryString(); ok {
//	   fmt.Println("string:", s)
//	}
//
// The Expect methods consume the pending value or report a *TypeError
// recording the value that was found. A mismatched value remains pending,
// so the caller can probe for an alternative shape or skip it.
//
// Calling a Try or Expect method when no value is pending is a mistake in
// the calling code and panics with ErrNoValue. PeekKind reports whether and
// what is pending without this hazard.
//
// # Iteration
//
// TryArray and TryObject, and their Expect forms, enter a composite value
// and open a scope over its contents. Inside an array, Next loads each
// element in turn:
//
//	if r.TryArray() {
//	   for r.Next() {
//	      // ... consume the pending element
//	   }
//	}
//
// Inside an object, NextKey loads each member value and returns its key.
// Members are delivered in the order they appear in the object. When
// iteration is exhausted the scope closes and reading resumes in the
// enclosing scope. EndArray and EndObject close the nearest open scope of
// their kind early, discarding whatever was not read.
//
// A Clone of a reader advances independently of its original, which permits
// speculative reads:
//
//	probe := r.Clone()
//	if key, ok := probe.TryKey("alias", "name"); ok {
//	   // ... continue reading from probe, or discard it
//	}
//
// # Replay
//
// Emit replays the complete pending value into a Sink, whose methods
// correspond to the structure of the value:
//
//	value kind | methods                | description
//	---------- | ---------------------- | ---------------------------
//	object     | BeginObject, EndObject | { ... }
//	member key | Key                    | "key": ...
//	array      | BeginArray, EndArray   | [ ... ]
//	null       | Null                   | null
//	boolean    | Bool                   | true, false
//	number     | Int, Float             | 15, -2.6e5
//	string     | String                 | "text"
//
// Emit guarantees that Begin and End calls are correctly paired. If a sink
// method reports an error, the replay stops and Emit returns that error.
// The Builder type is a Sink that reassembles the replayed events into a
// new ast.Value.
//
// # Errors
//
// Shape mismatches from Expect methods are reported as *TypeError values.
// Violations of the reading protocol itself (consuming when nothing is
// pending, iterating a scope that is not open, closing a scope that does
// not exist, unsorted candidate lists) panic with ErrNoValue,
// ErrOutOfOrder, ErrNotInScope, or ErrBadCandidates. A program that obeys
// the protocol never observes these panics.
package jpull
