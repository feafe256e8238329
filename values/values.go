// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package values defines data structures for representing runtime
// values in fp. Any value admitted by a kind system (see
// github.com/grailbio/fp/types) is representable, and the structures
// in this package mirror the kinds of that system.
//
// Values are represented by values.T, defined as
//
//	type T = interface{}
//
// which is done to clarify code that uses fp values. The admissible
// dynamic types of a T are: the bottom value values.Bottom, bool,
// int, float64, string, and values.Seq.
//
// The bottom value is the engine's single evaluation-time error
// channel: every malformed or undefined computation yields Bottom,
// which then participates in further computation like any other
// value. No operation in this package panics or returns a Go error
// for a kind mismatch; mismatches fail soft. The one exception is
// New, which reports a configuration error when asked to wrap a
// native value whose kind is outside the declared kind set; this is
// a setup-time failure, never an evaluation-time one.
//
// Values are immutable after construction and may be freely shared
// by reference across concurrently executing tasks.
package values

import (
	"github.com/grailbio/fp/errors"
	"github.com/grailbio/fp/types"
)

// T is the type of value. It is just an alias to interface{},
// but is used throughout code for clarity.
type T = interface{}

type bottom struct{}

func (bottom) String() string { return "bottom" }

// Bottom is the distinguished undefined value ("⊥"). It denotes an
// undefined or erroneous result and propagates through computation
// instead of raising an error.
var Bottom T = bottom{}

// IsBottom tells whether v is the bottom value.
func IsBottom(v T) bool {
	_, ok := v.(bottom)
	return ok
}

// Kind returns the kind of value v. Values of foreign dynamic types
// have kind types.ErrorKind; such values cannot be produced by this
// package's constructors.
func Kind(v T) types.Kind {
	switch v.(type) {
	case bottom:
		return types.BottomKind
	case bool:
		return types.BoolKind
	case int:
		return types.IntKind
	case float64:
		return types.FloatKind
	case string:
		return types.StringKind
	case Seq:
		return types.SeqKind
	}
	return types.ErrorKind
}

// New wraps a native Go value into a T under the kind system sys.
// The admissible native types are bool, int, float64, string, Seq,
// and T values produced by this package. Wrapping a value of an
// undeclared atomic kind (or of a foreign Go type) is a
// configuration error reported immediately; it is never deferred to
// evaluation time.
func New(sys *types.System, x interface{}) (T, error) {
	switch x := x.(type) {
	case bottom:
		return x, nil
	case bool:
		return x, nil
	case Seq:
		return x, nil
	case int:
		if !sys.Declared(types.IntKind) {
			return nil, errors.E(errors.NotSupported, "values.New", "int", errors.New("kind not declared"))
		}
		return x, nil
	case float64:
		if !sys.Declared(types.FloatKind) {
			return nil, errors.E(errors.NotSupported, "values.New", "float", errors.New("kind not declared"))
		}
		return x, nil
	case string:
		if !sys.Declared(types.StringKind) {
			return nil, errors.E(errors.NotSupported, "values.New", "string", errors.New("kind not declared"))
		}
		return x, nil
	}
	return nil, errors.E(errors.NotSupported, "values.New", errors.Errorf("foreign type %T", x))
}

// Bool extracts a native bool from v. It fails soft: ok is false if
// v is not a boolean.
func Bool(v T) (b, ok bool) {
	b, ok = v.(bool)
	return
}

// Int extracts a native int from v, failing soft on kind mismatch.
func Int(v T) (i int, ok bool) {
	i, ok = v.(int)
	return
}

// Float extracts a native float64 from v, failing soft on kind
// mismatch.
func Float(v T) (f float64, ok bool) {
	f, ok = v.(float64)
	return
}

// String extracts a native string from v, failing soft on kind
// mismatch.
func String(v T) (s string, ok bool) {
	s, ok = v.(string)
	return
}

// AsSeq extracts a sequence view from v, failing soft if v is not a
// sequence.
func AsSeq(v T) (s Seq, ok bool) {
	s, ok = v.(Seq)
	return
}

// Pair returns the two-element sequence ⟨a, b⟩. Binary primitives
// take their operands as pairs.
func Pair(a, b T) Seq {
	return MakeSeq(a, b)
}
