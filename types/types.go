// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package types defines the kind system for fp values. An fp value
// is one of:
//
//	bottom                the undefined value ("⊥")
//	bool                  the type of booleans
//	int                   the type of (machine) integers
//	float                 the type of 64-bit floating point numbers
//	string                the type of (utf-8 encoded) strings
//	seq                   the type of sequences of values
//
// Bottom, booleans, and sequences are part of every fp system. The
// atomic scalar kinds (int, float, string) are admitted per system:
// a System is the immutable set of atomic kinds declared at setup
// time. Declaring an invalid kind set is a configuration error,
// reported by Make; it is never surfaced during evaluation.
package types

import "github.com/grailbio/fp/errors"

// Kind represents a value's kind.
type Kind int

const (
	// ErrorKind is an illegal kind.
	ErrorKind Kind = iota
	// BottomKind is the kind of the undefined value.
	BottomKind
	// BoolKind is the kind of booleans.
	BoolKind
	// IntKind is the kind of integers.
	IntKind
	// FloatKind is the kind of 64-bit floats.
	FloatKind
	// StringKind is the kind of UTF-8 encoded strings.
	StringKind
	// SeqKind is the kind of sequences.
	SeqKind

	kindMax
)

var kindStrings = [kindMax]string{
	ErrorKind:  "error",
	BottomKind: "bottom",
	BoolKind:   "bool",
	IntKind:    "int",
	FloatKind:  "float",
	StringKind: "string",
	SeqKind:    "seq",
}

func (k Kind) String() string {
	if k < 0 || k >= kindMax {
		return "error"
	}
	return kindStrings[k]
}

// Atomic tells whether kind k is an admissible atomic scalar kind,
// i.e., one that may be declared in a System.
func (k Kind) Atomic() bool {
	switch k {
	case IntKind, FloatKind, StringKind:
		return true
	}
	return false
}

// Numeric tells whether kind k supports arithmetic.
func (k Kind) Numeric() bool {
	return k == IntKind || k == FloatKind
}

// A System is an immutable set of declared atomic kinds. Bottom,
// booleans, and sequences are always admitted and need not (and may
// not) be declared. The zero System declares nothing and is not
// valid; Systems are constructed by Make.
type System struct {
	declared [kindMax]bool
	kinds    []Kind
}

// Make constructs a System declaring the provided atomic kinds.
// Make returns an error if no kinds are declared, if a kind is
// declared twice, or if a non-atomic kind (bottom, bool, seq) is
// declared explicitly. These are configuration errors: they are the
// only failures in this package, and they never occur during
// evaluation.
func Make(kinds ...Kind) (*System, error) {
	if len(kinds) == 0 {
		return nil, errors.E(errors.Invalid, "types.Make", errors.New("no atomic kinds declared"))
	}
	sys := &System{}
	for _, k := range kinds {
		if !k.Atomic() {
			return nil, errors.E(errors.NotSupported, "types.Make", errors.New("kind "+k.String()+" is not an atomic kind"))
		}
		if sys.declared[k] {
			return nil, errors.E(errors.Invalid, "types.Make", errors.New("kind "+k.String()+" declared twice"))
		}
		sys.declared[k] = true
		sys.kinds = append(sys.kinds, k)
	}
	return sys, nil
}

// Declared tells whether kind k is declared in the system. Bottom,
// booleans, and sequences are declared in every system.
func (s *System) Declared(k Kind) bool {
	switch k {
	case BottomKind, BoolKind, SeqKind:
		return true
	case ErrorKind:
		return false
	}
	if k < 0 || k >= kindMax {
		return false
	}
	return s.declared[k]
}

// Kinds returns the atomic kinds declared in the system, in
// declaration order.
func (s *System) Kinds() []Kind {
	kinds := make([]Kind, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

// String renders a human-readable description of the system.
func (s *System) String() string {
	str := "system("
	for i, k := range s.kinds {
		if i > 0 {
			str += ", "
		}
		str += k.String()
	}
	return str + ")"
}
