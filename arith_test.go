// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fp

import (
	"testing"

	"github.com/grailbio/fp/errors"
	"github.com/grailbio/fp/types"
	"github.com/grailbio/fp/values"
)

func testSystem(t *testing.T) *types.System {
	t.Helper()
	sys, err := types.Make(types.IntKind, types.FloatKind, types.StringKind)
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func mustFunc(t *testing.T) func(Func, error) Func {
	return func(f Func, err error) Func {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return f
	}
}

func TestArithInt(t *testing.T) {
	sys := testSystem(t)
	add := mustFunc(t)(Add(sys, types.IntKind))
	sub := mustFunc(t)(Sub(sys, types.IntKind))
	mul := mustFunc(t)(Mul(sys, types.IntKind))
	div := mustFunc(t)(Div(sys, types.IntKind))
	for _, c := range []struct {
		name string
		f    Func
		x    values.T
		want values.T
	}{
		{"add", add, values.Pair(2, 3), 5},
		{"sub", sub, values.Pair(2, 3), -1},
		{"mul", mul, values.Pair(2, 3), 6},
		{"div", div, values.Pair(7, 2), 3},
		{"div by zero", div, values.Pair(7, 0), values.Bottom},
		{"add mixed kinds", add, values.Pair(2, 3.0), values.Bottom},
		{"add strings", add, values.Pair("a", "b"), values.Bottom},
		{"add bottom operand", add, values.Pair(values.Bottom, 3), values.Bottom},
		{"add non-pair", add, values.MakeSeq(1, 2, 3), values.Bottom},
		{"add atom", add, 1, values.Bottom},
		{"add bottom", add, values.Bottom, values.Bottom},
	} {
		expect(t, c.name, c.f(c.x), c.want)
	}
}

func TestArithFloat(t *testing.T) {
	sys := testSystem(t)
	add := mustFunc(t)(Add(sys, types.FloatKind))
	div := mustFunc(t)(Div(sys, types.FloatKind))
	expect(t, "add", add(values.Pair(1.5, 2.25)), 3.75)
	expect(t, "div", div(values.Pair(7.0, 2.0)), 3.5)
	expect(t, "div by zero", div(values.Pair(7.0, 0.0)), values.Bottom)
	expect(t, "int operands", add(values.Pair(1, 2)), values.Bottom)
}

// Arithmetic constructors report configuration errors at setup time:
// undeclared and non-numeric kinds never get as far as evaluation.
func TestArithConfig(t *testing.T) {
	sys, err := types.Make(types.IntKind)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Add(sys, types.FloatKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("undeclared kind: got %v, want NotSupported", err)
	}
	if _, err := Add(sys, types.StringKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("non-numeric kind: got %v, want NotSupported", err)
	}
	if _, err := Mul(sys, types.BoolKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("bool kind: got %v, want NotSupported", err)
	}
	if _, err := Div(sys, types.SeqKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("seq kind: got %v, want NotSupported", err)
	}
}

func TestEquals(t *testing.T) {
	sys := testSystem(t)
	eq := mustFunc(t)(Equals(sys, types.IntKind))
	for _, c := range []struct {
		name string
		x    values.T
		want values.T
	}{
		{"equal atoms", values.Pair(3, 3), true},
		{"unequal atoms", values.Pair(3, 4), false},
		{"equal seqs", values.Pair(values.MakeSeq(1, 2), values.MakeSeq(1, 2)), true},
		{"unequal seqs", values.Pair(values.MakeSeq(1, 2), values.MakeSeq(1, 3)), false},
		{"length mismatch", values.Pair(values.MakeSeq(1), values.MakeSeq(1, 2)), false},
		{"nested", values.Pair(
			values.MakeSeq(values.MakeSeq(1), 2),
			values.MakeSeq(values.MakeSeq(1), 2)), true},
		{"atom vs seq", values.Pair(1, values.MakeSeq(1)), false},
		// Atoms of a kind other than the configured one are unequal.
		{"foreign kind", values.Pair("a", "a"), false},
		{"bottom operand", values.Pair(values.Bottom, 1), values.Bottom},
		{"nested bottom", values.Pair(values.MakeSeq(1, values.Bottom), values.MakeSeq(1, 2)), values.Bottom},
		{"non-pair", values.MakeSeq(1, 2, 3), values.Bottom},
		{"bottom input", values.Bottom, values.Bottom},
	} {
		expect(t, c.name, eq(c.x), c.want)
	}
}

func TestEqualsString(t *testing.T) {
	sys := testSystem(t)
	eq := mustFunc(t)(Equals(sys, types.StringKind))
	expect(t, "equal strings", eq(values.Pair("a", "a")), true)
	expect(t, "unequal strings", eq(values.Pair("a", "b")), false)
	expect(t, "ints under string equality", eq(values.Pair(1, 1)), false)
}

func TestEqualsConfig(t *testing.T) {
	sys, err := types.Make(types.IntKind)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Equals(sys, types.StringKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("undeclared kind: got %v, want NotSupported", err)
	}
	if _, err := Equals(sys, types.SeqKind); !errors.Is(errors.NotSupported, err) {
		t.Errorf("seq kind: got %v, want NotSupported", err)
	}
	if _, err := Equals(sys, types.BoolKind); err != nil {
		t.Errorf("bool kind: got %v, want nil", err)
	}
}
