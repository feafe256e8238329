// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package values

import "testing"

func TestEqual(t *testing.T) {
	for _, c := range []struct {
		v, w T
		want T
	}{
		{1, 1, true},
		{1, 2, false},
		{1.5, 1.5, true},
		{"a", "a", true},
		{"a", "b", false},
		{true, true, true},
		// Atoms of different kinds are unequal, not errors.
		{1, 1.0, false},
		{1, "1", false},
		{true, 1, false},
		// Atom versus sequence is unequal.
		{1, MakeSeq(1), false},
		{MakeSeq(), MakeSeq(), true},
		{MakeSeq(1, 2), MakeSeq(1, 2), true},
		{MakeSeq(1, 2), MakeSeq(2, 1), false},
		{MakeSeq(1, 2), MakeSeq(1, 2, 3), false},
		{MakeSeq(MakeSeq(1, 2), 3), MakeSeq(MakeSeq(1, 2), 3), true},
		{MakeSeq(MakeSeq(1, 2), 3), MakeSeq(MakeSeq(1, 9), 3), false},
		// Bottom anywhere in the comparison yields Bottom, not false.
		{Bottom, 1, Bottom},
		{1, Bottom, Bottom},
		{Bottom, Bottom, Bottom},
		{MakeSeq(1, Bottom), MakeSeq(1, 2), Bottom},
		{MakeSeq(MakeSeq(Bottom)), MakeSeq(MakeSeq(Bottom)), Bottom},
		// Unequal lengths are detected before elements are compared.
		{MakeSeq(Bottom), MakeSeq(Bottom, Bottom), false},
	} {
		if got, want := Equal(c.v, c.w), c.want; got != want {
			t.Errorf("Equal(%s, %s): got %v, want %v", Sprint(c.v), Sprint(c.w), got, want)
		}
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range []T{0, 42, -1, 1.25, "", "x", true, false, MakeSeq(), MakeSeq(1, MakeSeq(2, "a"), true)} {
		if got := Equal(v, v); got != T(true) {
			t.Errorf("Equal(%s, %s): got %v, want true", Sprint(v), Sprint(v), got)
		}
	}
}

func TestSprint(t *testing.T) {
	for _, c := range []struct {
		v    T
		want string
	}{
		{Bottom, "bottom"},
		{true, "true"},
		{42, "42"},
		{1.5, "1.5"},
		{"hi", `"hi"`},
		{MakeSeq(1, MakeSeq(2, 3), Bottom), "[1, [2, 3], bottom]"},
	} {
		if got, want := Sprint(c.v), c.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
