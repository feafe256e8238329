// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package values

import "testing"

func TestSeqOps(t *testing.T) {
	s := MakeSeq(10, 20, 30)
	for _, c := range []struct {
		name string
		got  Seq
		want Seq
	}{
		{"drop", s.Drop(1), MakeSeq(20, 30)},
		{"take", s.Take(2), MakeSeq(10, 20)},
		{"pushfront", s.PushFront(5), MakeSeq(5, 10, 20, 30)},
		{"pushback", s.PushBack(40), MakeSeq(10, 20, 30, 40)},
		{"reverse", s.Reverse(), MakeSeq(30, 20, 10)},
		{"empty drop", s.Drop(3), MakeSeq()},
	} {
		if eq := Equal(c.got, c.want); eq != T(true) {
			t.Errorf("%s: got %s, want %s", c.name, Sprint(c.got), Sprint(c.want))
		}
	}
	// The source sequence is never mutated.
	if eq := Equal(s, MakeSeq(10, 20, 30)); eq != T(true) {
		t.Errorf("source mutated: %s", Sprint(s))
	}
}

func TestSeqPersistence(t *testing.T) {
	s := MakeSeq(1, 2, 3, 4)
	u := s.Drop(1)
	v := s.Take(2)
	w := v.PushBack(99)
	if got, want := Sprint(u), "[2, 3, 4]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := Sprint(v), "[1, 2]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := Sprint(w), "[1, 2, 99]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := Sprint(s), "[1, 2, 3, 4]"; got != want {
		t.Errorf("derived op mutated source: got %v, want %v", got, want)
	}
}

func TestSeqRecursive(t *testing.T) {
	inner := MakeSeq(1, 2)
	outer := MakeSeq(inner, Bottom)
	s, ok := AsSeq(outer.At(0))
	if !ok || s.Len() != 2 {
		t.Fatal("nested sequence lost")
	}
	if !IsBottom(outer.At(1)) {
		t.Error("bottom element lost")
	}
}

func TestSeqValues(t *testing.T) {
	s := MakeSeq(1, 2)
	vs := s.Values()
	if len(vs) != 2 || vs[0] != 1 || vs[1] != 2 {
		t.Errorf("got %v", vs)
	}
	vs[0] = 99
	if got, want := s.At(0), T(1); got != want {
		t.Errorf("snapshot aliases sequence: got %v, want %v", got, want)
	}
}

func TestSeqBuilder(t *testing.T) {
	b := NewSeqBuilder(3)
	b.Set(2, 30)
	b.Set(0, 10)
	s := b.Seq()
	if got, want := Sprint(s), "[10, bottom, 30]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
