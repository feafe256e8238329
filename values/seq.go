// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package values

// Seq is the type of sequence values: an immutable, persistent,
// ordered collection of values. Each element is an independently
// boxed handle, so that the recursive value type (a sequence
// containing sequences containing ...) has a finite representation,
// and so that derived sequences share unmodified elements instead of
// deep-copying them: Drop and Take share the backing store outright,
// and the push operations copy handles only.
//
// Seq's own methods are 0-indexed; the 1-indexed domain semantics
// live in the primitive library. The zero Seq is a valid empty
// sequence.
type Seq struct {
	elems []*T
}

func box(v T) *T {
	b := v
	return &b
}

// MakeSeq constructs a sequence from the provided values.
func MakeSeq(vs ...T) Seq {
	elems := make([]*T, len(vs))
	for i, v := range vs {
		elems[i] = box(v)
	}
	return Seq{elems}
}

// Len returns the number of elements in the sequence.
func (s Seq) Len() int { return len(s.elems) }

// At returns the element at (0-based) index i. The index must be in
// range; primitives perform their own range checks and resolve
// violations to Bottom before indexing.
func (s Seq) At(i int) T { return *s.elems[i] }

// Drop returns the sequence without its first n elements, sharing
// the backing store with s.
func (s Seq) Drop(n int) Seq {
	return Seq{s.elems[n:]}
}

// Take returns the sequence of the first n elements, sharing the
// backing store with s.
func (s Seq) Take(n int) Seq {
	return Seq{s.elems[:n:n]}
}

// PushFront returns a new sequence with v prepended. The existing
// element handles are shared, not copied.
func (s Seq) PushFront(v T) Seq {
	elems := make([]*T, len(s.elems)+1)
	elems[0] = box(v)
	copy(elems[1:], s.elems)
	return Seq{elems}
}

// PushBack returns a new sequence with v appended. The existing
// element handles are shared, not copied.
func (s Seq) PushBack(v T) Seq {
	elems := make([]*T, len(s.elems)+1)
	copy(elems, s.elems)
	elems[len(s.elems)] = box(v)
	return Seq{elems}
}

// Reverse returns the sequence with its elements in reverse order.
func (s Seq) Reverse() Seq {
	n := len(s.elems)
	elems := make([]*T, n)
	for i, e := range s.elems {
		elems[n-1-i] = e
	}
	return Seq{elems}
}

// Values returns a snapshot of the sequence's elements as a native
// slice.
func (s Seq) Values() []T {
	vs := make([]T, len(s.elems))
	for i, e := range s.elems {
		vs[i] = *e
	}
	return vs
}

// A SeqBuilder assembles a sequence of known length out of
// positional writes. Builders are the write targets of data-parallel
// forms: each concurrently executing task owns a disjoint set of
// slots for the duration of the call, so no synchronization is
// needed, and output order is fixed by index rather than by task
// completion order. Slots left unset read as Bottom.
type SeqBuilder struct {
	elems []*T
}

// NewSeqBuilder returns a builder for a sequence of n elements.
func NewSeqBuilder(n int) *SeqBuilder {
	return &SeqBuilder{elems: make([]*T, n)}
}

// Len returns the number of slots in the builder.
func (b *SeqBuilder) Len() int { return len(b.elems) }

// Set writes v into (0-based) slot i. Each slot must be written by
// at most one task.
func (b *SeqBuilder) Set(i int, v T) {
	b.elems[i] = box(v)
}

// Seq freezes the builder into a sequence. The builder must not be
// written after Seq is called.
func (b *SeqBuilder) Seq() Seq {
	for i, e := range b.elems {
		if e == nil {
			b.elems[i] = box(Bottom)
		}
	}
	return Seq{b.elems}
}
