// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fp

import "github.com/grailbio/fp/values"

// This file defines the structural primitives of the engine. All of
// them are pure, total, and bottom-preserving. Binary primitives
// take their two operands as a pair, i.e., a two-element sequence.
// Sequence indices are 1-based in the domain semantics.

// pair destructures x into the two elements of a pair. ok is false
// if x is not a two-element sequence.
func pair(x values.T) (a, b values.T, ok bool) {
	s, isSeq := values.AsSeq(x)
	if !isSeq || s.Len() != 2 {
		return nil, nil, false
	}
	return s.At(0), s.At(1), true
}

// Identity returns its argument unchanged, Bottom included.
func Identity(x values.T) values.T {
	return x
}

// Select returns the primitive selecting the i'th (1-based) element
// of a sequence. It resolves to Bottom if i is zero, i exceeds the
// sequence length, or the input is not a sequence.
func Select(i int) Func {
	return func(x values.T) values.T {
		s, ok := values.AsSeq(x)
		if !ok || i <= 0 || i > s.Len() {
			return values.Bottom
		}
		return s.At(i - 1)
	}
}

// RSelect returns the primitive selecting the i'th (1-based) element
// of a sequence counted from the right.
func RSelect(i int) Func {
	return func(x values.T) values.T {
		s, ok := values.AsSeq(x)
		if !ok || i <= 0 || i > s.Len() {
			return values.Bottom
		}
		return s.At(s.Len() - i)
	}
}

// Tail drops the first element of a sequence. The empty sequence has
// no tail; it resolves to Bottom.
func Tail(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok || s.Len() == 0 {
		return values.Bottom
	}
	return s.Drop(1)
}

// RTail drops the last element of a sequence, resolving to Bottom on
// empty input.
func RTail(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok || s.Len() == 0 {
		return values.Bottom
	}
	return s.Take(s.Len() - 1)
}

// Reverse reverses a sequence.
func Reverse(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	return s.Reverse()
}

// Rotl rotates a sequence one position to the left. Sequences
// shorter than two elements are returned unchanged.
func Rotl(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	if s.Len() < 2 {
		return x
	}
	return s.Drop(1).PushBack(s.At(0))
}

// Rotr rotates a sequence one position to the right. Sequences
// shorter than two elements are returned unchanged.
func Rotr(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	if s.Len() < 2 {
		return x
	}
	return s.Take(s.Len() - 1).PushFront(s.At(s.Len() - 1))
}

// Length returns the length of a sequence as an integer atom.
func Length(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	return s.Len()
}

// Null tests a sequence for emptiness.
func Null(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	return s.Len() == 0
}

// IsAtom tests whether its argument is an atom. Following Backus,
// the empty sequence counts as an atom.
func IsAtom(x values.T) values.T {
	if values.IsBottom(x) {
		return values.Bottom
	}
	if s, ok := values.AsSeq(x); ok {
		return s.Len() == 0
	}
	return true
}

// Not negates a boolean.
func Not(x values.T) values.T {
	b, ok := values.Bool(x)
	if !ok {
		return values.Bottom
	}
	return !b
}

// And computes the conjunction of a pair of booleans. Either operand
// being Bottom or non-boolean resolves to Bottom.
func And(x values.T) values.T {
	y, z, ok := pair(x)
	if !ok {
		return values.Bottom
	}
	yb, yok := values.Bool(y)
	zb, zok := values.Bool(z)
	if !yok || !zok {
		return values.Bottom
	}
	return yb && zb
}

// Or computes the disjunction of a pair of booleans.
func Or(x values.T) values.T {
	y, z, ok := pair(x)
	if !ok {
		return values.Bottom
	}
	yb, yok := values.Bool(y)
	zb, zok := values.Bool(z)
	if !yok || !zok {
		return values.Bottom
	}
	return yb || zb
}

// Apndl prepends an element to a sequence: ⟨y, ⟨z1, …, zn⟩⟩ becomes
// ⟨y, z1, …, zn⟩. The right operand must be a sequence.
func Apndl(x values.T) values.T {
	y, zs, ok := pair(x)
	if !ok {
		return values.Bottom
	}
	s, ok := values.AsSeq(zs)
	if !ok {
		return values.Bottom
	}
	return s.PushFront(y)
}

// Apndr appends an element to a sequence: ⟨⟨y1, …, yn⟩, z⟩ becomes
// ⟨y1, …, yn, z⟩. The left operand must be a sequence.
func Apndr(x values.T) values.T {
	ys, z, ok := pair(x)
	if !ok {
		return values.Bottom
	}
	s, ok := values.AsSeq(ys)
	if !ok {
		return values.Bottom
	}
	return s.PushBack(z)
}

// Distl returns the distribute-left primitive: ⟨y, ⟨z1, …, zn⟩⟩
// becomes ⟨⟨y, z1⟩, …, ⟨y, zn⟩⟩. Each output element depends only on
// y and its own zi, so the elements are produced through the
// strategy's index loop, each task writing its pre-assigned slot.
func Distl(exec Strategy) Func {
	return func(x values.T) values.T {
		y, zs, ok := pair(x)
		if !ok {
			return values.Bottom
		}
		s, ok := values.AsSeq(zs)
		if !ok {
			return values.Bottom
		}
		b := values.NewSeqBuilder(s.Len())
		exec.For(s.Len(), func(i int) {
			b.Set(i, values.Pair(y, s.At(i)))
		})
		return b.Seq()
	}
}

// Distr returns the distribute-right primitive, the mirror of Distl:
// ⟨⟨y1, …, yn⟩, z⟩ becomes ⟨⟨y1, z⟩, …, ⟨yn, z⟩⟩.
func Distr(exec Strategy) Func {
	return func(x values.T) values.T {
		ys, z, ok := pair(x)
		if !ok {
			return values.Bottom
		}
		s, ok := values.AsSeq(ys)
		if !ok {
			return values.Bottom
		}
		b := values.NewSeqBuilder(s.Len())
		exec.For(s.Len(), func(i int) {
			b.Set(i, values.Pair(s.At(i), z))
		})
		return b.Seq()
	}
}

// Trans transposes a sequence of row sequences. The output length is
// the length of the shortest row: ragged inputs are silently
// truncated. Any row that is not a sequence resolves the whole
// operation to Bottom.
func Trans(x values.T) values.T {
	s, ok := values.AsSeq(x)
	if !ok {
		return values.Bottom
	}
	rows := make([]values.Seq, s.Len())
	cols := 0
	for i := 0; i < s.Len(); i++ {
		row, ok := values.AsSeq(s.At(i))
		if !ok {
			return values.Bottom
		}
		rows[i] = row
		if i == 0 || row.Len() < cols {
			cols = row.Len()
		}
	}
	b := values.NewSeqBuilder(cols)
	for j := 0; j < cols; j++ {
		col := values.NewSeqBuilder(len(rows))
		for i, row := range rows {
			col.Set(i, row.At(j))
		}
		b.Set(j, col.Seq())
	}
	return b.Seq()
}
