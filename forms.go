// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fp

import "github.com/grailbio/fp/values"

// This file defines the functional forms: combinators that build new
// unary functions from existing ones. The parallel-capable forms
// take their execution Strategy at construction.

// Compose returns the composition f∘g: x ↦ f(g(x)).
func Compose(f, g Func) Func {
	return func(x values.T) values.T {
		return f(g(x))
	}
}

// Construct returns the construction form ⟦f1, …, fk⟧:
// x ↦ ⟨f1(x), …, fk(x)⟩. Under a parallel strategy each fi(x) is
// dispatched as an independent task writing to its pre-assigned
// output slot, so the output order is fixed by index regardless of
// completion order.
func Construct(exec Strategy, fs ...Func) Func {
	return func(x values.T) values.T {
		b := values.NewSeqBuilder(len(fs))
		exec.For(len(fs), func(i int) {
			b.Set(i, fs[i](x))
		})
		return b.Seq()
	}
}

// Condition returns the conditional form p → f; g. Under the
// sequential strategy, p(x) is evaluated first and only the taken
// branch runs. Under a parallel strategy, p, f, and g are evaluated
// speculatively and concurrently, and the untaken branch's
// already-computed result is discarded once p resolves; this trades
// extra computation for latency and is only sound because fp
// functions are free of observable side effects. Bottom or
// non-boolean p(x) resolves to Bottom.
func Condition(exec Strategy, p, f, g Func) Func {
	return func(x values.T) values.T {
		if exec.Parallel() {
			var slots [3]values.T
			exec.For(3, func(i int) {
				switch i {
				case 0:
					slots[0] = p(x)
				case 1:
					slots[1] = f(x)
				case 2:
					slots[2] = g(x)
				}
			})
			b, ok := values.Bool(slots[0])
			if !ok {
				return values.Bottom
			}
			if b {
				return slots[1]
			}
			return slots[2]
		}
		b, ok := values.Bool(p(x))
		if !ok {
			return values.Bottom
		}
		if b {
			return f(x)
		}
		return g(x)
	}
}

// Constant returns the constant form c̄: x ↦ c for any defined x.
// Bottom input still yields Bottom: the form is bottom-preserving
// even though it ignores its argument's value.
func Constant(c values.T) Func {
	return func(x values.T) values.T {
		if values.IsBottom(x) {
			return values.Bottom
		}
		return c
	}
}

// Map returns the apply-to-all form αf: it maps f over a sequence,
// producing a same-length sequence with output[i] = f(input[i]).
// Sequential and parallel strategies produce identical outputs; a
// parallel strategy partitions the indices across workers that each
// write disjoint pre-sized output slots.
func Map(exec Strategy, f Func) Func {
	return func(x values.T) values.T {
		s, ok := values.AsSeq(x)
		if !ok {
			return values.Bottom
		}
		b := values.NewSeqBuilder(s.Len())
		exec.For(s.Len(), func(i int) {
			b.Set(i, f(s.At(i)))
		})
		return b.Seq()
	}
}

// Insert returns the insertion (reduce) form /f without a neutral
// element: it folds a sequence from its first element,
// f(…f(f(⟨x1, x2⟩), x3)…, xn). The empty sequence resolves to
// Bottom. Under a parallel strategy the sequence is partitioned into
// one contiguous chunk per worker; each chunk folds from its own
// first element and the per-chunk partials are folded left to right,
// with empty chunks skipped. Parallel and sequential results agree
// only when f is associative; that is a caller obligation, not an
// engine invariant.
func Insert(exec Strategy, f Func) Func {
	combine := func(a, b values.T) values.T {
		return f(values.Pair(a, b))
	}
	return func(x values.T) values.T {
		s, ok := values.AsSeq(x)
		if !ok || s.Len() == 0 {
			return values.Bottom
		}
		// Empty chunks have no value to seed from; they yield nil
		// partials, which are skipped in the combine phase. (f never
		// returns nil: its failures are Bottom values.)
		partials := exec.Partials(s.Len(), func(lo, hi int) values.T {
			if lo == hi {
				return nil
			}
			acc := s.At(lo)
			for i := lo + 1; i < hi; i++ {
				acc = combine(acc, s.At(i))
			}
			return acc
		})
		var acc values.T
		first := true
		for _, p := range partials {
			if p == nil {
				continue
			}
			if first {
				acc, first = p, false
				continue
			}
			acc = combine(acc, p)
		}
		if first {
			return values.Bottom
		}
		return acc
	}
}

// InsertWith returns the insertion form /f seeded with a neutral
// element: a strict left fold f(…f(f(⟨neutral, x1⟩), x2)…, xn). The
// empty sequence resolves to neutral. Under a parallel strategy the
// sequence is partitioned into one contiguous chunk per worker, each
// chunk is folded sequentially seeded with neutral, and the
// per-chunk partials are then combined sequentially, again seeded
// with neutral. The caller must ensure f is associative and neutral
// is a true identity for it; otherwise the two modes may disagree.
func InsertWith(exec Strategy, f Func, neutral values.T) Func {
	combine := func(a, b values.T) values.T {
		return f(values.Pair(a, b))
	}
	return func(x values.T) values.T {
		s, ok := values.AsSeq(x)
		if !ok {
			return values.Bottom
		}
		if s.Len() == 0 {
			return neutral
		}
		partials := exec.Partials(s.Len(), func(lo, hi int) values.T {
			acc := neutral
			for i := lo; i < hi; i++ {
				acc = combine(acc, s.At(i))
			}
			return acc
		})
		// A single partition is already the exact left fold; the
		// combine phase would otherwise fold an extra neutral in.
		if len(partials) == 1 {
			return partials[0]
		}
		acc := neutral
		for _, p := range partials {
			acc = combine(acc, p)
		}
		return acc
	}
}

// While returns the iteration form (while p f): it repeatedly
// applies x ← f(x). The body is applied once before the guard
// (evaluated on the pre-update x) is checked, so the form is a
// do-while: even an initially false guard sees one application of f.
// This matches the observed behavior of the reference
// implementation. A Bottom x, a Bottom guard, or a non-boolean guard
// resolves to Bottom. Iterations are sequentially data-dependent;
// the form has no parallel mode.
func While(p, f Func) Func {
	return func(x values.T) values.T {
		for {
			if values.IsBottom(x) {
				return values.Bottom
			}
			px := p(x)
			if values.IsBottom(px) {
				return values.Bottom
			}
			x = f(x)
			b, ok := values.Bool(px)
			if !ok {
				return values.Bottom
			}
			if !b {
				return x
			}
		}
	}
}

// Partial adapts a binary-shaped primitive f into a unary function
// by fixing its left operand: Partial(f, x) is y ↦ f(⟨x, y⟩).
func Partial(f Func, x values.T) Func {
	return func(y values.T) values.T {
		return f(values.Pair(x, y))
	}
}
