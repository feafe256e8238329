// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fp

import (
	"github.com/grailbio/fp/errors"
	"github.com/grailbio/fp/types"
	"github.com/grailbio/fp/values"
)

// This file defines the typed primitives: structural equality and
// arithmetic over a declared atomic kind. Their constructors check
// the kind against the system at setup time and return a
// configuration error for undeclared or unsupported kinds; the
// returned Funcs themselves never error.

// Equals returns the deep structural equality primitive over atoms
// of the given kind. Its input is a pair; two atoms are equal iff
// both are of the given kind and their native values are equal, and
// two sequences are compared pairwise. A Bottom anywhere in the
// recursive comparison resolves the whole comparison to Bottom, not
// to false.
func Equals(sys *types.System, kind types.Kind) (Func, error) {
	if kind != types.BoolKind && !kind.Atomic() {
		return nil, errors.E(errors.NotSupported, "fp.Equals", kind.String(), errors.New("not an atomic kind"))
	}
	if !sys.Declared(kind) {
		return nil, errors.E(errors.NotSupported, "fp.Equals", kind.String(), errors.New("kind not declared"))
	}
	var eq func(y, z values.T) values.T
	eq = func(y, z values.T) values.T {
		if values.IsBottom(y) || values.IsBottom(z) {
			return values.Bottom
		}
		ys, yok := values.AsSeq(y)
		zs, zok := values.AsSeq(z)
		if yok && zok {
			if ys.Len() != zs.Len() {
				return false
			}
			for i := 0; i < ys.Len(); i++ {
				r := eq(ys.At(i), zs.At(i))
				if values.IsBottom(r) {
					return values.Bottom
				}
				if !r.(bool) {
					return false
				}
			}
			return true
		}
		if yok || zok {
			return false
		}
		if values.Kind(y) != kind || values.Kind(z) != kind {
			return false
		}
		switch kind {
		case types.BoolKind:
			return y.(bool) == z.(bool)
		case types.IntKind:
			return y.(int) == z.(int)
		case types.FloatKind:
			return y.(float64) == z.(float64)
		case types.StringKind:
			return y.(string) == z.(string)
		}
		return values.Bottom
	}
	return func(x values.T) values.T {
		y, z, ok := pair(x)
		if !ok {
			return values.Bottom
		}
		return eq(y, z)
	}, nil
}

func binop(sys *types.System, kind types.Kind, op string, intFn func(a, b int) values.T, floatFn func(a, b float64) values.T) (Func, error) {
	if !kind.Numeric() {
		return nil, errors.E(errors.NotSupported, op, kind.String(), errors.New("arithmetic requires a numeric kind"))
	}
	if !sys.Declared(kind) {
		return nil, errors.E(errors.NotSupported, op, kind.String(), errors.New("kind not declared"))
	}
	return func(x values.T) values.T {
		y, z, ok := pair(x)
		if !ok {
			return values.Bottom
		}
		switch kind {
		case types.IntKind:
			a, aok := values.Int(y)
			b, bok := values.Int(z)
			if !aok || !bok {
				return values.Bottom
			}
			return intFn(a, b)
		case types.FloatKind:
			a, aok := values.Float(y)
			b, bok := values.Float(z)
			if !aok || !bok {
				return values.Bottom
			}
			return floatFn(a, b)
		}
		return values.Bottom
	}, nil
}

// Add returns the addition primitive over atoms of the given numeric
// kind. Both operands of the input pair must be atoms of that kind.
func Add(sys *types.System, kind types.Kind) (Func, error) {
	return binop(sys, kind, "fp.Add",
		func(a, b int) values.T { return a + b },
		func(a, b float64) values.T { return a + b })
}

// Sub returns the subtraction primitive over atoms of the given
// numeric kind.
func Sub(sys *types.System, kind types.Kind) (Func, error) {
	return binop(sys, kind, "fp.Sub",
		func(a, b int) values.T { return a - b },
		func(a, b float64) values.T { return a - b })
}

// Mul returns the multiplication primitive over atoms of the given
// numeric kind.
func Mul(sys *types.System, kind types.Kind) (Func, error) {
	return binop(sys, kind, "fp.Mul",
		func(a, b int) values.T { return a * b },
		func(a, b float64) values.T { return a * b })
}

// Div returns the division primitive over atoms of the given numeric
// kind. Division by zero resolves to Bottom for both integer and
// floating point kinds.
func Div(sys *types.System, kind types.Kind) (Func, error) {
	return binop(sys, kind, "fp.Div",
		func(a, b int) values.T {
			if b == 0 {
				return values.Bottom
			}
			return a / b
		},
		func(a, b float64) values.T {
			if b == 0 {
				return values.Bottom
			}
			return a / b
		})
}
