// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package fp implements a small evaluation engine for a point-free
// functional language in the Backus FP tradition. Programs are unary
// functions built by composing a fixed algebra of functional forms
// (Compose, Construct, Condition, Constant, Map, Insert, While) over
// a library of primitive operations, evaluated over the value model
// of package github.com/grailbio/fp/values.
//
// Every primitive and every form is total and bottom-preserving: a
// malformed operand (wrong shape, wrong arity, wrong kind, an
// out-of-range index, division by zero) resolves to values.Bottom
// rather than failing loudly, and Bottom operands propagate. The
// engine's only Go errors are configuration errors reported by the
// typed constructors (Equals, Add, and friends) at setup time.
//
// The parallel-capable forms take an explicit execution Strategy at
// construction: Sequential, or Parallel(workers) for fork-join
// data-parallel evaluation. Both strategies must agree on results
// for well-behaved inputs; see Insert for the caller obligations of
// parallel reduction.
package fp

import "github.com/grailbio/fp/values"

// Func is the type of fp functions: unary functions over values.
// Primitives and forms are all Funcs, composable by the caller.
type Func func(values.T) values.T
