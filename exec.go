// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fp

import (
	"runtime"

	"github.com/grailbio/base/traverse"
	"github.com/grailbio/fp/values"
	"golang.org/x/sync/errgroup"
)

// A Strategy supplies the execution mechanics shared by every
// parallel-capable form: an index-parallel loop and a partitioned
// reduction. Strategies are per-call configuration, passed into each
// form constructor; there is no process-wide execution toggle.
//
// Both operations are fork-join: the calling goroutine blocks until
// every task completes, and no task outlives the call that spawned
// it. There is no cancellation or timeout; a batch always runs to
// completion. Tasks write to pre-assigned, disjoint output slots, so
// output position is determined by task index, never by completion
// order, and no locking is required.
type Strategy interface {
	// For runs body(i) for each index 0 <= i < n.
	For(n int, body func(i int))

	// Partials partitions [0, n) into contiguous chunks and returns
	// fold(lo, hi) for each chunk, in chunk order. Chunks may be
	// empty when n is smaller than the chunk count; fold must
	// tolerate lo == hi.
	Partials(n int, fold func(lo, hi int) values.T) []values.T

	// Parallel tells whether the strategy dispatches tasks
	// concurrently. Forms with a speculative parallel mode (see
	// Condition) consult it.
	Parallel() bool
}

type sequential struct{}

// Sequential is the sequential execution strategy: loops run inline
// on the calling goroutine and reductions use a single partition.
var Sequential Strategy = sequential{}

func (sequential) For(n int, body func(i int)) {
	for i := 0; i < n; i++ {
		body(i)
	}
}

func (sequential) Partials(n int, fold func(lo, hi int) values.T) []values.T {
	return []values.T{fold(0, n)}
}

func (sequential) Parallel() bool { return false }

type parallel struct {
	workers int
}

// Parallel returns a fork-join execution strategy over the given
// number of workers. If workers <= 0, the number of workers defaults
// to runtime.GOMAXPROCS(0). Partitioned reductions always produce
// exactly one chunk per worker, even when the input is shorter than
// the worker count; the excess chunks are empty.
func Parallel(workers int) Strategy {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return parallel{workers}
}

func (p parallel) For(n int, body func(i int)) {
	// The bodies are total: they resolve failures to Bottom values
	// in their own output slots and never error.
	_ = traverse.Limit(p.workers).Each(n, func(i int) error {
		body(i)
		return nil
	})
}

func (p parallel) Partials(n int, fold func(lo, hi int) values.T) []values.T {
	partials := make([]values.T, p.workers)
	var g errgroup.Group
	for i := 0; i < p.workers; i++ {
		i := i
		lo, hi := i*n/p.workers, (i+1)*n/p.workers
		g.Go(func() error {
			partials[i] = fold(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return partials
}

func (p parallel) Parallel() bool { return true }
