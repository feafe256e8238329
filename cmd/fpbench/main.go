// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command fpbench runs the example FP programs (matrix
// multiplication and even-counting) under the sequential and the
// parallel execution strategy and reports their runtimes. It is an
// external caller of the engine: the core exposes no file format or
// configuration surface of its own.
//
// Usage:
//
//	fpbench [-config fpbench.yaml] [-v]
//
// The configuration file is YAML:
//
//	workers: 8        # parallel worker count; 0 means GOMAXPROCS
//	matrixsize: 100   # multiply two matrixsize × matrixsize matrices
//	evens: 1000000    # count evens in ⟨0, …, evens-1⟩
//	rounds: 3         # repetitions per benchmark; best time wins
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/grailbio/fp"
	"github.com/grailbio/fp/log"
	"github.com/grailbio/fp/types"
	"github.com/grailbio/fp/values"
	yaml "gopkg.in/yaml.v2"
)

type config struct {
	Workers    int `yaml:"workers"`
	MatrixSize int `yaml:"matrixsize"`
	Evens      int `yaml:"evens"`
	Rounds     int `yaml:"rounds"`
}

var defaultConfig = config{
	Workers:    0,
	MatrixSize: 100,
	Evens:      1000000,
	Rounds:     3,
}

func main() {
	log.Std.Level = log.InfoLevel
	configFile := flag.String("config", "", "YAML benchmark configuration")
	verbose := flag.Bool("v", false, "verbose (debug) logging")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fpbench [-config fpbench.yaml] [-v]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		log.Std.Level = log.DebugLevel
	}

	cfg := defaultConfig
	if *configFile != "" {
		b, err := ioutil.ReadFile(*configFile)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Fatalf("parse config %s: %v", *configFile, err)
		}
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	log.Debugf("config: %+v", cfg)

	sys, err := types.Make(types.IntKind)
	if err != nil {
		log.Fatal(err)
	}

	par := fp.Parallel(cfg.Workers)
	benchmarks := []struct {
		name string
		prog func(exec fp.Strategy) (fp.Func, values.T)
	}{
		{"matmul", func(exec fp.Strategy) (fp.Func, values.T) {
			return matMul(sys, exec), matrixPair(cfg.MatrixSize)
		}},
		{"evens", func(exec fp.Strategy) (fp.Func, values.T) {
			return countEvens(sys, exec), iota(cfg.Evens)
		}},
	}
	for _, b := range benchmarks {
		seqF, seqIn := b.prog(fp.Sequential)
		parF, parIn := b.prog(par)
		seq := best(cfg.Rounds, seqF, seqIn)
		parT := best(cfg.Rounds, parF, parIn)
		speedup := float64(seq) / float64(parT)
		log.Printf("%s: sequential %v, parallel %v, speedup %.2fx", b.name, seq, parT, speedup)
	}
}

// best runs f(x) the given number of times and returns the best
// elapsed time. Results of the two strategies must agree, so the
// value itself is reported only under debug logging.
func best(rounds int, f fp.Func, x values.T) time.Duration {
	var min time.Duration
	for i := 0; i < rounds; i++ {
		start := time.Now()
		v := f(x)
		elapsed := time.Since(start)
		if i == 0 || elapsed < min {
			min = elapsed
		}
		if log.At(log.DebugLevel) && i == 0 {
			log.Debugf("result: %s", values.Sprint(v))
		}
	}
	return min
}

// matMul builds IP = /+ ∘ α× ∘ trans and
// MM = α(α IP) ∘ α distl ∘ distr ∘ [1, trans∘2].
func matMul(sys *types.System, exec fp.Strategy) fp.Func {
	add, err := fp.Add(sys, types.IntKind)
	if err != nil {
		log.Fatal(err)
	}
	mul, err := fp.Mul(sys, types.IntKind)
	if err != nil {
		log.Fatal(err)
	}
	ip := fp.Compose(fp.Insert(exec, add), fp.Compose(fp.Map(exec, mul), fp.Trans))
	return fp.Compose(fp.Map(exec, fp.Map(exec, ip)),
		fp.Compose(fp.Map(exec, fp.Distl(exec)),
			fp.Compose(fp.Distr(exec),
				fp.Construct(exec, fp.Select(1), fp.Compose(fp.Trans, fp.Select(2))))))
}

// countEvens maps integers to evenness booleans, booleans to 0/1,
// and sums.
func countEvens(sys *types.System, exec fp.Strategy) fp.Func {
	add, err := fp.Add(sys, types.IntKind)
	if err != nil {
		log.Fatal(err)
	}
	isEven := func(x values.T) values.T {
		i, ok := values.Int(x)
		if !ok {
			return values.Bottom
		}
		return i%2 == 0
	}
	toInt := fp.Condition(exec, fp.Identity, fp.Constant(1), fp.Constant(0))
	return fp.Compose(fp.InsertWith(exec, add, 0),
		fp.Compose(fp.Map(exec, toInt), fp.Map(exec, isEven)))
}

// matrixPair builds the ⟨M, N⟩ input of the matrix benchmark:
// M[i][j] = i and N[i][j] = i+j, as in the reference driver.
func matrixPair(size int) values.T {
	m := make([]values.T, size)
	n := make([]values.T, size)
	for i := 0; i < size; i++ {
		mrow := make([]values.T, size)
		nrow := make([]values.T, size)
		for j := 0; j < size; j++ {
			mrow[j] = i
			nrow[j] = i + j
		}
		m[i] = values.MakeSeq(mrow...)
		n[i] = values.MakeSeq(nrow...)
	}
	return values.Pair(values.MakeSeq(m...), values.MakeSeq(n...))
}

// iota builds the sequence ⟨0, 1, …, n-1⟩.
func iota(n int) values.T {
	vs := make([]values.T, n)
	for i := range vs {
		vs[i] = i
	}
	return values.MakeSeq(vs...)
}
