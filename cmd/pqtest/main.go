/*
Command pqtest is a test harness for the priority queue variants.

Without flags it starts an interactive session on a single queue:

	pqtest --variant heap

With --bench it runs a speed test over all variants instead, feeding them with
random words or the words of a text file:

	pqtest --bench --words 100000 --iterations 3
	pqtest --bench --input lorem.html --json

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/npillmayer/pqueue"
	_ "github.com/npillmayer/pqueue/baseline"
	"github.com/npillmayer/pqueue/bench"
	_ "github.com/npillmayer/pqueue/fibheap"
	"github.com/npillmayer/pqueue/wordsource"
)

func main() {
	opts := NewOptions()
	opts.AddFlags(pflag.CommandLine)
	pflag.Parse()
	if err := opts.Complete(); err != nil {
		fmt.Fprintf(os.Stderr, "pqtest: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(opts.traceLevel)
	color.NoColor = !opts.useColor(term.IsTerminal(int(os.Stdout.Fd())))

	reg := prometheus.NewRegistry()
	if opts.MetricsAddr != "" {
		go serveMetrics(opts.MetricsAddr, reg)
	}
	if opts.Bench {
		os.Exit(runBench(opts, reg, os.Stdout))
	}
	metrics, err := pqueue.NewMetrics(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pqtest: %v\n", err)
		os.Exit(1)
	}
	r, err := newREPL(os.Stdin, os.Stdout, opts.Variant, metrics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pqtest: %v\n", err)
		os.Exit(2)
	}
	r.seed(opts.Seed)
	r.loop()
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	gtrace.CoreTracer.Infof("serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		gtrace.CoreTracer.Errorf("metrics listener: %v", err)
	}
}

// runBench runs the speed test and writes the report to w. It returns the
// process exit code.
func runBench(opts *Options, reg prometheus.Registerer, w io.Writer) int {
	p := newPrinter(w)
	cfg := bench.Config{
		Variants:   opts.Variants,
		Iterations: opts.Iterations,
		Words:      opts.Words,
		WordLength: opts.WordLength,
		Timeout:    opts.Timeout,
		Seed:       opts.Seed,
		Registerer: reg,
	}
	if opts.Input != "" {
		words, err := wordsource.Load(opts.Input)
		if err != nil {
			p.failure(err)
			return 1
		}
		cfg.Corpus = words
	}
	runner, err := bench.NewRunner(cfg)
	if err != nil {
		p.failure(err)
		return 2
	}
	events := runner.Subscribe(context.Background(), 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if ev.Done && !opts.JSON {
				p.info("%-18s finished after %d iterations", ev.Variant, ev.Iteration)
			}
		}
	}()
	report, err := runner.Run()
	<-done
	if report != nil {
		if opts.JSON {
			report.WriteJSON(w)
		} else {
			report.WriteText(w)
		}
	}
	if err != nil {
		p.failure(err)
		return 1
	}
	return 0
}
