package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/pqueue/bench"
	"github.com/npillmayer/pqueue/fibheap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
)

// Options contains the command-line configuration of pqtest.
type Options struct {
	//
	// Interactive mode.
	//
	Variant string // Queue variant to work on.
	//
	// Benchmark mode.
	//
	Bench      bool          // Run the speed test instead of the REPL.
	Variants   []string      // Variants to benchmark, empty for all.
	Words      int           // Words per iteration.
	WordLength int           // Length of random words.
	Iterations int           // Iterations per variant.
	Timeout    time.Duration // Timeout per variant.
	Seed       int64         // Seed for random words.
	Input      string        // Text or HTML file to take the words from.
	JSON       bool          // Print the report as JSON.
	//
	// Diagnostics.
	//
	TraceLevel  string // error, info or debug.
	Color       string // auto, always or never.
	MetricsAddr string // Address to expose Prometheus metrics on.

	traceLevel tracing.TraceLevel
}

// NewOptions returns a new Options struct initialized with default values.
func NewOptions() *Options {
	return &Options{
		Variant:    fibheap.VariantName,
		Words:      bench.DefaultWords,
		WordLength: bench.DefaultWordLength,
		Iterations: bench.DefaultIterations,
		Timeout:    bench.DefaultTimeout,
		Seed:       time.Now().UnixNano(),
		TraceLevel: "error",
		Color:      "auto",
	}
}

// AddFlags binds the Options fields to command-line flags on the given FlagSet.
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}
	fs.StringVarP(&opts.Variant, "variant", "q", opts.Variant,
		"Priority queue variant for interactive mode.")
	fs.BoolVarP(&opts.Bench, "bench", "b", opts.Bench,
		"Run the speed test over all variants and exit.")
	fs.StringSliceVar(&opts.Variants, "bench-variants", opts.Variants,
		"Comma separated list of variants to benchmark. Defaults to all.")
	fs.IntVar(&opts.Words, "words", opts.Words,
		"Number of words inserted and extracted per iteration.")
	fs.IntVar(&opts.WordLength, "word-length", opts.WordLength,
		"Length of randomly generated words.")
	fs.IntVar(&opts.Iterations, "iterations", opts.Iterations,
		"Benchmark iterations per variant.")
	fs.DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Maximum time spent on a single variant.")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed,
		"Seed for random words.")
	fs.StringVarP(&opts.Input, "input", "i", opts.Input,
		"Text or HTML file to take benchmark words from instead of random words.")
	fs.BoolVar(&opts.JSON, "json", opts.JSON,
		"Print the benchmark report as JSON.")
	fs.StringVarP(&opts.TraceLevel, "trace", "t", opts.TraceLevel,
		"Trace level: error, info or debug.")
	fs.StringVar(&opts.Color, "color", opts.Color,
		"Colored output: auto, always or never.")
	fs.StringVar(&opts.MetricsAddr, "metrics-addr", opts.MetricsAddr,
		"Address to serve Prometheus metrics on, e.g. ':9090'. Empty disables metrics.")
}

// Complete checks and post-processes parsed command-line arguments.
func (opts *Options) Complete() error {
	switch strings.ToLower(opts.TraceLevel) {
	case "error":
		opts.traceLevel = tracing.LevelError
	case "info":
		opts.traceLevel = tracing.LevelInfo
	case "debug":
		opts.traceLevel = tracing.LevelDebug
	default:
		return fmt.Errorf("invalid trace level %q", opts.TraceLevel)
	}
	switch opts.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q", opts.Color)
	}
	if opts.Words <= 0 || opts.WordLength <= 0 || opts.Iterations <= 0 {
		return fmt.Errorf("words, word length and iterations must be positive")
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// useColor decides on colored output. isTerminal tells whether output goes
// to a terminal.
func (opts *Options) useColor(isTerminal bool) bool {
	switch opts.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal
}
