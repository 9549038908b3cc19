package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/pqueue"
	"github.com/prometheus/client_golang/prometheus"
)

// Defaults for zero-valued Config fields.
const (
	DefaultIterations = 1
	DefaultWords      = 30000
	DefaultWordLength = 16
	DefaultTimeout    = time.Minute
)

var (
	// ErrInvalidConfig signals an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
	// ErrUnsorted signals that a variant returned values out of order.
	ErrUnsorted = errors.New("bench: values extracted out of order")
)

// Config configures a benchmark run.
type Config struct {
	// Variants to measure, in report order. Empty means all registered variants.
	Variants []string
	// Iterations per variant.
	Iterations int
	// Words inserted and extracted per iteration.
	Words int
	// WordLength of generated random words.
	WordLength int
	// Corpus, if not empty, replaces random words. Every iteration uses the
	// whole corpus and Words is ignored.
	Corpus []string
	// Timeout per variant. Variants exceeding it are reported as timed out.
	Timeout time.Duration
	// Seed for the word generator.
	Seed int64
	// Registerer, if set, receives a duration histogram per variant.
	Registerer prometheus.Registerer
}

func (cfg Config) normalized() Config {
	if len(cfg.Variants) == 0 {
		cfg.Variants = pqueue.Variants()
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.Words == 0 {
		cfg.Words = DefaultWords
	}
	if cfg.WordLength == 0 {
		cfg.WordLength = DefaultWordLength
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidConfig)
	}
	if cfg.Words < 0 || cfg.WordLength < 0 {
		return fmt.Errorf("%w: word count and length must be positive", ErrInvalidConfig)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if len(cfg.Variants) == 0 {
		return fmt.Errorf("%w: no variants to measure", ErrInvalidConfig)
	}
	for _, name := range cfg.Variants {
		if _, err := pqueue.NewQueue(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
