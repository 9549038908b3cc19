package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/go-resiliency/deadline"
	"github.com/guiguan/caster"
	"github.com/npillmayer/pqueue"
	"github.com/npillmayer/pqueue/wordsource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
)

// Event is broadcast to subscribers while a run proceeds. One event is sent
// per finished iteration and a final one per variant with Done set.
type Event struct {
	RunID     string
	Variant   string
	Iteration int
	Elapsed   time.Duration // accumulated for the variant
	Done      bool
	TimedOut  bool
}

// Runner executes a single benchmark run.
type Runner struct {
	cfg      Config
	id       xid.ID
	cast     *caster.Caster
	seconds  *prometheus.HistogramVec
	work     sync.WaitGroup // measuring goroutines, may outlive their deadline
	finished chan struct{}  // closed when Run returns
	ran      bool
}

// errStopped is returned by measuring goroutines whose deadline expired.
var errStopped = errors.New("bench: stopped")

// stopCheck is the mask of operations between checks for an expired deadline.
const stopCheck = 1023

// NewRunner validates cfg and prepares a run.
func NewRunner(cfg Config) (*Runner, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:      cfg,
		id:       xid.New(),
		cast:     caster.New(nil),
		finished: make(chan struct{}),
	}
	if cfg.Registerer != nil {
		h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pqueue",
			Name:      "bench_seconds",
			Help:      "Duration of one insert/extract iteration, by variant.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"variant"})
		if err := cfg.Registerer.Register(h); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			h = are.ExistingCollector.(*prometheus.HistogramVec)
		}
		r.seconds = h
	}
	return r, nil
}

// RunID identifies the run in events and the report.
func (r *Runner) RunID() string {
	return r.id.String()
}

// Subscribe returns a channel of progress events. The channel is closed when
// the run has finished or ctx is done. Subscribers must keep receiving, as
// publishing blocks on full channels. Subscribe before calling Run; events
// still queued when the run finishes are dropped.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) <-chan Event {
	out := make(chan Event, capacity)
	src, ok := r.cast.Sub(ctx, capacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-src:
				if !ok {
					return
				}
				if ev, ok := msg.(Event); ok {
					out <- ev
				}
			case <-r.finished:
				return
			}
		}
	}()
	return out
}

// Run measures all configured variants, one after the other. Timed out
// variants are part of the report. Variants returning values out of order
// make Run return an error wrapping ErrUnsorted, together with the
// complete report.
func (r *Runner) Run() (*Report, error) {
	if r.ran {
		return nil, fmt.Errorf("%w: runner has already been used", ErrInvalidConfig)
	}
	r.ran = true
	defer func() {
		r.work.Wait()
		r.cast.Close()
		close(r.finished)
	}()
	report := &Report{
		RunID:   r.RunID(),
		Started: time.Now(),
	}
	inputs, sorted := r.prepareInputs()
	tracer().Infof("bench %s: %d variants, %d iterations of %d words",
		report.RunID, len(r.cfg.Variants), len(inputs), len(inputs[0]))
	var errs []error
	for _, name := range r.cfg.Variants {
		res, err := r.measure(name, inputs, sorted)
		report.Results = append(report.Results, res)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return report, errors.Join(errs...)
}

// Run is a shortcut for creating a runner for cfg and running it.
func Run(cfg Config) (*Report, error) {
	r, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	return r.Run()
}

// prepareInputs creates the words for all iterations, together with their
// expected extraction order. All variants get the same inputs.
func (r *Runner) prepareInputs() (inputs, sorted [][]string) {
	rnd := rand.New(rand.NewSource(r.cfg.Seed))
	inputs = make([][]string, r.cfg.Iterations)
	sorted = make([][]string, r.cfg.Iterations)
	for i := range inputs {
		if len(r.cfg.Corpus) > 0 {
			inputs[i] = append([]string(nil), r.cfg.Corpus...)
			rnd.Shuffle(len(inputs[i]), func(a, b int) {
				inputs[i][a], inputs[i][b] = inputs[i][b], inputs[i][a]
			})
		} else {
			inputs[i] = wordsource.RandomWords(rnd, r.cfg.Words, r.cfg.WordLength)
		}
		sorted[i] = append([]string(nil), inputs[i]...)
		sort.Strings(sorted[i])
	}
	return inputs, sorted
}

func (r *Runner) measure(name string, inputs, sorted [][]string) (Result, error) {
	res := Result{Variant: name, Words: len(inputs[0])}
	var iterations atomic.Int64
	var elapsed atomic.Int64
	r.work.Add(1)
	dl := deadline.New(r.cfg.Timeout)
	err := dl.Run(func(stop <-chan struct{}) error {
		defer r.work.Done()
		for i := range inputs {
			q, err := pqueue.NewQueue(name)
			if err != nil {
				return err
			}
			start := time.Now()
			if err = roundTrip(q, inputs[i], sorted[i], stop); err != nil {
				return err
			}
			d := time.Since(start)
			if r.seconds != nil {
				r.seconds.WithLabelValues(name).Observe(d.Seconds())
			}
			n := iterations.Add(1)
			total := elapsed.Add(int64(d))
			r.cast.Pub(Event{
				RunID:     r.RunID(),
				Variant:   name,
				Iteration: int(n),
				Elapsed:   time.Duration(total),
			})
		}
		return nil
	})
	res.Iterations = int(iterations.Load())
	res.Elapsed = time.Duration(elapsed.Load())
	if errors.Is(err, deadline.ErrTimedOut) {
		tracer().Infof("bench %s: variant %s timed out after %d iterations", r.RunID(), name, res.Iterations)
		res.TimedOut = true
		err = nil
	} else if err != nil {
		tracer().Errorf("bench %s: variant %s failed: %v", r.RunID(), name, err)
		res.Error = err.Error()
		err = fmt.Errorf("variant %s: %w", name, err)
	}
	r.cast.Pub(Event{
		RunID:     r.RunID(),
		Variant:   name,
		Iteration: res.Iterations,
		Elapsed:   res.Elapsed,
		Done:      true,
		TimedOut:  res.TimedOut,
	})
	return res, err
}

// roundTrip inserts all of input into q and extracts them again, comparing
// against the expected order.
func roundTrip(q pqueue.Queue[string], input, want []string, stop <-chan struct{}) error {
	for i, w := range input {
		if i&stopCheck == 0 && stopped(stop) {
			return errStopped
		}
		q.Insert(w)
	}
	for i := range want {
		if i&stopCheck == 0 && stopped(stop) {
			return errStopped
		}
		got, err := q.ExtractMin()
		if err != nil {
			return fmt.Errorf("extracting position %d: %w", i, err)
		}
		if got != want[i] {
			return fmt.Errorf("%w: position %d holds %q, expected %q", ErrUnsorted, i, got, want[i])
		}
	}
	if !q.IsEmpty() {
		return fmt.Errorf("%w: %d values left after extracting all", ErrUnsorted, q.Size())
	}
	return nil
}

func stopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}
