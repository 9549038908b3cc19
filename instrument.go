package pqueue

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by all instrumented queues of one
// registry.
type Metrics struct {
	ops     *prometheus.CounterVec
	empties *prometheus.CounterVec
	size    *prometheus.GaugeVec
}

// NewMetrics creates queue collectors and registers them with reg. If reg is
// nil, the collectors stay unregistered (useful for tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pqueue",
			Name:      "operations_total",
			Help:      "Number of priority queue operations, by variant and operation.",
		}, []string{"variant", "op"}),
		empties: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pqueue",
			Name:      "empty_errors_total",
			Help:      "Number of peek/extract calls on an empty queue, by variant.",
		}, []string{"variant"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pqueue",
			Name:      "size",
			Help:      "Current number of values held, by variant.",
		}, []string{"variant"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.ops, m.empties, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument wraps q so that every operation is counted in m under label
// variant. The returned queue behaves exactly like q.
func Instrument[T any](q Queue[T], variant string, m *Metrics) Queue[T] {
	assert(q != nil && m != nil, "Instrument: queue and metrics must not be nil")
	iq := &instrumented[T]{
		Queue:   q,
		inserts: m.ops.WithLabelValues(variant, "insert"),
		peeks:   m.ops.WithLabelValues(variant, "peek"),
		extract: m.ops.WithLabelValues(variant, "extract"),
		empties: m.empties.WithLabelValues(variant),
		size:    m.size.WithLabelValues(variant),
	}
	iq.size.Set(float64(q.Size()))
	return iq
}

type instrumented[T any] struct {
	Queue[T]
	inserts, peeks, extract prometheus.Counter
	empties                 prometheus.Counter
	size                    prometheus.Gauge
}

func (iq *instrumented[T]) Insert(value T) {
	iq.Queue.Insert(value)
	iq.inserts.Inc()
	iq.size.Inc()
}

func (iq *instrumented[T]) PeekMin() (T, error) {
	iq.peeks.Inc()
	v, err := iq.Queue.PeekMin()
	iq.countEmpty(err)
	return v, err
}

func (iq *instrumented[T]) ExtractMin() (T, error) {
	iq.extract.Inc()
	v, err := iq.Queue.ExtractMin()
	if err == nil {
		iq.size.Dec()
	}
	iq.countEmpty(err)
	return v, err
}

func (iq *instrumented[T]) countEmpty(err error) {
	if errors.Is(err, ErrEmptyStructure) {
		iq.empties.Inc()
	}
}
