package pqueue

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// sliceQueue is a minimal queue for testing the registry and decorators.
type sliceQueue struct {
	values []string
}

func (q *sliceQueue) Size() int       { return len(q.values) }
func (q *sliceQueue) IsEmpty() bool   { return len(q.values) == 0 }
func (q *sliceQueue) Insert(v string) { q.values = append(q.values, v) }

func (q *sliceQueue) PeekMin() (string, error) {
	if q.IsEmpty() {
		return "", ErrEmptyStructure
	}
	m := q.values[0]
	for _, v := range q.values {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func (q *sliceQueue) ExtractMin() (string, error) {
	m, err := q.PeekMin()
	if err != nil {
		return m, err
	}
	for i, v := range q.values {
		if v == m {
			q.values = append(q.values[:i], q.values[i+1:]...)
			break
		}
	}
	return m, nil
}

func TestRegisterAndCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	Register("test-slice", func() Queue[string] { return &sliceQueue{} })
	q, err := NewQueue("test-slice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.(*sliceQueue); !ok {
		t.Errorf("constructor not used, got %T", q)
	}
	found := false
	for _, name := range Variants() {
		if name == "test-slice" {
			found = true
		}
	}
	if !found {
		t.Errorf("registered variant not listed in %v", Variants())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Queue[string] { return &sliceQueue{} })
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Queue[string] { return &sliceQueue{} })
}

func TestUnknownVariant(t *testing.T) {
	_, err := NewQueue("no-such-queue")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestDrainAndInsertAll(t *testing.T) {
	q := &sliceQueue{}
	InsertAll[string](q, "c", "a", "b")
	got := Drain[string](q)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Drain returned %v", got)
	}
	if !q.IsEmpty() {
		t.Errorf("queue should be empty after Drain")
	}
}

func TestInstrumentCountsOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("cannot create metrics: %v", err)
	}
	q := Instrument[string](&sliceQueue{}, "slice", m)
	q.Insert("b")
	q.Insert("a")
	q.PeekMin()
	q.ExtractMin()
	q.ExtractMin()
	if _, err := q.ExtractMin(); !errors.Is(err, ErrEmptyStructure) {
		t.Fatalf("instrumented queue must pass errors through, got %v", err)
	}
	if v := testutil.ToFloat64(m.ops.WithLabelValues("slice", "insert")); v != 2 {
		t.Errorf("insert counter = %v, expected 2", v)
	}
	if v := testutil.ToFloat64(m.ops.WithLabelValues("slice", "extract")); v != 3 {
		t.Errorf("extract counter = %v, expected 3", v)
	}
	if v := testutil.ToFloat64(m.empties.WithLabelValues("slice")); v != 1 {
		t.Errorf("empty-error counter = %v, expected 1", v)
	}
	if v := testutil.ToFloat64(m.size.WithLabelValues("slice")); v != 0 {
		t.Errorf("size gauge = %v, expected 0", v)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Errorf("expected duplicate registration of collectors to fail")
	}
}
