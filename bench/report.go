package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Result holds the measurements for one variant.
type Result struct {
	Variant    string        `json:"variant"`
	Iterations int           `json:"iterations"` // completed iterations
	Words      int           `json:"words"`      // per iteration
	Elapsed    time.Duration `json:"elapsed_ns"`
	TimedOut   bool          `json:"timed_out"`
	Error      string        `json:"error,omitempty"`
}

// PerIteration is the average duration of a completed iteration.
func (res Result) PerIteration() time.Duration {
	if res.Iterations == 0 {
		return 0
	}
	return res.Elapsed / time.Duration(res.Iterations)
}

func (res Result) status() string {
	switch {
	case res.Error != "":
		return "FAILED: " + res.Error
	case res.TimedOut:
		return "timed out"
	}
	return "ok"
}

// Report is the outcome of a benchmark run.
type Report struct {
	RunID   string    `json:"run_id"`
	Started time.Time `json:"started"`
	Results []Result  `json:"results"`
}

// WriteText prints the report as a table.
func (rep *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "run %s, started %s\n", rep.RunID, rep.Started.Format(time.RFC3339))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-18s %10s %8s %14s %14s  %s\n", "variant", "iterations", "words", "elapsed", "per iteration", "status")
	for _, res := range rep.Results {
		_, err = fmt.Fprintf(w, "%-18s %10d %8d %14s %14s  %s\n", res.Variant, res.Iterations,
			res.Words, res.Elapsed.Round(time.Microsecond), res.PerIteration().Round(time.Microsecond),
			res.status())
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes the report as a single JSON document.
func (rep *Report) WriteJSON(w io.Writer) error {
	b, err := sonnet.Marshal(rep)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
