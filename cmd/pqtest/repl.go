package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/pqueue"
	"github.com/npillmayer/pqueue/fibheap"
	"github.com/npillmayer/pqueue/wordsource"
	"golang.org/x/term"
)

// errNoForest is flagged by commands which inspect the forest of a
// Fibonacci heap, if another variant is in use.
var errNoForest = errors.New("command needs the " + fibheap.VariantName + " variant")

// dumpWidth is the display width values are padded to in dumps.
const dumpWidth = 12

type command struct {
	name    string
	args    string
	help    string
	handler func(r *repl, args []string) error
}

var commands []command

// aliases maps short and legacy command names to command names.
var aliases = map[string]string{
	"i":          "insert",
	"enqueue":    "insert",
	"p":          "peek",
	"e":          "extract",
	"dequeueMin": "extract",
	"s":          "size",
	"isEmpty":    "empty",
	"q":          "quit",
	"exit":       "quit",
	"?":          "help",
}

func init() {
	commands = []command{
		{"insert", "<value>...", "insert values", (*repl).insert},
		{"peek", "", "show the smallest value", (*repl).peek},
		{"extract", "", "remove and show the smallest value", (*repl).extract},
		{"size", "", "show the number of values", (*repl).size},
		{"empty", "", "tell whether the queue is empty", (*repl).empty},
		{"drain", "", "extract all values", (*repl).drain},
		{"load", "<file>", "insert the words of a text or HTML file", (*repl).load},
		{"random", "<n> [length]", "insert n random words", (*repl).random},
		{"dump", "", "print the forest (fibonacci only)", (*repl).dump},
		{"dot", "", "print the forest in GraphViz format (fibonacci only)", (*repl).dot},
		{"check", "", "validate the heap structure (fibonacci only)", (*repl).check},
		{"variant", "<name>", "switch to a new, empty queue of another variant", (*repl).variant},
		{"variants", "", "list available variants", (*repl).variants},
		{"help", "", "show this list", (*repl).help},
		{"quit", "", "leave", nil},
	}
}

// repl executes commands on a single priority queue of strings.
type repl struct {
	in      *bufio.Scanner
	out     *printer
	prompt  bool
	name    string
	raw     pqueue.Queue[string] // queue as created by the registry
	q       pqueue.Queue[string] // raw, possibly instrumented
	metrics *pqueue.Metrics
	rnd     *rand.Rand
}

// newREPL creates a REPL reading commands from in. If metrics is not nil,
// queue operations are counted.
func newREPL(in io.Reader, out io.Writer, variant string, metrics *pqueue.Metrics) (*repl, error) {
	r := &repl{
		in:      bufio.NewScanner(in),
		out:     newPrinter(out),
		metrics: metrics,
		rnd:     rand.New(rand.NewSource(1)),
	}
	if f, ok := in.(*os.File); ok {
		r.prompt = term.IsTerminal(int(f.Fd()))
	}
	if err := r.use(variant); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repl) seed(s int64) {
	r.rnd = rand.New(rand.NewSource(s))
}

// use replaces the current queue with a new one of the given variant.
func (r *repl) use(variant string) error {
	q, err := pqueue.NewQueue(variant)
	if err != nil {
		return err
	}
	r.name, r.raw, r.q = variant, q, q
	if r.metrics != nil {
		r.q = pqueue.Instrument(q, variant, r.metrics)
	}
	return nil
}

// loop reads and executes commands until input ends or quit is entered.
func (r *repl) loop() {
	if r.prompt {
		r.out.info("Interactive priority queue test, variant %q. Type 'help' for commands.", r.name)
	}
	for {
		if r.prompt {
			r.out.plain(r.name + "> ")
		}
		if !r.in.Scan() {
			return
		}
		if r.exec(r.in.Text()) {
			return
		}
	}
}

// exec executes a single command line and tells whether the REPL should
// terminate.
func (r *repl) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := fields[0]
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if name == "quit" {
		r.out.info("bye")
		return true
	}
	for _, cmd := range commands {
		if cmd.name == name {
			if err := cmd.handler(r, fields[1:]); err != nil {
				r.out.failure(err)
			}
			return false
		}
	}
	r.out.failure(fmt.Errorf("unknown command %q, try 'help'", fields[0]))
	return false
}

func (r *repl) insert(args []string) error {
	if len(args) == 0 {
		return errors.New("insert needs at least one value")
	}
	pqueue.InsertAll(r.q, args...)
	r.out.result("inserted %d values", len(args))
	return nil
}

func (r *repl) peek(args []string) error {
	v, err := r.q.PeekMin()
	if err != nil {
		return err
	}
	r.out.result("%s", v)
	return nil
}

func (r *repl) extract(args []string) error {
	v, err := r.q.ExtractMin()
	if err != nil {
		return err
	}
	r.out.result("%s", v)
	return nil
}

func (r *repl) size(args []string) error {
	r.out.result("%d", r.q.Size())
	return nil
}

func (r *repl) empty(args []string) error {
	r.out.result("%t", r.q.IsEmpty())
	return nil
}

func (r *repl) drain(args []string) error {
	if r.q.IsEmpty() {
		return pqueue.ErrEmptyStructure
	}
	r.out.result("%s", r.out.columns(pqueue.Drain(r.q), lineWidth()))
	return nil
}

func (r *repl) load(args []string) error {
	if len(args) != 1 {
		return errors.New("load needs a file name")
	}
	words, err := wordsource.Load(args[0])
	if err != nil {
		return err
	}
	pqueue.InsertAll(r.q, words...)
	r.out.result("inserted %d values from %s", len(words), args[0])
	return nil
}

func (r *repl) random(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: random <n> [length]")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid count %q", args[0])
	}
	length := 16
	if len(args) == 2 {
		if length, err = strconv.Atoi(args[1]); err != nil || length <= 0 {
			return fmt.Errorf("invalid length %q", args[1])
		}
	}
	pqueue.InsertAll(r.q, wordsource.RandomWords(r.rnd, n, length)...)
	r.out.result("inserted %d values", n)
	return nil
}

func (r *repl) forest() (*fibheap.Heap[string], error) {
	h, ok := r.raw.(*fibheap.Heap[string])
	if !ok {
		return nil, errNoForest
	}
	return h, nil
}

func (r *repl) dump(args []string) error {
	h, err := r.forest()
	if err != nil {
		return err
	}
	var b strings.Builder
	h.DumpWith(&b, func(v string) string { return r.out.pad(v, dumpWidth) })
	r.out.plain(b.String())
	return nil
}

func (r *repl) dot(args []string) error {
	h, err := r.forest()
	if err != nil {
		return err
	}
	var b strings.Builder
	fibheap.Heap2Dot(h, &b)
	r.out.plain(b.String())
	return nil
}

func (r *repl) check(args []string) error {
	h, err := r.forest()
	if err != nil {
		return err
	}
	if err = h.Check(); err != nil {
		return err
	}
	r.out.result("heap is valid: %d values in %d trees", h.Size(), h.Roots())
	return nil
}

func (r *repl) variant(args []string) error {
	if len(args) != 1 {
		return errors.New("variant needs a name")
	}
	if err := r.use(args[0]); err != nil {
		return err
	}
	r.out.result("using a new %s queue", r.name)
	return nil
}

func (r *repl) variants(args []string) error {
	for _, name := range pqueue.Variants() {
		marker := " "
		if name == r.name {
			marker = "*"
		}
		r.out.result("%s %s", marker, name)
	}
	return nil
}

func (r *repl) help(args []string) error {
	for _, cmd := range commands {
		r.out.plain(fmt.Sprintf("  %s %s\n", r.out.pad(cmd.name+" "+cmd.args, 22), cmd.help))
	}
	r.out.plain("Commands may be abbreviated by their first letter: i, p, e, s, q.\n")
	return nil
}

// lineWidth returns the width of the terminal, or a default.
func lineWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 {
			return w
		}
	}
	return 72
}
