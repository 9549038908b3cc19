package main

import (
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// printer writes REPL output. Results are printed in green, errors in red.
// Colors are switched off globally with color.NoColor.
type printer struct {
	w       io.Writer
	ok      *color.Color
	fail    *color.Color
	note    *color.Color
	context *uax11.Context
}

func newPrinter(w io.Writer) *printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &printer{
		w:       w,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		note:    color.New(color.FgCyan),
		context: uax11.ContextFromEnvironment(),
	}
}

func (p *printer) result(format string, args ...interface{}) {
	p.ok.Fprintf(p.w, format, args...)
	io.WriteString(p.w, "\n")
}

func (p *printer) info(format string, args ...interface{}) {
	p.note.Fprintf(p.w, format, args...)
	io.WriteString(p.w, "\n")
}

func (p *printer) failure(err error) {
	p.fail.Fprintf(p.w, "error: %v", err)
	io.WriteString(p.w, "\n")
}

func (p *printer) plain(s string) {
	io.WriteString(p.w, s)
}

// width returns the display width of s in terminal cells. East Asian wide
// characters take two cells.
func (p *printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// pad right-pads s with blanks to a display width of at least w cells.
func (p *printer) pad(s string, w int) string {
	if d := w - p.width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// columns formats values left-aligned in columns of equal display width.
func (p *printer) columns(values []string, lineWidth int) string {
	if len(values) == 0 {
		return ""
	}
	colw := 0
	for _, v := range values {
		if w := p.width(v); w > colw {
			colw = w
		}
	}
	colw += 2
	percol := lineWidth / colw
	if percol < 1 {
		percol = 1
	}
	var b strings.Builder
	for i, v := range values {
		if i > 0 && i%percol == 0 {
			b.WriteString("\n")
		}
		if (i+1)%percol == 0 || i == len(values)-1 {
			b.WriteString(v)
		} else {
			b.WriteString(p.pad(v, colw))
		}
	}
	return b.String()
}
