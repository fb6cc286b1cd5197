package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressReporter reports export progress.
type progressReporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// newProgressReporter draws a bar on a terminal and prints lines elsewhere.
func newProgressReporter(w io.Writer) progressReporter {
	if supportsUnicode(w) {
		return &barReporter{out: w}
	}
	return &lineReporter{out: w}
}

type barReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *barReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription("Rendering diagrams"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *barReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *barReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

type lineReporter struct {
	out   io.Writer
	total int
}

func (r *lineReporter) Start(total int) {
	r.total = total
}

func (r *lineReporter) Update(current int, message string) {
	fmt.Fprintf(r.out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *lineReporter) Finish() {}
