package shard

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Aggregator renders captured shard output and the final verdict banner.
type Aggregator struct {
	// Stdout receives passed-shard output (verbosity 2) and the PASS banner.
	Stdout io.Writer
	// Stderr receives failed-shard output (verbosity >= 1) and the FAIL banner.
	Stderr io.Writer
	// Verbosity is 0, 1, or 2.
	Verbosity int

	pass *color.Color
	fail *color.Color
}

// NewAggregator creates an Aggregator with colors explicitly enabled or
// disabled, decided once at startup.
func NewAggregator(stdout, stderr io.Writer, verbosity int, colorEnabled bool) *Aggregator {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if colorEnabled {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}
	return &Aggregator{
		Stdout:    stdout,
		Stderr:    stderr,
		Verbosity: verbosity,
		pass:      pass,
		fail:      fail,
	}
}

// Report re-emits captured shard output according to verbosity, prints the
// final banner, and returns the process exit code: the number of failed
// shards. The leading newline terminates the in-progress glyph line.
//
// Unix truncates exit statuses to 8 bits, so runs with 256+ failures wrap
// around; that platform boundary is documented rather than handled.
func (a *Aggregator) Report(outcome Outcome) int {
	for _, res := range outcome.Results {
		if !res.Succeeded {
			if a.Verbosity > 0 {
				fmt.Fprintln(a.Stderr, res.Output)
			}
		} else if a.Verbosity > 1 {
			fmt.Fprintln(a.Stdout, res.Output)
		}
	}

	if outcome.Failed > 0 {
		fmt.Fprintln(a.Stderr, "\n"+a.fail.Sprint("[FAIL]"))
	} else {
		fmt.Fprintln(a.Stdout, "\n"+a.pass.Sprint("[PASS]"))
	}

	return outcome.Failed
}
