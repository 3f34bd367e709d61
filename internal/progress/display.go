package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows a spinner for the phase currently running. It is nil-safe:
// a nil *Display is a no-op, so non-TTY runs skip it without branching at
// every call site.
type Display struct {
	spin    *spinner.Spinner
	out     io.Writer
	symbols ProgressSymbols
}

// NewDisplay creates a Display when the terminal supports it, nil otherwise.
func NewDisplay(out io.Writer) *Display {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(out))

	return &Display{spin: s, out: out, symbols: symbols}
}

// StartPhase begins spinning with the phase label.
func (d *Display) StartPhase(label string) {
	if d == nil {
		return
	}
	d.spin.Suffix = " " + label
	d.spin.Start()
}

// CompletePhase stops the spinner and prints a completion line.
func (d *Display) CompletePhase(label string) {
	if d == nil {
		return
	}
	d.spin.Stop()
	fmt.Fprintf(d.out, "%s %s\n", d.symbols.Checkmark, label)
}

// FailPhase stops the spinner and prints a failure line.
func (d *Display) FailPhase(label string, err error) {
	if d == nil {
		return
	}
	d.spin.Stop()
	fmt.Fprintf(d.out, "%s %s: %v\n", d.symbols.Failure, label, err)
}

// Stop stops the spinner without a status line.
func (d *Display) Stop() {
	if d == nil {
		return
	}
	d.spin.Stop()
}
