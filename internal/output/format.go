// Package output provides terminal output formatting utilities for the
// autorel CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/raveheart1/autorel/internal/update"
)

// PrintStep prints a release pipeline step header.
func PrintStep(out io.Writer, message string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan("→"), message)
}

// PrintSuccess prints a completed-step message with a green checkmark.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintWarning prints a non-fatal warning in yellow.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("!"), message)
}

// PrintTargetOutcome prints one progress line for an attempted update
// target. Skips render as warnings; failures show the specific rejecting
// check in red so security rejections are never generic.
func PrintTargetOutcome(out io.Writer, o update.Outcome) {
	switch o.Status {
	case update.StatusUpdated:
		PrintSuccess(out, fmt.Sprintf("updated %s (%s)", o.Target.Path, o.Target.Kind))
	case update.StatusSkipped:
		PrintWarning(out, fmt.Sprintf("skipped %s: %s", o.Target.Path, o.Reason))
	case update.StatusFailed:
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(out, "%s %s: %s\n", red("✗"), red(o.Target.Path), o.Reason)
	}
}
