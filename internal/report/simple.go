package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/idstamp-dev/idstamp/internal/model"
)

// SimpleWriter outputs human-readable text reports.
//
// Design decision: We use plain text with ASCII formatting rather than ANSI
// colors because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// verbose enables the per-file breakdown in addition to totals.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-file detail in the output.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report as human-readable text.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var b strings.Builder

	mode := "stamp"
	if report.DryRun {
		mode = "check (dry run)"
	}

	fmt.Fprintf(&b, "idstamp %s report\n", mode)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(&b, "Path:            %s\n", report.Path)
	fmt.Fprintf(&b, "Scope:           %s\n", report.Scope)
	fmt.Fprintf(&b, "Duration:        %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Files processed: %d\n", report.FilesProcessed)
	if report.FilesFailed > 0 {
		fmt.Fprintf(&b, "Files failed:    %d\n", report.FilesFailed)
	}
	fmt.Fprintf(&b, "IDs assigned:    %d\n", report.IDsAssigned)
	fmt.Fprintf(&b, "IDs preserved:   %d\n", report.IDsPreserved)
	if report.DryRun {
		fmt.Fprintf(&b, "IDs missing:     %d\n", report.IDsMissing)
	}

	if w.verbose && len(report.Files) > 0 {
		fmt.Fprintf(&b, "\nFiles:\n")
		for _, f := range report.Files {
			if f.Failed() {
				fmt.Fprintf(&b, "  %s: FAILED: %s\n", f.Path, f.Error)
				continue
			}
			if report.DryRun {
				fmt.Fprintf(&b, "  %s: %d missing, %d preserved\n", f.Path, f.Missing, f.Preserved)
				continue
			}
			fmt.Fprintf(&b, "  %s: %d assigned, %d preserved\n", f.Path, f.Assigned, f.Preserved)
		}
	}

	for _, f := range report.Files {
		if f.Failed() && !w.verbose {
			fmt.Fprintf(&b, "\nFAILED %s: %s\n", f.Path, f.Error)
		}
	}

	return w.output.Write([]byte(b.String()))
}
