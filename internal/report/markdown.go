package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/idstamp-dev/idstamp/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a run
// summary into a pull request description.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeFiles(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and run parameters.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	if report.DryRun {
		md.H1("idstamp Check Report")
	} else {
		md.H1("idstamp Run Report")
	}
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Path", report.Path},
			{"Scope", report.Scope},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.String()},
		},
	})
}

// writeSummary writes the aggregate counters.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Summary")

	rows := [][]string{
		{"Files processed", strconv.Itoa(report.FilesProcessed)},
		{"Files failed", strconv.Itoa(report.FilesFailed)},
		{"IDs assigned", strconv.Itoa(report.IDsAssigned)},
		{"IDs preserved", strconv.Itoa(report.IDsPreserved)},
	}
	if report.DryRun {
		rows = append(rows, []string{"IDs missing", strconv.Itoa(report.IDsMissing)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	})
}

// writeFiles writes the per-file breakdown.
func (w *MarkdownWriter) writeFiles(md *markdown.Markdown, report *model.RunReport) {
	if len(report.Files) == 0 {
		return
	}

	md.H2("Files")

	rows := make([][]string, 0, len(report.Files))
	for _, f := range report.Files {
		status := "ok"
		if f.Failed() {
			status = "failed: " + f.Error
		}
		rows = append(rows, []string{
			f.Path,
			strconv.Itoa(f.Assigned),
			strconv.Itoa(f.Preserved),
			strconv.Itoa(f.Missing),
			status,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"File", "Assigned", "Preserved", "Missing", "Status"},
		Rows:   rows,
	})
}
