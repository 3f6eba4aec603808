package report

import (
	"encoding/json"
	"io"

	"github.com/idstamp-dev/idstamp/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for machine consumption: CI gates, dashboards, or
// any tool that wants the per-file breakdown without parsing text.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printing with two-space indentation.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed output.
func WithIndent(indent bool) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = indent
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is pretty-printed by default.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		indent:     true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report as JSON followed by a trailing newline.
func (w *JSONWriter) Write(report *model.RunReport) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
