package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because the report is small and its shape is fixed.
type JSONWriter struct {
	baseWriter

	// version is the mdlinkcheck version recorded in the output.
	version string

	// indentString is the indentation string; empty means compact output.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps the scan report with metadata.
type JSONReport struct {
	// Version is the mdlinkcheck version that generated this report.
	Version string `json:"version"`

	// Report is the full scan report.
	Report *model.Report `json:"report"`
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	var (
		data []byte
		err  error
	)

	wrapped := &JSONReport{Version: w.version, Report: report}
	if w.indentString != "" {
		data, err = json.MarshalIndent(wrapped, "", w.indentString)
	} else {
		data, err = json.Marshal(wrapped)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
